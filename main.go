package main

import (
	"os"

	"github.com/abhisek/jazzgym/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
