package cmd

import (
	"fmt"

	"github.com/abhisek/jazzgym/internal/history"
	"github.com/abhisek/jazzgym/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		_, chordStats, err := history.NewManager(st.ChordSessions()).Overview(ctx)
		if err != nil {
			return fmt.Errorf("load chord history: %w", err)
		}
		_, scaleStats, err := history.NewManager(st.ScaleSessions()).Overview(ctx)
		if err != nil {
			return fmt.Errorf("load scale history: %w", err)
		}

		printStats("Chords", chordStats)
		fmt.Println()
		printStats("Scales", scaleStats)
		return nil
	},
}

func printStats(label string, s history.Stats) {
	fmt.Printf("%s\n", label)
	fmt.Printf("  Sessions: %d\n", s.TotalSessions)
	fmt.Printf("  Items:    %d\n", s.TotalItems)
	fmt.Printf("  Minutes:  %d\n", s.TotalMinutes)
}
