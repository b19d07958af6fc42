package cmd

import (
	"fmt"

	"github.com/abhisek/jazzgym/internal/store"
	"github.com/spf13/cobra"
)

var resetChords bool
var resetScales bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete practice history (preferences are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// No flag means both domains.
		if !resetChords && !resetScales {
			resetChords = true
			resetScales = true
		}

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

		if resetChords {
			if err := st.ChordSessions().DeleteAllSessions(ctx); err != nil {
				return fmt.Errorf("reset chord history: %w", err)
			}
			fmt.Println("Chord history deleted.")
		}
		if resetScales {
			if err := st.ScaleSessions().DeleteAllSessions(ctx); err != nil {
				return fmt.Errorf("reset scale history: %w", err)
			}
			fmt.Println("Scale history deleted.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetChords, "chords", false, "Delete only chord sessions")
	resetCmd.Flags().BoolVar(&resetScales, "scales", false, "Delete only scale sessions")
}
