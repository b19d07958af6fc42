package cmd

import (
	"fmt"

	"github.com/abhisek/jazzgym/internal/app"
	"github.com/abhisek/jazzgym/internal/catalog"
	"github.com/abhisek/jazzgym/internal/history"
	"github.com/abhisek/jazzgym/internal/practice"
	"github.com/abhisek/jazzgym/internal/prefs"
	"github.com/abhisek/jazzgym/internal/screens/home"
	"github.com/abhisek/jazzgym/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	chordSessions := st.ChordSessions()
	scaleSessions := st.ScaleSessions()

	deps := home.Deps{
		// Scales avoid showing the same item twice in a row; chords are
		// drawn fully at random.
		ChordEngine:  practice.NewEngine(chordSessions, catalog.ChordLibrary(), false),
		ScaleEngine:  practice.NewEngine(scaleSessions, catalog.ScaleLibrary(), true),
		ChordPrefs:   prefs.NewService[catalog.ChordType](st.ChordPrefs()),
		ScalePrefs:   prefs.NewService[catalog.ScaleType](st.ScalePrefs()),
		ChordHistory: history.NewManager(chordSessions),
		ScaleHistory: history.NewManager(scaleSessions),
	}

	return app.Run(deps)
}
