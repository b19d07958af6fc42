package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/jazzgym/internal/catalog"
	"github.com/abhisek/jazzgym/internal/history"
	"github.com/abhisek/jazzgym/internal/practice"
	"github.com/abhisek/jazzgym/internal/prefs"
	"github.com/abhisek/jazzgym/internal/router"
	"github.com/abhisek/jazzgym/internal/screen"
	"github.com/abhisek/jazzgym/internal/screens/drill"
	historyscreen "github.com/abhisek/jazzgym/internal/screens/history"
	"github.com/abhisek/jazzgym/internal/screens/settings"
	"github.com/abhisek/jazzgym/internal/ui/components"
	"github.com/abhisek/jazzgym/internal/ui/theme"
)

// Deps carries the wired services the home screen hands to the screens it
// pushes. Everything is built once at startup in cmd.
type Deps struct {
	ChordEngine  *practice.Engine[catalog.ChordType]
	ScaleEngine  *practice.Engine[catalog.ScaleType]
	ChordPrefs   *prefs.Service[catalog.ChordType]
	ScalePrefs   *prefs.Service[catalog.ScaleType]
	ChordHistory *history.Manager
	ScaleHistory *history.Manager
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE CHORDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.New(practice.DomainChords, deps.ChordEngine, deps.ChordPrefs),
				}
			}
		}},
		{Label: "PRACTICE SCALES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.New(practice.DomainScales, deps.ScaleEngine, deps.ScalePrefs),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(deps.ChordHistory, deps.ScaleHistory),
				}
			}
		}},
		{Label: "CHORD SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: settings.New(practice.DomainChords, deps.ChordPrefs, catalog.AllChordTypes()),
				}
			}
		}},
		{Label: "SCALE SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: settings.New(practice.DomainScales, deps.ScalePrefs, catalog.AllScaleTypes()),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("JazzGym"))
	sections = append(sections, theme.Subtitle.Render("timed chord and scale drills"))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
