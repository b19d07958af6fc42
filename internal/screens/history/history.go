package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/internal/history"
	"github.com/abhisek/jazzgym/internal/practice"
	"github.com/abhisek/jazzgym/internal/screen"
	"github.com/abhisek/jazzgym/internal/ui/layout"
	"github.com/abhisek/jazzgym/internal/ui/theme"
)

type overviewLoadedMsg struct {
	Domain   practice.Domain
	Sessions []history.Session
	Stats    history.Stats
	Err      error
}

type detailsLoadedMsg struct {
	ID      uuid.UUID
	Details *history.SessionDetails
	Err     error
}

type deleteDoneMsg struct {
	Err error
}

// HistoryScreen displays past sessions for both domains, one tab each.
type HistoryScreen struct {
	managers map[practice.Domain]*history.Manager
	domain   practice.Domain
	sessions []history.Session
	stats    history.Stats
	details  map[uuid.UUID]*history.SessionDetails
	expanded map[uuid.UUID]bool
	selected int
	loaded   bool
	confirm  bool // delete-all confirmation pending
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscInterceptor = (*HistoryScreen)(nil)

// New creates a new HistoryScreen opened on the chords tab.
func New(chords, scales *history.Manager) *HistoryScreen {
	return &HistoryScreen{
		managers: map[practice.Domain]*history.Manager{
			practice.DomainChords: chords,
			practice.DomainScales: scales,
		},
		domain:   practice.DomainChords,
		details:  make(map[uuid.UUID]*history.SessionDetails),
		expanded: make(map[uuid.UUID]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.loadOverview()
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// InterceptEsc claims Esc only while the delete-all confirm is showing, so
// Esc cancels the dialog instead of leaving the screen.
func (s *HistoryScreen) InterceptEsc() bool {
	return s.confirm
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Chords/Scales"},
		{Key: "Enter", Description: "Details"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		// A slow load for the previous tab may land after switching.
		if msg.Domain != s.domain {
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
			s.errMsg = ""
		}
		s.loaded = true
		if s.selected >= len(s.sessions) {
			s.selected = len(s.sessions) - 1
		}
		if s.selected < 0 {
			s.selected = 0
		}
		return s, nil

	case detailsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Details != nil {
			s.details[msg.ID] = msg.Details
		}
		return s, nil

	case deleteDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.loadOverview()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirm {
		switch msg.String() {
		case "y":
			s.confirm = false
			return s, s.deleteAll()
		case "n", "esc":
			s.confirm = false
		}
		return s, nil
	}

	switch msg.String() {
	case "tab":
		if s.domain == practice.DomainChords {
			s.domain = practice.DomainScales
		} else {
			s.domain = practice.DomainChords
		}
		s.sessions = nil
		s.selected = 0
		s.loaded = false
		s.details = make(map[uuid.UUID]*history.SessionDetails)
		s.expanded = make(map[uuid.UUID]bool)
		return s, s.loadOverview()

	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		if len(s.sessions) == 0 {
			return s, nil
		}
		id := s.sessions[s.selected].ID
		s.expanded[id] = !s.expanded[id]
		if s.expanded[id] && s.details[id] == nil {
			return s, s.loadDetails(id)
		}
	case "d":
		if len(s.sessions) == 0 {
			return s, nil
		}
		return s, s.deleteOne(s.sessions[s.selected].ID)
	case "D":
		if len(s.sessions) > 0 {
			s.confirm = true
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadOverview() tea.Cmd {
	mgr := s.managers[s.domain]
	domain := s.domain
	return func() tea.Msg {
		sessions, stats, err := mgr.Overview(context.Background())
		return overviewLoadedMsg{Domain: domain, Sessions: sessions, Stats: stats, Err: err}
	}
}

func (s *HistoryScreen) loadDetails(id uuid.UUID) tea.Cmd {
	mgr := s.managers[s.domain]
	return func() tea.Msg {
		d, err := mgr.Details(context.Background(), id)
		return detailsLoadedMsg{ID: id, Details: d, Err: err}
	}
}

func (s *HistoryScreen) deleteOne(id uuid.UUID) tea.Cmd {
	mgr := s.managers[s.domain]
	return func() tea.Msg {
		return deleteDoneMsg{Err: mgr.DeleteOne(context.Background(), id)}
	}
}

func (s *HistoryScreen) deleteAll() tea.Cmd {
	mgr := s.managers[s.domain]
	return func() tea.Msg {
		return deleteDoneMsg{Err: mgr.DeleteAll(context.Background())}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	if s.confirm {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("Delete ALL %s sessions? (y/n)", s.domain.Noun()))))
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)))
		return b.String()
	}
	if !s.loaded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading history...")))
		return b.String()
	}

	statsLine := fmt.Sprintf("Sessions: %d    Total %ss: %d    Minutes: %d",
		s.stats.TotalSessions, s.domain.Noun(), s.stats.TotalItems, s.stats.TotalMinutes)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(statsLine)))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No sessions yet. Start practicing!")))
		return b.String()
	}

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d %ss  %ds per %s",
			prefix, sess.StartedAt.Format("Jan 02, 2006 3:04 PM"),
			sess.ItemCount, s.domain.Noun(), sess.TimeLimit, s.domain.Noun())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[sess.ID] {
			b.WriteString(s.renderDetails(width, sess.ID))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderTabs() string {
	render := func(d practice.Domain) string {
		st := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2)
		if d == s.domain {
			st = st.Foreground(theme.Primary).Bold(true).Underline(true)
		}
		return st.Render(d.Title())
	}
	return render(practice.DomainChords) + "  " + render(practice.DomainScales)
}

func (s *HistoryScreen) renderDetails(width int, id uuid.UUID) string {
	d := s.details[id]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if d == nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("    loading...")) + "\n"
	}
	if len(d.Items) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("    nothing recorded")) + "\n"
	}

	names := make([]string, len(d.Items))
	for i, it := range d.Items {
		names[i] = it.Name
	}
	line := "    " + strings.Join(names, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(line)) + "\n"
}
