package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/jazzgym/internal/practice"
	"github.com/abhisek/jazzgym/internal/prefs"
	"github.com/abhisek/jazzgym/internal/screen"
	"github.com/abhisek/jazzgym/internal/ui/components"
	"github.com/abhisek/jazzgym/internal/ui/layout"
	"github.com/abhisek/jazzgym/internal/ui/theme"
)

type prefsLoadedMsg[C ~string] struct {
	Prefs prefs.Preferences[C]
	Err   error
}

type saveDoneMsg[C ~string] struct {
	Prefs prefs.Preferences[C]
	Err   error
}

// SettingsScreen edits one domain's preferences: the per-item time limit and
// the enabled categories. Nothing is persisted until Save.
type SettingsScreen[C ~string] struct {
	domain  practice.Domain
	svc     *prefs.Service[C]
	all     []C
	enabled map[C]bool
	input   components.TextInput
	cursor  int
	loaded  bool
	status  string
	isErr   bool
}

var _ screen.Screen = (*SettingsScreen[string])(nil)
var _ screen.KeyHintProvider = (*SettingsScreen[string])(nil)

// New creates a settings screen over the domain's full category list.
func New[C ~string](domain practice.Domain, svc *prefs.Service[C], all []C) *SettingsScreen[C] {
	return &SettingsScreen[C]{
		domain:  domain,
		svc:     svc,
		all:     all,
		enabled: make(map[C]bool),
		input:   components.NewTextInput(strconv.Itoa(prefs.DefaultTimeLimit), true, 2),
	}
}

func (s *SettingsScreen[C]) Init() tea.Cmd {
	return tea.Batch(s.load(), s.input.Init())
}

func (s *SettingsScreen[C]) Title() string {
	return s.domain.Title() + " Settings"
}

// saveRow is the cursor position of the Save action; category rows sit
// between it and the time limit row at 0.
func (s *SettingsScreen[C]) saveRow() int {
	return len(s.all) + 1
}

func (s *SettingsScreen[C]) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen[C]) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg[C]:
		if msg.Err != nil {
			s.status = msg.Err.Error()
			s.isErr = true
			return s, nil
		}
		s.applyPrefs(msg.Prefs)
		s.loaded = true
		return s, nil

	case saveDoneMsg[C]:
		// On failure the service hands back what storage actually holds;
		// resync so the form never drifts from it.
		s.applyPrefs(msg.Prefs)
		if msg.Err != nil {
			s.status = msg.Err.Error()
			s.isErr = true
		} else {
			s.status = "Saved"
			s.isErr = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.cursor == 0 {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen[C]) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "j":
		if s.cursor < s.saveRow() {
			s.cursor++
		}
		return s, nil
	case " ", "space":
		if s.cursor >= 1 && s.cursor <= len(s.all) {
			c := s.all[s.cursor-1]
			s.enabled[c] = !s.enabled[c]
		}
		return s, nil
	case "enter":
		if s.cursor >= 1 && s.cursor <= len(s.all) {
			c := s.all[s.cursor-1]
			s.enabled[c] = !s.enabled[c]
			return s, nil
		}
		if s.cursor == s.saveRow() {
			return s, s.save()
		}
		return s, nil
	}

	// Remaining keys go to the time limit input when it has the cursor.
	if s.cursor == 0 {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen[C]) applyPrefs(p prefs.Preferences[C]) {
	s.input.SetValue(strconv.Itoa(p.TimeLimit))
	s.enabled = make(map[C]bool, len(p.Enabled))
	for _, c := range p.Enabled {
		s.enabled[c] = true
	}
}

func (s *SettingsScreen[C]) load() tea.Cmd {
	return func() tea.Msg {
		p, err := s.svc.Load(context.Background())
		return prefsLoadedMsg[C]{Prefs: p, Err: err}
	}
}

func (s *SettingsScreen[C]) save() tea.Cmd {
	timeLimit, err := s.input.NumericValue()
	if err != nil {
		s.status = "time limit must be a number"
		s.isErr = true
		return nil
	}

	// Enabled categories in catalog order, not toggle order.
	enabled := make([]C, 0, len(s.all))
	for _, c := range s.all {
		if s.enabled[c] {
			enabled = append(enabled, c)
		}
	}

	return func() tea.Msg {
		p, err := s.svc.Apply(context.Background(), prefs.Update[C]{
			TimeLimit: &timeLimit,
			Enabled:   enabled,
		})
		return saveDoneMsg[C]{Prefs: p, Err: err}
	}
}

func (s *SettingsScreen[C]) View(width, height int) string {
	if !s.loaded && s.status == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	}

	var b strings.Builder

	rowStyle := func(row int) lipgloss.Style {
		if row == s.cursor {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
	marker := func(row int) string {
		if row == s.cursor {
			return "▸ "
		}
		return "  "
	}

	b.WriteString(rowStyle(0).Render(fmt.Sprintf("%sSeconds per %s (%d-%d): ",
		marker(0), s.domain.Noun(), prefs.MinTimeLimit, prefs.MaxTimeLimit)))
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("  " + s.domain.Title() + " to practice:"))
	b.WriteString("\n")

	for i, c := range s.all {
		row := i + 1
		check := "[ ]"
		if s.enabled[c] {
			check = "[x]"
		}
		b.WriteString(rowStyle(row).Render(fmt.Sprintf("%s%s %s", marker(row), check, string(c))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	saveStyle := rowStyle(s.saveRow())
	b.WriteString(saveStyle.Render(marker(s.saveRow()) + "[ Save ]"))
	b.WriteString("\n")

	if s.status != "" {
		st := lipgloss.NewStyle().Foreground(theme.Success)
		if s.isErr {
			st = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n" + st.Render("  "+s.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
