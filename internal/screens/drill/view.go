package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/jazzgym/internal/ui/theme"
)

// urgentSeconds is the threshold below which the countdown turns red.
const urgentSeconds = 3

func (s *DrillScreen[C]) View(width, height int) string {
	if s.errMsg != "" && s.state == nil {
		return renderCentered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if s.state == nil {
		return renderCentered(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Starting session..."))
	}
	if s.confirmEnd {
		return s.renderConfirm(width, height)
	}
	return s.renderItem(width, height)
}

func (s *DrillScreen[C]) renderItem(width, height int) string {
	var b strings.Builder

	name := ""
	if s.state.Current != nil {
		name = s.state.Current.Name
	}

	item := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(name)

	card := theme.Card.Padding(2, 6).Render(item)

	secs := s.countdown.DisplaySeconds()
	countStyle := theme.CountdownCalm
	if secs <= urgentSeconds {
		countStyle = theme.CountdownUrgent
	}
	countLine := countStyle.Render(fmt.Sprintf("%ds", secs))
	if !s.countdown.Running() && s.errMsg == "" && !s.inFlight {
		countLine += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ⏸ paused")
	}

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%ss completed: %d", s.domain.Noun(), s.state.Completed))

	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Center, countLine))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Center, progress))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Couldn't save progress: " + s.errMsg))
	}

	return renderCentered(width, height, b.String())
}

func (s *DrillScreen[C]) renderConfirm(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("End this session?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Y to end and save, N to keep going")
	return renderCentered(width, height, theme.Card.Render(msg))
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
