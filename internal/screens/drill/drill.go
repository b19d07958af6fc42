package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/jazzgym/internal/practice"
	"github.com/abhisek/jazzgym/internal/prefs"
	"github.com/abhisek/jazzgym/internal/router"
	"github.com/abhisek/jazzgym/internal/screen"
	"github.com/abhisek/jazzgym/internal/screens/summary"
	"github.com/abhisek/jazzgym/internal/timer"
	"github.com/abhisek/jazzgym/internal/ui/layout"
)

// tickInterval is the countdown resolution. The stored time limit is whole
// seconds but ticking finer keeps pause/resume from eating partial seconds.
const tickInterval = 100 * time.Millisecond

// DrillScreen runs one timed practice session for a single domain. Chords and
// scales use the same screen parameterized over the category type; the engine
// carries the per-domain behavior.
type DrillScreen[C ~string] struct {
	domain     practice.Domain
	engine     *practice.Engine[C]
	prefsSvc   *prefs.Service[C]
	state      *practice.State[C]
	countdown  *timer.Countdown
	inFlight   bool // a persist command is outstanding
	confirmEnd bool
	errMsg     string
}

var _ screen.Screen = (*DrillScreen[string])(nil)
var _ screen.KeyHintProvider = (*DrillScreen[string])(nil)
var _ screen.EscInterceptor = (*DrillScreen[string])(nil)

// New creates a drill screen for the given domain.
func New[C ~string](domain practice.Domain, engine *practice.Engine[C], prefsSvc *prefs.Service[C]) *DrillScreen[C] {
	return &DrillScreen[C]{
		domain:   domain,
		engine:   engine,
		prefsSvc: prefsSvc,
	}
}

func (s *DrillScreen[C]) Init() tea.Cmd {
	return s.startSession()
}

func (s *DrillScreen[C]) Title() string {
	return s.domain.Title()
}

// InterceptEsc keeps Esc on this screen: quitting mid-session must go through
// the end flow so the session gets recorded and closed.
func (s *DrillScreen[C]) InterceptEsc() bool {
	return true
}

func (s *DrillScreen[C]) KeyHints() []layout.KeyHint {
	if s.confirmEnd {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Next"},
		{Key: "P", Description: "Pause"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *DrillScreen[C]) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg[C]:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.state = msg.State
		s.countdown = timer.New(time.Duration(s.state.TimeLimit) * time.Second)
		return s, s.tick()

	case advanceDoneMsg[C]:
		s.inFlight = false
		if msg.Err != nil {
			// The engine left the previous state intact; surface the error
			// and let the user retry or end.
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.state = msg.State
		s.errMsg = ""
		s.countdown.Reset()
		return s, nil

	case sessionEndedMsg:
		s.inFlight = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.confirmEnd = false
			return s, nil
		}
		// Swap in the summary so Esc from there goes straight home.
		sum := summary.New(s.domain, msg.Summary)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }

	case tickMsg:
		if s.state == nil || s.countdown == nil {
			return s, nil
		}
		var cmds []tea.Cmd
		if expired := s.countdown.Tick(tickInterval); expired && !s.inFlight && !s.confirmEnd {
			s.inFlight = true
			cmds = append(cmds, s.advance())
		}
		cmds = append(cmds, s.tick())
		return s, tea.Batch(cmds...)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DrillScreen[C]) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmEnd {
		switch msg.String() {
		case "y", "enter":
			s.confirmEnd = false
			s.inFlight = true
			return s, s.end()
		case "n", "esc":
			s.confirmEnd = false
			s.countdown.Resume()
			return s, nil
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		if s.state == nil {
			// Startup failed; nothing to record.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if s.inFlight {
			return s, nil
		}
		s.confirmEnd = true
		s.countdown.Pause()
		return s, nil

	case "r":
		if s.errMsg != "" && s.state != nil && !s.inFlight {
			s.inFlight = true
			return s, s.advance()
		}
		return s, nil

	case " ", "space", "enter", "right":
		if s.state == nil || s.inFlight || s.errMsg != "" {
			return s, nil
		}
		s.inFlight = true
		s.countdown.Pause()
		return s, s.advance()

	case "p":
		if s.state == nil || s.inFlight {
			return s, nil
		}
		if s.countdown.Running() {
			s.countdown.Pause()
		} else {
			s.countdown.Resume()
		}
		return s, nil
	}

	return s, nil
}

// startSession loads preferences and starts the engine session off the UI
// goroutine.
func (s *DrillScreen[C]) startSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		p, err := s.prefsSvc.Load(ctx)
		if err != nil {
			return sessionReadyMsg[C]{Err: err}
		}

		st, err := s.engine.Start(ctx, p.TimeLimit, p.Enabled)
		return sessionReadyMsg[C]{State: st, Err: err}
	}
}

func (s *DrillScreen[C]) advance() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		st, err := s.engine.Advance(context.Background(), state)
		return advanceDoneMsg[C]{State: st, Err: err}
	}
}

func (s *DrillScreen[C]) end() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		sum, err := s.engine.End(context.Background(), state)
		return sessionEndedMsg{Summary: sum, Err: err}
	}
}

func (s *DrillScreen[C]) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
