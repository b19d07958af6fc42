package drill

import (
	"time"

	"github.com/abhisek/jazzgym/internal/practice"
)

// sessionReadyMsg is sent when the session has been created and the first
// item picked.
type sessionReadyMsg[C ~string] struct {
	State *practice.State[C]
	Err   error
}

// advanceDoneMsg is sent when an advance (manual or timer-driven) has been
// persisted and the next item picked.
type advanceDoneMsg[C ~string] struct {
	State *practice.State[C]
	Err   error
}

// sessionEndedMsg is sent when the end-session flow has completed.
type sessionEndedMsg struct {
	Summary *practice.Summary
	Err     error
}

// tickMsg drives the countdown at sub-second resolution.
type tickMsg time.Time
