package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/internal/catalog"
)

// State is the in-memory state of one practice session. Engine operations
// return a fresh State rather than mutating the receiver's argument, so a
// failed step leaves the caller holding a still-valid state.
type State[C ~string] struct {
	// SessionID is the handle issued by the store; uuid.Nil before creation.
	SessionID uuid.UUID

	// Current is the item on display; nil when no session is running.
	Current *catalog.Item[C]

	// Completed counts items advanced past, excluding Current.
	Completed int

	// Active reports whether the session is live.
	Active bool

	// TimeLimit is the per-item countdown in seconds, snapshotted at start.
	// Preference changes never affect an in-flight session.
	TimeLimit int

	// Pool is the filtered item list fixed at session start.
	Pool []catalog.Item[C]

	// StartedAt is when Start returned this session.
	StartedAt time.Time
}

// Summary is the computed result of an ended session.
type Summary struct {
	SessionID       uuid.UUID
	TotalItems      int
	DurationMinutes float64
	StartedAt       time.Time
	EndedAt         time.Time
}
