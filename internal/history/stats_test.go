package history

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func endedSession(items int, dur time.Duration) Session {
	start := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(dur)
	return Session{
		ID:        uuid.New(),
		StartedAt: start,
		EndedAt:   &end,
		ItemCount: items,
		TimeLimit: 10,
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := ComputeStats(nil)
		if got != (Stats{}) {
			t.Fatalf("stats for no sessions = %+v, want all zero", got)
		}
	})

	t.Run("sums items and floors minutes per session", func(t *testing.T) {
		sessions := []Session{
			endedSession(2, 90*time.Second),  // 1 minute after flooring
			endedSession(3, 150*time.Second), // 2 minutes
			endedSession(4, 59*time.Second),  // 0 minutes
		}

		got := ComputeStats(sessions)
		if got.TotalSessions != 3 {
			t.Errorf("TotalSessions = %d, want 3", got.TotalSessions)
		}
		if got.TotalItems != 9 {
			t.Errorf("TotalItems = %d, want 9", got.TotalItems)
		}
		// Floored per session before summing: 1 + 2 + 0, not floor(4.98).
		if got.TotalMinutes != 3 {
			t.Errorf("TotalMinutes = %d, want 3", got.TotalMinutes)
		}
	})

	t.Run("skips sessions still in progress", func(t *testing.T) {
		open := endedSession(5, time.Minute)
		open.EndedAt = nil

		got := ComputeStats([]Session{open, endedSession(2, 2 * time.Minute)})
		if got.TotalSessions != 1 {
			t.Errorf("TotalSessions = %d, want 1", got.TotalSessions)
		}
		if got.TotalItems != 2 {
			t.Errorf("TotalItems = %d, want 2", got.TotalItems)
		}
		if got.TotalMinutes != 2 {
			t.Errorf("TotalMinutes = %d, want 2", got.TotalMinutes)
		}
	})
}
