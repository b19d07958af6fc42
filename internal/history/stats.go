package history

// Stats are cross-session totals derived from persisted history. They are
// recomputed on demand, never stored.
type Stats struct {
	TotalSessions int
	TotalItems    int
	TotalMinutes  int
}

// ComputeStats aggregates over ended sessions. Per-session minutes are the
// wall-clock span truncated to whole minutes before summing; this floor
// intentionally differs from the half-up rounding a single session summary
// uses. Zero ended sessions yields all-zero Stats.
func ComputeStats(sessions []Session) Stats {
	var s Stats
	for _, sess := range sessions {
		if sess.EndedAt == nil {
			continue
		}
		s.TotalSessions++
		s.TotalItems += sess.ItemCount
		s.TotalMinutes += int(sess.EndedAt.Sub(sess.StartedAt).Minutes())
	}
	return s
}
