package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/internal/catalog"
	"github.com/abhisek/jazzgym/internal/prefs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "jazzgym.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestChordSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChordSessions()
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected non-nil session id")
	}

	for _, name := range []string{"Cmaj7", "F#m7b5", "Bb13"} {
		if err := repo.AppendItem(ctx, id, name); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	if err := repo.CloseSession(ctx, id); err != nil {
		t.Fatalf("close: %v", err)
	}

	details, err := repo.SessionDetails(ctx, id)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details == nil {
		t.Fatal("expected details for existing session")
	}
	if details.ItemCount != 3 {
		t.Errorf("item count = %d, want 3", details.ItemCount)
	}
	if details.EndedAt == nil {
		t.Error("expected ended_at to be stamped")
	}
	if details.TimeLimit != 10 {
		t.Errorf("time limit = %d, want 10", details.TimeLimit)
	}
	if len(details.Items) != 3 {
		t.Fatalf("recorded items = %d, want 3", len(details.Items))
	}
	want := []string{"Cmaj7", "F#m7b5", "Bb13"}
	for i, item := range details.Items {
		if item.Name != want[i] {
			t.Errorf("item %d = %q, want %q (display order)", i, item.Name, want[i])
		}
	}
}

func TestChordSessionList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChordSessions()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)

	// Three ended sessions with distinct start times, plus one left open.
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		ps, err := s.client.PracticeSession.Create().
			SetTimeLimit(10).
			SetStartedAt(base.Add(time.Duration(i) * time.Hour)).
			Save(ctx)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.CloseSession(ctx, ps.ID); err != nil {
			t.Fatalf("close: %v", err)
		}
		ids = append(ids, ps.ID)
	}
	if _, err := repo.CreateSession(ctx, 10); err != nil {
		t.Fatalf("create open session: %v", err)
	}

	sessions, err := repo.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("listed %d sessions, want 3 (open session excluded)", len(sessions))
	}
	// Newest first.
	if sessions[0].ID != ids[2] || sessions[2].ID != ids[0] {
		t.Error("sessions not in newest-first order")
	}

	limited, err := repo.ListSessions(ctx, 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited list = %d sessions, want 2", len(limited))
	}
}

func TestChordSessionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChordSessions()
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AppendItem(ctx, id, "Dm7"); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.DeleteSession(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	details, err := repo.SessionDetails(ctx, id)
	if err != nil {
		t.Fatalf("details after delete: %v", err)
	}
	if details != nil {
		t.Fatal("expected nil details for deleted session")
	}

	// Item records cascade with the session.
	count, err := s.client.SessionChord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count chords: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned chord records = %d, want 0", count)
	}

	// Deleting again is not an error.
	if err := repo.DeleteSession(ctx, id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := repo.DeleteSession(ctx, uuid.New()); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
}

func TestDeleteAllLeavesPreferences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	custom := prefs.Preferences[catalog.ChordType]{
		TimeLimit: 25,
		Enabled:   []catalog.ChordType{catalog.ChordDominant},
	}
	if err := s.ChordPrefs().Save(ctx, custom); err != nil {
		t.Fatalf("save prefs: %v", err)
	}

	repo := s.ChordSessions()
	for i := 0; i < 3; i++ {
		id, err := repo.CreateSession(ctx, 10)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.CloseSession(ctx, id); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	if err := repo.DeleteAllSessions(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	sessions, err := repo.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("sessions after delete all = %d, want 0", len(sessions))
	}

	got, err := s.ChordPrefs().Load(ctx)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if got.TimeLimit != 25 || len(got.Enabled) != 1 {
		t.Errorf("preferences changed by delete all: %+v", got)
	}
}

func TestScaleSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScaleSessions()
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AppendItem(ctx, id, "Eb Dorian"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.CloseSession(ctx, id); err != nil {
		t.Fatalf("close: %v", err)
	}

	details, err := repo.SessionDetails(ctx, id)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details == nil || details.ItemCount != 1 || len(details.Items) != 1 {
		t.Fatalf("unexpected details: %+v", details)
	}
	if details.Items[0].Name != "Eb Dorian" {
		t.Errorf("item = %q, want %q", details.Items[0].Name, "Eb Dorian")
	}

	// Chord and scale tables are independent.
	chordSessions, err := s.ChordSessions().ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("list chords: %v", err)
	}
	if len(chordSessions) != 0 {
		t.Errorf("scale session leaked into chord history")
	}
}

func TestPreferencesFirstLoadCreatesDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	chord, err := s.ChordPrefs().Load(ctx)
	if err != nil {
		t.Fatalf("load chord prefs: %v", err)
	}
	if chord.TimeLimit != prefs.DefaultTimeLimit {
		t.Errorf("chord time limit = %d, want %d", chord.TimeLimit, prefs.DefaultTimeLimit)
	}
	if len(chord.Enabled) != len(catalog.AllChordTypes()) {
		t.Errorf("chord defaults enable %d types, want %d", len(chord.Enabled), len(catalog.AllChordTypes()))
	}

	scale, err := s.ScalePrefs().Load(ctx)
	if err != nil {
		t.Fatalf("load scale prefs: %v", err)
	}
	if len(scale.Enabled) != 7 {
		t.Errorf("scale defaults enable %d types, want 7", len(scale.Enabled))
	}

	// A second load reads the created row rather than re-creating it.
	again, err := s.ChordPrefs().Load(ctx)
	if err != nil {
		t.Fatalf("reload chord prefs: %v", err)
	}
	if again.TimeLimit != chord.TimeLimit || len(again.Enabled) != len(chord.Enabled) {
		t.Errorf("reload mismatch: %+v vs %+v", again, chord)
	}
}

func TestPreferencesSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := prefs.Preferences[catalog.ScaleType]{
		TimeLimit: 15,
		Enabled:   []catalog.ScaleType{catalog.ScaleLydian, catalog.ScaleLocrian},
	}
	if err := s.ScalePrefs().Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.ScalePrefs().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TimeLimit != 15 {
		t.Errorf("time limit = %d, want 15", got.TimeLimit)
	}
	if len(got.Enabled) != 2 || got.Enabled[0] != catalog.ScaleLydian || got.Enabled[1] != catalog.ScaleLocrian {
		t.Errorf("enabled = %v, want Lydian, Locrian", got.Enabled)
	}
}

func TestPreferencesSaveValidates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.ChordPrefs().Save(ctx, prefs.Preferences[catalog.ChordType]{
		TimeLimit: 2,
		Enabled:   []catalog.ChordType{catalog.ChordMajor},
	})
	if err == nil {
		t.Fatal("expected out-of-range time limit to be rejected")
	}

	err = s.ChordPrefs().Save(ctx, prefs.Preferences[catalog.ChordType]{
		TimeLimit: 10,
	})
	if err == nil {
		t.Fatal("expected empty category set to be rejected")
	}
}
