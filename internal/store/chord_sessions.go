package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/ent"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/abhisek/jazzgym/internal/history"
)

// ChordSessions is the chord-domain session repository. It satisfies both
// practice.SessionStore and history.Store.
type ChordSessions struct {
	client *ent.Client
}

func (r *ChordSessions) CreateSession(ctx context.Context, timeLimit int) (uuid.UUID, error) {
	ps, err := r.client.PracticeSession.Create().
		SetTimeLimit(timeLimit).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create practice session: %w", err)
	}
	return ps.ID, nil
}

func (r *ChordSessions) AppendItem(ctx context.Context, sessionID uuid.UUID, name string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.SessionChord.Create().
		SetName(name).
		SetSessionID(sessionID).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record chord: %w", err)
	}

	if err := tx.PracticeSession.UpdateOneID(sessionID).
		AddItemCount(1).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("bump item count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *ChordSessions) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	err := r.client.PracticeSession.UpdateOneID(sessionID).
		SetEndedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("close practice session: %w", err)
	}
	return nil
}

func (r *ChordSessions) ListSessions(ctx context.Context, limit int) ([]history.Session, error) {
	q := r.client.PracticeSession.Query().
		Where(practicesession.EndedAtNotNil()).
		Order(ent.Desc(practicesession.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list practice sessions: %w", err)
	}

	sessions := make([]history.Session, 0, len(rows))
	for _, ps := range rows {
		sessions = append(sessions, chordSessionRecord(ps))
	}
	return sessions, nil
}

func (r *ChordSessions) SessionDetails(ctx context.Context, id uuid.UUID) (*history.SessionDetails, error) {
	ps, err := r.client.PracticeSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get practice session: %w", err)
	}

	chords, err := ps.QueryChords().
		Order(ent.Asc(sessionchord.FieldDisplayedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session chords: %w", err)
	}

	items := make([]history.ItemRecord, 0, len(chords))
	for _, c := range chords {
		items = append(items, history.ItemRecord{Name: c.Name, DisplayedAt: c.DisplayedAt})
	}

	return &history.SessionDetails{
		Session: chordSessionRecord(ps),
		Items:   items,
	}, nil
}

func (r *ChordSessions) DeleteSession(ctx context.Context, id uuid.UUID) error {
	// Child records cascade at the database level.
	err := r.client.PracticeSession.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete practice session: %w", err)
	}
	return nil
}

func (r *ChordSessions) DeleteAllSessions(ctx context.Context) error {
	if _, err := r.client.PracticeSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete all practice sessions: %w", err)
	}
	return nil
}

func chordSessionRecord(ps *ent.PracticeSession) history.Session {
	return history.Session{
		ID:        ps.ID,
		StartedAt: ps.StartedAt,
		EndedAt:   ps.EndedAt,
		ItemCount: ps.ItemCount,
		TimeLimit: ps.TimeLimit,
	}
}
