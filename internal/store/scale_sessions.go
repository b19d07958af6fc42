package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/ent"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/abhisek/jazzgym/internal/history"
)

// ScaleSessions is the scale-domain session repository, structurally
// identical to ChordSessions over its own tables.
type ScaleSessions struct {
	client *ent.Client
}

func (r *ScaleSessions) CreateSession(ctx context.Context, timeLimit int) (uuid.UUID, error) {
	ss, err := r.client.ScaleSession.Create().
		SetTimeLimit(timeLimit).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create scale session: %w", err)
	}
	return ss.ID, nil
}

func (r *ScaleSessions) AppendItem(ctx context.Context, sessionID uuid.UUID, name string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.SessionScale.Create().
		SetName(name).
		SetSessionID(sessionID).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record scale: %w", err)
	}

	if err := tx.ScaleSession.UpdateOneID(sessionID).
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

func (r *ScaleSessions) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	err := r.client.ScaleSession.UpdateOneID(sessionID).
		SetEndedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("close scale session: %w", err)
	}
	return nil
}

func (r *ScaleSessions) ListSessions(ctx context.Context, limit int) ([]history.Session, error) {
	q := r.client.ScaleSession.Query().
		Where(scalesession.EndedAtNotNil()).
		Order(ent.Desc(scalesession.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scale sessions: %w", err)
	}

	sessions := make([]history.Session, 0, len(rows))
	for _, ss := range rows {
		sessions = append(sessions, scaleSessionRecord(ss))
	}
	return sessions, nil
}

func (r *ScaleSessions) SessionDetails(ctx context.Context, id uuid.UUID) (*history.SessionDetails, error) {
	ss, err := r.client.ScaleSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scale session: %w", err)
	}

	scales, err := ss.QueryScales().
		Order(ent.Asc(sessionscale.FieldDisplayedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session scales: %w", err)
	}

	items := make([]history.ItemRecord, 0, len(scales))
	for _, sc := range scales {
		items = append(items, history.ItemRecord{Name: sc.Name, DisplayedAt: sc.DisplayedAt})
	}

	return &history.SessionDetails{
		Session: scaleSessionRecord(ss),
		Items:   items,
	}, nil
}

func (r *ScaleSessions) DeleteSession(ctx context.Context, id uuid.UUID) error {
	err := r.client.ScaleSession.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete scale session: %w", err)
	}
	return nil
}

func (r *ScaleSessions) DeleteAllSessions(ctx context.Context) error {
	if _, err := r.client.ScaleSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete all scale sessions: %w", err)
	}
	return nil
}

func scaleSessionRecord(ss *ent.ScaleSession) history.Session {
	return history.Session{
		ID:        ss.ID,
		StartedAt: ss.StartedAt,
		EndedAt:   ss.EndedAt,
		ItemCount: ss.ItemCount,
		TimeLimit: ss.TimeLimit,
	}
}
