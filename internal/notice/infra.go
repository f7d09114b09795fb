package notice

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) LastSeen(ctx context.Context, clientID string) (time.Time, error) {
	var seen time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT seen_on FROM notice_seen WHERE client_id = $1`,
		clientID,
	).Scan(&seen)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	return seen, err
}

func (r *repo) MarkSeen(ctx context.Context, clientID string, day time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notice_seen (client_id, seen_on)
		 VALUES ($1, $2)
		 ON CONFLICT (client_id) DO UPDATE SET seen_on = EXCLUDED.seen_on`,
		clientID, day.Format("2006-01-02"),
	)
	return err
}
