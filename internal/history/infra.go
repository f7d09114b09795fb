package history

import (
	"context"
	"database/sql"
	"time"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO translations (src_lang, tgt_lang, mode, source_text, preprocessed, translated, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id
	`, e.SrcLang, e.TgtLang, e.Mode, e.SourceText, e.Preprocessed, e.Translated, e.CreatedAt).Scan(&id)
	return id, err
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, src_lang, tgt_lang, mode, source_text, COALESCE(preprocessed, ''), translated, created_at
		FROM translations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.SrcLang,
			&e.TgtLang,
			&e.Mode,
			&e.SourceText,
			&e.Preprocessed,
			&e.Translated,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *repo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM translations`)
	return err
}
