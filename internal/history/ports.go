package history

import (
	"context"
	"time"
)

// Entry — одна выполненная трансляция
type Entry struct {
	ID           int64     `json:"id"`
	SrcLang      string    `json:"src_lang"`
	TgtLang      string    `json:"tgt_lang"`
	Mode         string    `json:"mode"`
	SourceText   string    `json:"source_text"`
	Preprocessed string    `json:"preprocessed,omitempty"`
	Translated   string    `json:"translated"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repo interface {
	Create(ctx context.Context, e Entry) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
	DeleteAll(ctx context.Context) error
}

type Service interface {
	Add(ctx context.Context, e Entry) (int64, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	DeleteAll(ctx context.Context) error
}
