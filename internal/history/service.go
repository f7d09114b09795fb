package history

import (
	"context"
	"fmt"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, e Entry) (int64, error) {
	if e.SrcLang == "" || e.TgtLang == "" {
		return 0, fmt.Errorf("history: languages required")
	}
	return s.repo.Create(ctx, e)
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.repo.ListRecent(ctx, ClampLimit(limit))
}

func (s *service) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// ClampLimit: 0 или меньше → DefaultLimit, больше MaxLimit → MaxLimit
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
