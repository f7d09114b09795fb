package notice

import (
	"context"
	"time"
)

type Notice struct {
	Show    bool   `json:"show"`
	Title   string `json:"title"`
	Message string `json:"message"`
	GMTTime string `json:"gmt_time"` // HH:MM
}

type Repo interface {
	// LastSeen — дата последнего подтверждения, zero если не было
	LastSeen(ctx context.Context, clientID string) (time.Time, error)
	MarkSeen(ctx context.Context, clientID string, day time.Time) error
}

type Service interface {
	Check(ctx context.Context, clientID string) (Notice, error)
	Ack(ctx context.Context, clientID string) error
}
