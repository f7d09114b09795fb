package notice

import (
	"context"
	"time"
)

const (
	title   = "Serveur présentement indisponible revenez prochainement pour vérifier la disponibilité"
	message = "Service temporairement indisponible. Veuillez revenir ultérieurement"
)

type service struct {
	repo Repo
	now  func() time.Time
}

func NewService(repo Repo) Service {
	return &service{repo: repo, now: time.Now}
}

// Check — показывать ли уведомление: один раз в сутки (UTC) на клиента
func (s *service) Check(ctx context.Context, clientID string) (Notice, error) {
	now := s.now().UTC()

	seen, err := s.repo.LastSeen(ctx, clientID)
	if err != nil {
		return Notice{}, err
	}

	return Notice{
		Show:    !sameDay(seen, now),
		Title:   title,
		Message: message,
		GMTTime: now.Format("15:04"),
	}, nil
}

func (s *service) Ack(ctx context.Context, clientID string) error {
	return s.repo.MarkSeen(ctx, clientID, s.now().UTC())
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
