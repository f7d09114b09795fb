package error_notificator

import "context"

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

// Notify не блокирует запрос: алерт уходит в фоне.
func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	go func() {
		_ = s.infra.Notify(context.WithoutCancel(ctx), source, err, details)
	}()
	return nil
}
