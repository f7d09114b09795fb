package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/Vovarama1992/moore_demo/internal/ports"
)

var ErrInvalidPassword = errors.New("invalid password")

type authService struct {
	repo   ports.AuthRepo
	secret string
}

func NewAuthService(repo ports.AuthRepo, secret string) ports.AuthService {
	return &authService{
		repo:   repo,
		secret: secret,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	realPass, err := s.repo.GetPassword(ctx)
	if err != nil {
		return "", err
	}
	if realPass == "" || !hmac.Equal([]byte(password), []byte(realPass)) {
		return "", ErrInvalidPassword
	}
	return s.sign("admin"), nil
}

func (s *authService) ValidateToken(_ context.Context, token string) (bool, error) {
	return hmac.Equal([]byte(token), []byte(s.sign("admin"))), nil
}

func (s *authService) sign(msg string) string {
	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}
