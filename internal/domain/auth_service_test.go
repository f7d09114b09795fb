package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct{ password string }

func (f fakeAuthRepo) GetPassword(context.Context) (string, error) { return f.password, nil }

func TestAuthService_LoginAndValidate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := NewAuthService(fakeAuthRepo{password: "mooré"}, "secret")

	_, err := svc.Login(ctx, "wrong")
	req.ErrorIs(err, ErrInvalidPassword)

	token, err := svc.Login(ctx, "mooré")
	req.NoError(err)

	ok, err := svc.ValidateToken(ctx, token)
	req.NoError(err)
	req.True(ok)

	ok, _ = svc.ValidateToken(ctx, token+"x")
	req.False(ok)

	other := NewAuthService(fakeAuthRepo{password: "mooré"}, "another")
	ok, _ = other.ValidateToken(ctx, token)
	req.False(ok)
}

func TestAuthService_NoPasswordConfigured(t *testing.T) {
	svc := NewAuthService(fakeAuthRepo{}, "secret")
	_, err := svc.Login(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidPassword)
}
