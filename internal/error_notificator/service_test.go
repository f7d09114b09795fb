package error_notificator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	got chan string
}

func (r *recorder) Notify(_ context.Context, source string, err error, details string) error {
	r.got <- FormatAlert(source, err, details)
	return nil
}

func TestService_NotifyIsAsync(t *testing.T) {
	rec := &recorder{got: make(chan string, 1)}
	svc := NewService(rec)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Notify(ctx, "translate", errors.New("status 503"), "fra_Latn → mos_Latn"))
	cancel()

	select {
	case msg := <-rec.got:
		require.Contains(t, msg, "translate")
		require.Contains(t, msg, "status 503")
		require.Contains(t, msg, "fra_Latn → mos_Latn")
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}
}

func TestInfra_DisabledWithoutToken(t *testing.T) {
	infra, err := NewInfra("", 0)
	require.NoError(t, err)
	require.NoError(t, infra.Notify(context.Background(), "speech", errors.New("boom"), ""))
}
