package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"whatwashere/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestGuard(settings Settings) *Guard {
	return NewGuard(settings, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDo_ReturnsResult(t *testing.T) {
	g := newTestGuard(Settings{Name: "test", Timeout: time.Second})

	got, err := Do(context.Background(), g, func(ctx context.Context) (string, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestDo_TimeoutIsFailure(t *testing.T) {
	g := newTestGuard(Settings{Name: "slow", Timeout: 20 * time.Millisecond})

	_, err := Do(context.Background(), g, func(ctx context.Context) (string, error) {
		<-ctx.Done()

		return "", ctx.Err()
	})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDo_CallerCancellationIsNotTimeout(t *testing.T) {
	g := newTestGuard(Settings{Name: "cancel", Timeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, g, func(ctx context.Context) (int, error) {
		return 0, ctx.Err()
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	g := newTestGuard(Settings{Name: "flaky", BreakerFailures: 2, BreakerCooldown: time.Minute})
	calls := 0
	fail := func(context.Context) (int, error) {
		calls++

		return 0, errBoom
	}

	for range 2 {
		_, err := Do(context.Background(), g, fail)
		assert.ErrorIs(t, err, errBoom)
	}

	_, err := Do(context.Background(), g, fail)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
}

func TestDo_ExpectedErrorsDoNotTrip(t *testing.T) {
	errMiss := errors.New("no match")
	g := newTestGuard(Settings{
		Name:            "geocoder",
		BreakerFailures: 1,
		BreakerCooldown: time.Minute,
		Expected:        func(err error) bool { return errors.Is(err, errMiss) },
	})

	for range 3 {
		_, err := Do(context.Background(), g, func(context.Context) (int, error) {
			return 0, errMiss
		})
		assert.ErrorIs(t, err, errMiss)
	}
}
