// Package gateway bounds outbound calls to external providers.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"whatwashere/internal/errors"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	// ErrTimeout is returned when a guarded call outlives its deadline.
	ErrTimeout = errors.New("gateway call timed out")
	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = errors.New("gateway temporarily unavailable")
)

// Settings configures a Guard.
type Settings struct {
	Name string

	// Timeout bounds each call, including time spent waiting on the limiter.
	Timeout time.Duration

	// MinInterval spaces calls apart. Zero disables pacing.
	MinInterval time.Duration

	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32

	// BreakerCooldown is how long the breaker stays open.
	BreakerCooldown time.Duration

	// Expected reports errors that are normal outcomes and must not trip the breaker.
	Expected func(error) bool
}

// Guard runs calls with a deadline, a rate limit and a circuit breaker.
type Guard struct {
	name     string
	timeout  time.Duration
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
	expected func(error) bool
	logger   *slog.Logger
}

// NewGuard creates a guard for one provider.
func NewGuard(settings Settings, logger *slog.Logger) *Guard {
	limit := rate.Inf
	if settings.MinInterval > 0 {
		limit = rate.Every(settings.MinInterval)
	}

	failures := settings.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	expected := settings.Expected
	if expected == nil {
		expected = func(error) bool { return false }
	}

	g := &Guard{
		name:     settings.Name,
		timeout:  settings.Timeout,
		limiter:  rate.NewLimiter(limit, 1),
		expected: expected,
		logger:   logger.With(slog.String("gateway", settings.Name)),
	}

	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			g.logger.Warn("Circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || g.expected(err)
		},
	})

	return g
}

// Name returns the provider name.
func (g *Guard) Name() string {
	return g.name
}

// Do runs fn under the guard. fn must honor ctx.
func Do[T any](ctx context.Context, g *Guard, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := g.breaker.Execute(func() (any, error) {
		if err := g.limiter.Wait(callCtx); err != nil {
			return nil, errors.Wrap(err, "wait for rate limiter")
		}

		return fn(callCtx)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return zero, errors.Wrap(ErrUnavailable, g.name)
		case ctx.Err() == nil && callCtx.Err() != nil:
			g.logger.Debug("Gateway call timed out", slog.Duration("timeout", g.timeout))

			return zero, errors.Wrap(ErrTimeout, g.name)
		}

		return zero, err
	}

	result, ok := out.(T)
	if !ok {
		return zero, nil
	}

	return result, nil
}
