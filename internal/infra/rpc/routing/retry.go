// Package routing implements the retrying call executor used for every
// remote operation.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/metrics"
)

// Policy defines retry behavior for one operation kind.
type Policy struct {
	Attempts     int           `yaml:"attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
}

// DefaultPolicy provides sensible defaults for public RPC nodes.
var DefaultPolicy = Policy{
	Attempts:     5,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     8 * time.Second,
}

// Validate checks policy invariants.
func (p Policy) Validate() error {
	if p.Attempts < 1 {
		return fmt.Errorf("retry policy: attempts must be >= 1, got %d", p.Attempts)
	}
	if p.InitialDelay > p.MaxDelay {
		return fmt.Errorf("retry policy: initial delay %v exceeds max delay %v", p.InitialDelay, p.MaxDelay)
	}
	return nil
}

// Execute runs fn up to policy.Attempts times with exponential backoff
// between attempts. Every failure is treated as retryable; public nodes
// surface rate limits, gaps, and transient faults in too many shapes to
// whitelist. Exhaustion yields a MaxRetriesError wrapping the last error,
// never the raw error.
func Execute[T any](ctx context.Context, log *slog.Logger, operation string, policy Policy, fn func(context.Context) (T, error)) (T, error) {
	if log == nil {
		log = slog.Default()
	}

	var zero T
	var lastErr error

	for attempt := 0; attempt < policy.Attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if attempt == policy.Attempts-1 {
			break
		}

		delay := backoffDelay(attempt, policy)
		log.Warn("Retry scheduled",
			"operation", operation,
			"attempt", attempt,
			"delay", delay,
			"error", err)
		metrics.RetriesTotal.WithLabelValues(operation).Inc()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, &domain.MaxRetriesError{
		Operation: operation,
		Attempts:  policy.Attempts,
		Cause:     lastErr,
	}
}

// backoffDelay doubles the initial delay per attempt, capped at MaxDelay.
// No jitter: a single-client tool gains nothing from desynchronizing with
// itself.
func backoffDelay(attempt int, policy Policy) time.Duration {
	delay := float64(policy.InitialDelay) * math.Pow(2, float64(attempt))
	if delay > float64(policy.MaxDelay) {
		delay = float64(policy.MaxDelay)
	}
	return time.Duration(delay)
}
