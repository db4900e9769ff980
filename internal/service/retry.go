package service

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// callPolicy bounds each attempt with a timeout and retries a transient
// failure once.
type callPolicy struct {
	timeout time.Duration
	backoff time.Duration
	logger  *zap.Logger
}

// permanent marks errors that a second attempt cannot fix.
type permanent func(error) bool

func (p callPolicy) do(ctx context.Context, op string, isPermanent permanent, fn func(ctx context.Context) error) error {
	attempt := 0
	backoff := p.backoff
	if backoff <= 0 {
		backoff = time.Millisecond
	}
	b := retry.WithMaxRetries(1, retry.NewConstant(backoff))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		attemptCtx, cancel := ctx, context.CancelFunc(func() {})
		if p.timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.timeout)
		}
		defer cancel()

		err := fn(attemptCtx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || (isPermanent != nil && isPermanent(err)) {
			return err
		}

		p.logger.Warn("transient failure",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return retry.RetryableError(err)
	})
}
