package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/olusolaa/azmgmt/internal/core/ports"
)

const (
	DefaultRPS = 20
	minRPS     = 1
	maxRPS     = 100
)

// Limiter paces Azure management calls across every adapter of one process.
type Limiter struct {
	limiter *rate.Limiter
	rps     int
}

// New clamps rps to the supported range. Zero selects DefaultRPS silently;
// other out-of-range values are logged and replaced by the default.
func New(rps int, logger ports.Logger) *Limiter {
	limitValue := DefaultRPS
	if rps >= minRPS && rps <= maxRPS {
		limitValue = rps
	} else if rps != 0 {
		logger.Warnf(context.Background(), "Invalid Azure API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRPS, minRPS, maxRPS)
	}
	logger.Debugf(context.Background(), "Initialized Azure API rate limiter: %d RPS", limitValue)
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(limitValue), limitValue),
		rps:     limitValue,
	}
}

func (l *Limiter) RPS() int { return l.rps }

func (l *Limiter) Wait(ctx context.Context, logger ports.Logger) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for Azure API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
