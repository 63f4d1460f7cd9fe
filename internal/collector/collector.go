// Package collector implements the host-fact probes. Each collector reads one
// category of host state through platform sources and always returns a value;
// a failed read degrades to that value's unavailable form instead of an error.
package collector

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Collector is implemented by every probe.
type Collector[T any] interface {
	// Name returns the unique identifier for this collector.
	Name() string

	// Collect reads the fact. It never fails; unavailable data is encoded
	// in the returned value.
	Collect(ctx context.Context) T
}

// Run invokes c once and logs how long it took.
func Run[T any](ctx context.Context, logger *zap.Logger, c Collector[T]) T {
	start := time.Now()
	v := c.Collect(ctx)
	logger.Debug("Collected",
		zap.String("collector", c.Name()),
		zap.Duration("took", time.Since(start)))
	return v
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
