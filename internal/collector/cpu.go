// Processor count collectors.
package collector

import (
	"context"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// LogicalCPUCollector counts logical processors.
type LogicalCPUCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewLogicalCPUCollector creates a new logical processor collector.
func NewLogicalCPUCollector(stats platform.Stats, logger *zap.Logger) *LogicalCPUCollector {
	return &LogicalCPUCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *LogicalCPUCollector) Name() string { return "cpu_logical" }

// Collect returns the logical processor count, unavailable on failure.
func (c *LogicalCPUCollector) Collect(ctx context.Context) models.ProcessorCount {
	n, err := c.stats.LogicalCores(ctx)
	if err != nil {
		c.logger.Debug("Logical CPU count unavailable", zap.Error(err))
		return models.ProcessorCount{}
	}
	return models.ProcessorCount{Count: n, Available: true}
}

// PhysicalCPUCollector counts physical cores, falling back to the logical count.
type PhysicalCPUCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewPhysicalCPUCollector creates a new physical core collector.
func NewPhysicalCPUCollector(stats platform.Stats, logger *zap.Logger) *PhysicalCPUCollector {
	return &PhysicalCPUCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *PhysicalCPUCollector) Name() string { return "cpu_physical" }

// Collect tries physical cores, then logical processors, then gives up
// with an unavailable zero.
func (c *PhysicalCPUCollector) Collect(ctx context.Context) models.ProcessorCount {
	n, err := c.stats.PhysicalCores(ctx)
	if err == nil {
		return models.ProcessorCount{Count: n, Available: true}
	}
	c.logger.Debug("Physical core count unavailable, trying logical", zap.Error(err))

	n, err = c.stats.LogicalCores(ctx)
	if err == nil {
		return models.ProcessorCount{Count: n, Available: true}
	}
	c.logger.Debug("Logical CPU count unavailable", zap.Error(err))
	return models.ProcessorCount{}
}
