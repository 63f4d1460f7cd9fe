// Drive enumeration collector for Windows.
// Lists partitions through the system-metrics library and sizes each one in
// whole gigabytes.
package collector

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// DriveCollector collects per-partition capacity.
type DriveCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewDriveCollector creates a new drive collector.
func NewDriveCollector(stats platform.Stats, logger *zap.Logger) *DriveCollector {
	return &DriveCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *DriveCollector) Name() string { return "drives" }

// Collect returns one entry per readable partition. CD-ROM partitions and
// partitions without a device are skipped; a partition whose usage query
// fails is logged and skipped without aborting the rest. An enumeration
// error that still returned partitions only lost some drives, so the
// remaining ones are kept.
func (c *DriveCollector) Collect(ctx context.Context) []models.DriveEntry {
	partitions, err := c.stats.Partitions(ctx)
	if err != nil {
		if len(partitions) == 0 {
			c.logger.Error("Error getting drives info", zap.Error(err))
			return nil
		}
		c.logger.Warn("Some drives could not be enumerated",
			zap.Int("found", len(partitions)), zap.Error(err))
	}

	var drives []models.DriveEntry
	for _, p := range partitions {
		if isCDROM(p) || p.Device == "" {
			continue
		}

		usage, err := c.stats.Usage(ctx, p.Mountpoint)
		if err != nil || usage == nil {
			c.logger.Warn("Error reading drive",
				zap.String("drive", p.Device), zap.Error(err))
			continue
		}
		if usage.Total == 0 {
			continue
		}
		drives = append(drives, models.DriveEntry{
			Drive:   p.Device,
			FSType:  p.Fstype,
			TotalGB: usage.Total / bytesPerGB,
			FreeGB:  usage.Free / bytesPerGB,
		})
	}
	return drives
}

// isCDROM reports the option platform.OS.Partitions tags optical drives with.
func isCDROM(p disk.PartitionStat) bool {
	for _, opt := range p.Opts {
		if strings.Contains(opt, platform.CDROMOption) {
			return true
		}
	}
	return false
}
