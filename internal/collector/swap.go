// Swap collectors.
// Linux sums partition sizes from /proc/swaps and takes free swap from the
// already collected meminfo counters; Windows reads the pagefile summary.
package collector

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// SwapCollector reads total swap from the swap table.
type SwapCollector struct {
	files   platform.FileReader
	path    string
	memInfo models.MemInfo
	logger  *zap.Logger
}

// NewSwapCollector creates a collector reading the swap table at path.
// memInfo is the snapshot already taken by MemInfoCollector; its SwapFree
// counter supplies free swap.
func NewSwapCollector(files platform.FileReader, path string, memInfo models.MemInfo, logger *zap.Logger) *SwapCollector {
	return &SwapCollector{files: files, path: path, memInfo: memInfo, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *SwapCollector) Name() string { return "swap" }

// Collect returns total and free swap in kilobytes, or an unavailable
// zero pair when the swap table cannot be read.
func (c *SwapCollector) Collect(ctx context.Context) models.SwapSnapshot {
	data, err := c.files.ReadFile(c.path)
	if err != nil {
		c.logger.Debug("swap table not readable", zap.String("path", c.path), zap.Error(err))
		return models.SwapSnapshot{}
	}
	return models.SwapSnapshot{
		TotalKB:   ParseSwaps(string(data)),
		FreeKB:    c.memInfo.Value("SwapFree"),
		Available: true,
	}
}

// ParseSwaps sums the size column (third field, kilobytes) of every record
// after the header line.
func ParseSwaps(content string) uint64 {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return 0
	}
	var total uint64
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		size, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			continue
		}
		total += size
	}
	return total
}

// PagefileCollector reads swap usage from the system-metrics library.
type PagefileCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewPagefileCollector creates a new pagefile collector.
func NewPagefileCollector(stats platform.Stats, logger *zap.Logger) *PagefileCollector {
	return &PagefileCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *PagefileCollector) Name() string { return "pagefile" }

// Collect returns used and total pagefile megabytes.
func (c *PagefileCollector) Collect(ctx context.Context) models.Pagefile {
	s, err := c.stats.SwapMemory(ctx)
	if err != nil || s == nil {
		c.logger.Error("Error getting pagefile info", zap.Error(err))
		return models.Pagefile{}
	}
	return models.Pagefile{
		UsedMB:    s.Used / bytesPerMB,
		TotalMB:   s.Total / bytesPerMB,
		Available: true,
	}
}
