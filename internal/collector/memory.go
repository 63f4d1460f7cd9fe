// Memory collectors.
// Linux reads raw kilobyte counters from /proc/meminfo; Windows asks the
// system-metrics library for a summary converted to megabytes.
package collector

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

const bytesPerMB = 1024 * 1024

// MemInfoCollector reads /proc/meminfo counters.
type MemInfoCollector struct {
	files  platform.FileReader
	path   string
	logger *zap.Logger
}

// NewMemInfoCollector creates a collector reading the counters file at path.
func NewMemInfoCollector(files platform.FileReader, path string, logger *zap.Logger) *MemInfoCollector {
	return &MemInfoCollector{files: files, path: path, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *MemInfoCollector) Name() string { return "meminfo" }

// Collect returns the parsed counters. An unreadable file yields an empty map.
func (c *MemInfoCollector) Collect(ctx context.Context) models.MemInfo {
	data, err := c.files.ReadFile(c.path)
	if err != nil {
		c.logger.Debug("meminfo not readable", zap.String("path", c.path), zap.Error(err))
		return models.MemInfo{}
	}
	return ParseMemInfo(string(data))
}

// ParseMemInfo parses "Key: value unit" lines. The unit suffix is dropped
// without conversion. Lines whose value is not an integer are skipped.
func ParseMemInfo(content string) models.MemInfo {
	info := make(models.MemInfo)
	for _, line := range strings.Split(content, "\n") {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		info[strings.TrimSpace(key)] = v
	}
	return info
}

// VirtualMemoryCollector reads the physical memory summary from the
// system-metrics library.
type VirtualMemoryCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewVirtualMemoryCollector creates a new memory summary collector.
func NewVirtualMemoryCollector(stats platform.Stats, logger *zap.Logger) *VirtualMemoryCollector {
	return &VirtualMemoryCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *VirtualMemoryCollector) Name() string { return "memory" }

// Collect returns total and available megabytes plus the percent in use.
// On failure the error is logged and an all-zero summary returned.
func (c *VirtualMemoryCollector) Collect(ctx context.Context) models.VirtualMemory {
	v, err := c.stats.VirtualMemory(ctx)
	if err != nil || v == nil {
		c.logger.Error("Error getting memory info", zap.Error(err))
		return models.VirtualMemory{}
	}
	return models.VirtualMemory{
		TotalMB:     v.Total / bytesPerMB,
		AvailableMB: v.Available / bytesPerMB,
		UsedPercent: v.UsedPercent,
		Available:   true,
	}
}

// VirtualMemorySizeCollector sums physical memory and swap capacity.
type VirtualMemorySizeCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewVirtualMemorySizeCollector creates a new virtual memory size collector.
func NewVirtualMemorySizeCollector(stats platform.Stats, logger *zap.Logger) *VirtualMemorySizeCollector {
	return &VirtualMemorySizeCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *VirtualMemorySizeCollector) Name() string { return "virtual_memory" }

// Collect returns (physical total + swap total) in megabytes.
func (c *VirtualMemorySizeCollector) Collect(ctx context.Context) models.VirtualMemorySize {
	v, err := c.stats.VirtualMemory(ctx)
	if err != nil || v == nil {
		c.logger.Debug("Virtual memory size unavailable", zap.Error(err))
		return models.VirtualMemorySize{}
	}
	s, err := c.stats.SwapMemory(ctx)
	if err != nil || s == nil {
		c.logger.Debug("Virtual memory size unavailable", zap.Error(err))
		return models.VirtualMemorySize{}
	}
	return models.VirtualMemorySize{
		MB:        (v.Total + s.Total) / bytesPerMB,
		Available: true,
	}
}
