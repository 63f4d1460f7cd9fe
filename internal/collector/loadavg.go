package collector

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// LoadAvgCollector reads the 1/5/15 minute load from /proc/loadavg.
type LoadAvgCollector struct {
	files  platform.FileReader
	path   string
	logger *zap.Logger
}

// NewLoadAvgCollector creates a collector reading the file at path.
func NewLoadAvgCollector(files platform.FileReader, path string, logger *zap.Logger) *LoadAvgCollector {
	return &LoadAvgCollector{files: files, path: path, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *LoadAvgCollector) Name() string { return "loadavg" }

// Collect returns the three load samples, or zeros if the file is missing or malformed.
func (c *LoadAvgCollector) Collect(ctx context.Context) models.LoadAverage {
	data, err := c.files.ReadFile(c.path)
	if err != nil {
		c.logger.Debug("loadavg not readable", zap.String("path", c.path), zap.Error(err))
		return models.LoadAverage{}
	}
	return ParseLoadAvg(string(data))
}

// ParseLoadAvg parses the first three fields of a loadavg line.
func ParseLoadAvg(content string) models.LoadAverage {
	fields := strings.Fields(content)
	if len(fields) < 3 {
		return models.LoadAverage{}
	}
	var avg models.LoadAverage
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return models.LoadAverage{}
		}
		avg.Samples[i] = v
	}
	avg.Available = true
	return avg
}
