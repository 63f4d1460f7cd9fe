// Host identity collectors: kernel, host/user names and architecture.
package collector

import (
	"context"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// KernelCollector reads uname identity.
type KernelCollector struct {
	host   platform.Host
	logger *zap.Logger
}

// NewKernelCollector creates a new kernel identity collector.
func NewKernelCollector(host platform.Host, logger *zap.Logger) *KernelCollector {
	return &KernelCollector{host: host, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *KernelCollector) Name() string { return "kernel" }

// Collect returns uname fields, each Unknown when empty or unreadable.
func (c *KernelCollector) Collect(ctx context.Context) models.KernelInfo {
	u, err := c.host.Uname()
	if err != nil {
		c.logger.Debug("uname failed", zap.Error(err))
		return models.KernelInfo{
			System:  models.Unknown,
			Release: models.Unknown,
			Machine: models.Unknown,
			Node:    models.Unknown,
		}
	}
	return models.KernelInfo{
		System:    orUnknown(u.Sysname),
		Release:   orUnknown(u.Release),
		Machine:   orUnknown(u.Machine),
		Node:      orUnknown(u.Nodename),
		Available: true,
	}
}

// IdentityCollector reads the host name and the invoking user's login name.
type IdentityCollector struct {
	host   platform.Host
	logger *zap.Logger
}

// NewIdentityCollector creates a new identity collector.
func NewIdentityCollector(host platform.Host, logger *zap.Logger) *IdentityCollector {
	return &IdentityCollector{host: host, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *IdentityCollector) Name() string { return "identity" }

// Collect returns host and user names, each falling back to Unknown.
func (c *IdentityCollector) Collect(ctx context.Context) models.Identity {
	id := models.Identity{Hostname: models.Unknown, Username: models.Unknown}
	if name, err := c.host.Hostname(); err == nil && name != "" {
		id.Hostname = name
	} else if err != nil {
		c.logger.Debug("hostname unavailable", zap.Error(err))
	}
	if name, err := c.host.Username(); err == nil && name != "" {
		id.Username = name
	} else if err != nil {
		c.logger.Debug("username unavailable", zap.Error(err))
	}
	return id
}

// ArchitectureCollector reads the processor architecture from the
// system-metrics library.
type ArchitectureCollector struct {
	stats  platform.Stats
	logger *zap.Logger
}

// NewArchitectureCollector creates a new architecture collector.
func NewArchitectureCollector(stats platform.Stats, logger *zap.Logger) *ArchitectureCollector {
	return &ArchitectureCollector{stats: stats, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *ArchitectureCollector) Name() string { return "architecture" }

// Collect returns the architecture string, or Unknown.
func (c *ArchitectureCollector) Collect(ctx context.Context) string {
	arch, err := c.stats.KernelArch(ctx)
	if err != nil {
		c.logger.Debug("architecture unavailable", zap.Error(err))
		return models.Unknown
	}
	return orUnknown(arch)
}

func orUnknown(s string) string {
	if s == "" {
		return models.Unknown
	}
	return s
}
