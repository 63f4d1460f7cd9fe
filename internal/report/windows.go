package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/collector"
	"github.com/Guliveer/hostinfo/internal/models"
)

// Windows is the Windows pipeline.
type Windows struct {
	src    Sources
	logger *zap.Logger
}

// NewWindows creates the Windows pipeline.
func NewWindows(src Sources, logger *zap.Logger) *Windows {
	return &Windows{src: src, logger: orNop(logger)}
}

// Run collects and prints the Windows fact block.
func (r *Windows) Run(ctx context.Context, w io.Writer) error {
	return WriteWindows(w, r.Collect(ctx))
}

// Collect runs every Windows collector once, in order.
func (r *Windows) Collect(ctx context.Context) models.WindowsFacts {
	r.logger.Info("Collecting host facts", zap.String("pipeline", PipelineWindows))

	var f models.WindowsFacts
	f.OSVersion = collector.Run(ctx, r.logger,
		collector.NewWindowsVersionCollector(r.src.Host, r.logger))
	f.Identity = collector.Run(ctx, r.logger,
		collector.NewIdentityCollector(r.src.Host, r.logger))
	f.Architecture = collector.Run(ctx, r.logger,
		collector.NewArchitectureCollector(r.src.Stats, r.logger))
	f.Memory = collector.Run(ctx, r.logger,
		collector.NewVirtualMemoryCollector(r.src.Stats, r.logger))
	f.Pagefile = collector.Run(ctx, r.logger,
		collector.NewPagefileCollector(r.src.Stats, r.logger))
	f.Processors = collector.Run(ctx, r.logger,
		collector.NewPhysicalCPUCollector(r.src.Stats, r.logger))
	f.VirtualMemory = collector.Run(ctx, r.logger,
		collector.NewVirtualMemorySizeCollector(r.src.Stats, r.logger))
	f.Drives = collector.Run(ctx, r.logger,
		collector.NewDriveCollector(r.src.Stats, r.logger))

	r.logger.Info("Collected host facts", zap.Int("drives", len(f.Drives)))
	return f
}

// WriteWindows prints the Windows fact block.
func WriteWindows(w io.Writer, f models.WindowsFacts) error {
	var b strings.Builder

	fmt.Fprintf(&b, "OS: %s\n", f.OSVersion)
	fmt.Fprintf(&b, "Architecture: %s\n", f.Architecture)
	fmt.Fprintf(&b, "Computer Name: %s\n", f.Identity.Hostname)
	fmt.Fprintf(&b, "User: %s\n", f.Identity.Username)
	fmt.Fprintf(&b, "RAM: %dMB / %dMB\n", f.Memory.UsedMB(), f.Memory.TotalMB)

	if f.VirtualMemory.Available {
		fmt.Fprintf(&b, "Virtual memory: %d MB\n", f.VirtualMemory.MB)
	} else {
		b.WriteString("Virtual memory: information not available\n")
	}

	// The last-resort zero prints as a count; see PhysicalCPUCollector.
	fmt.Fprintf(&b, "Processors: %d\n", f.Processors.Count)
	fmt.Fprintf(&b, "Memory Load: %.1f%%\n", f.Memory.UsedPercent)
	fmt.Fprintf(&b, "Pagefile: %dMB / %dMB\n", f.Pagefile.UsedMB, f.Pagefile.TotalMB)

	b.WriteString("Drives:\n")
	if len(f.Drives) == 0 {
		b.WriteString("  No drives found\n")
	}
	for _, d := range f.Drives {
		fmt.Fprintf(&b, "  %-10s %-8s %dGB free / %dGB total\n", d.Drive, d.FSType, d.FreeGB, d.TotalGB)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
