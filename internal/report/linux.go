package report

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/collector"
	"github.com/Guliveer/hostinfo/internal/models"
)

const bytesPerMB = 1024 * 1024

// Linux is the Linux pipeline.
type Linux struct {
	src    Sources
	paths  Paths
	logger *zap.Logger
}

// NewLinux creates the Linux pipeline.
func NewLinux(src Sources, paths Paths, logger *zap.Logger) *Linux {
	return &Linux{src: src, paths: paths, logger: orNop(logger)}
}

// Run collects and prints the Linux fact block.
func (r *Linux) Run(ctx context.Context, w io.Writer) error {
	return WriteLinux(w, r.Collect(ctx))
}

// Collect runs every Linux collector once, in order. The meminfo snapshot
// is taken first and handed to the swap collector.
func (r *Linux) Collect(ctx context.Context) models.LinuxFacts {
	r.logger.Info("Collecting host facts", zap.String("pipeline", PipelineLinux))
	proc := func(name string) string { return path.Join(r.paths.Proc, name) }

	var f models.LinuxFacts
	f.MemInfo = collector.Run(ctx, r.logger,
		collector.NewMemInfoCollector(r.src.Files, proc("meminfo"), r.logger))
	f.Load = collector.Run(ctx, r.logger,
		collector.NewLoadAvgCollector(r.src.Files, proc("loadavg"), r.logger))
	f.OS = collector.Run(ctx, r.logger,
		collector.NewOSReleaseCollector(r.src.Files, r.src.Cmds, r.paths.OSRelease, r.paths.LSBRelease, r.logger))
	f.Kernel = collector.Run(ctx, r.logger,
		collector.NewKernelCollector(r.src.Host, r.logger))
	f.Identity = collector.Run(ctx, r.logger,
		collector.NewIdentityCollector(r.src.Host, r.logger))
	if f.Kernel.Available && f.Kernel.Node != models.Unknown {
		f.Identity.Hostname = f.Kernel.Node
	}
	f.RAM = r.ram(ctx, f.MemInfo)
	f.Swap = collector.Run(ctx, r.logger,
		collector.NewSwapCollector(r.src.Files, proc("swaps"), f.MemInfo, r.logger))
	f.SwapMB = r.swap(ctx, f.Swap)
	f.Processors = collector.Run(ctx, r.logger,
		collector.NewLogicalCPUCollector(r.src.Stats, r.logger))
	f.Disks = collector.Run(ctx, r.logger,
		collector.NewMountCollector(r.src.Files, r.src.Statter, proc("mounts"), r.logger))

	r.logger.Info("Collected host facts", zap.Int("disks", len(f.Disks)))
	return f
}

// ram prefers meminfo and falls back to the system-metrics library.
func (r *Linux) ram(ctx context.Context, info models.MemInfo) models.Capacity {
	total := info.Value("MemTotal")
	if total > 0 {
		avail, ok := info.Get("MemAvailable")
		if !ok {
			avail = info.Value("MemFree")
		}
		return models.Capacity{FreeMB: avail / 1024, TotalMB: total / 1024, Available: true}
	}

	v, err := r.src.Stats.VirtualMemory(ctx)
	if err != nil || v == nil {
		r.logger.Debug("RAM fallback unavailable", zap.Error(err))
		return models.Capacity{}
	}
	return models.Capacity{FreeMB: v.Available / bytesPerMB, TotalMB: v.Total / bytesPerMB, Available: true}
}

// swap prefers the swap table and falls back to the system-metrics library
// when the table reports no swap.
func (r *Linux) swap(ctx context.Context, s models.SwapSnapshot) models.Capacity {
	if s.TotalKB > 0 {
		return models.Capacity{FreeMB: s.FreeKB / 1024, TotalMB: s.TotalKB / 1024, Available: true}
	}

	v, err := r.src.Stats.SwapMemory(ctx)
	if err != nil || v == nil {
		r.logger.Debug("Swap fallback unavailable", zap.Error(err))
		return models.Capacity{}
	}
	return models.Capacity{FreeMB: v.Free / bytesPerMB, TotalMB: v.Total / bytesPerMB, Available: true}
}

// WriteLinux prints the Linux fact block.
func WriteLinux(w io.Writer, f models.LinuxFacts) error {
	var b strings.Builder

	fmt.Fprintf(&b, "OS: %s\n", f.OS.Name)
	fmt.Fprintf(&b, "Kernel: %s %s\n", f.Kernel.System, f.Kernel.Release)
	fmt.Fprintf(&b, "Architecture: %s\n", f.Kernel.Machine)
	fmt.Fprintf(&b, "Hostname: %s\n", f.Identity.Hostname)
	fmt.Fprintf(&b, "User: %s\n", f.Identity.Username)

	if f.RAM.Available {
		fmt.Fprintf(&b, "RAM: %dMB free / %dMB total\n", f.RAM.FreeMB, f.RAM.TotalMB)
	} else {
		b.WriteString("RAM: information not available\n")
	}

	if vmalloc := f.MemInfo.Value("VmallocTotal"); vmalloc > 0 {
		fmt.Fprintf(&b, "Virtual memory: %d MB\n", vmalloc/1024)
	} else {
		b.WriteString("Virtual memory: information not available\n")
	}

	if f.SwapMB.Available {
		fmt.Fprintf(&b, "Swap: %dMB / %dMB\n", f.SwapMB.TotalMB, f.SwapMB.FreeMB)
	} else {
		b.WriteString("Swap: information not available\n")
	}

	if f.Processors.Available {
		fmt.Fprintf(&b, "Processors: %d\n", f.Processors.Count)
	} else {
		b.WriteString("Processors: information not available\n")
	}

	l := f.Load.Samples
	fmt.Fprintf(&b, "Load average: %.2f, %.2f, %.2f\n", l[0], l[1], l[2])

	b.WriteString("Drives:\n")
	if len(f.Disks) == 0 {
		b.WriteString("  No drives found\n")
	}
	for _, d := range f.Disks {
		fmt.Fprintf(&b, "  %-10s %-8s %.1fGB free / %.1fGB total\n", d.MountPoint, d.FSType, d.FreeGB, d.TotalGB)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
