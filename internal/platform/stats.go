package platform

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// VirtualMemory returns the physical memory summary.
func (o *OS) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

// SwapMemory returns the swap (pagefile on Windows) summary.
func (o *OS) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

// PhysicalCores returns the number of physical CPU cores.
func (o *OS) PhysicalCores(ctx context.Context) (int, error) {
	return countCPUs(ctx, false)
}

// LogicalCores returns the number of logical CPUs.
func (o *OS) LogicalCores(ctx context.Context) (int, error) {
	return countCPUs(ctx, true)
}

func countCPUs(ctx context.Context, logical bool) (int, error) {
	n, err := cpu.CountsWithContext(ctx, logical)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("cpu count unavailable (logical=%t)", logical)
	}
	return n, nil
}

// Usage returns capacity figures for the filesystem mounted at path.
func (o *OS) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

// KernelArch returns the native processor architecture. The library query
// takes no context, so ctx is only checked before it runs.
func (o *OS) KernelArch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	arch, err := host.KernelArch()
	if err != nil {
		return "", fmt.Errorf("kernel arch: %w", err)
	}
	return arch, nil
}
