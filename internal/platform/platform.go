// Package platform provides the host data sources the collectors read from.
// Each source sits behind a small interface so collectors can be fed fixture
// content in tests; OS binds every interface to the real host.
package platform

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// FileReader reads whole files such as /etc/os-release or /proc/meminfo.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// CommandRunner runs an external command to completion and returns its stdout.
// A non-zero exit status is reported as an error.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// FSStat is the subset of statfs(2) the disk collector needs.
type FSStat struct {
	Blocks uint64 // total data blocks, in fragment units
	Bfree  uint64 // free blocks
	Frsize uint64 // fragment size in bytes
}

// FSStatter queries capacity statistics for a mounted filesystem.
type FSStatter interface {
	Statfs(path string) (FSStat, error)
}

// Uname mirrors the fields of uname(2) that are reported.
type Uname struct {
	Sysname  string
	Nodename string
	Release  string
	Machine  string
}

// WindowsVersion is the platform identity the Windows OS-version probe maps.
// System is "Windows" only on Windows hosts.
type WindowsVersion struct {
	System  string // e.g. "Windows", "Linux"
	Release string // e.g. "10", "8.1", "Vista"
	Version string // e.g. "10.0.22631"
}

// Host answers identity questions about the running system.
type Host interface {
	Uname() (Uname, error)
	Hostname() (string, error)
	Username() (string, error)
	WindowsVersion() (WindowsVersion, error)
}

// Stats is the system-metrics library surface used by the collectors.
type Stats interface {
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)
	PhysicalCores(ctx context.Context) (int, error)
	LogicalCores(ctx context.Context) (int, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	Usage(ctx context.Context, path string) (*disk.UsageStat, error)
	KernelArch(ctx context.Context) (string, error)
}
