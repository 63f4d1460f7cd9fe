package report

import (
	"context"
	"errors"
	"io/fs"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Guliveer/hostinfo/internal/platform"
)

var errFake = errors.New("fake failure")

type fakeFiles map[string]string

func (f fakeFiles) ReadFile(name string) ([]byte, error) {
	content, ok := f[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

type fakeCommands struct{ err error }

func (f fakeCommands) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("Description:\tFallback Linux 1.0\n"), nil
}

type fakeStatter map[string]platform.FSStat

func (f fakeStatter) Statfs(path string) (platform.FSStat, error) {
	st, ok := f[path]
	if !ok {
		return platform.FSStat{}, fs.ErrPermission
	}
	return st, nil
}

type fakeHost struct {
	uname    platform.Uname
	unameErr error
	version  platform.WindowsVersion
}

func (f fakeHost) Uname() (platform.Uname, error) { return f.uname, f.unameErr }
func (f fakeHost) Hostname() (string, error) { return "fallback-host", nil }
func (f fakeHost) Username() (string, error) { return "alice", nil }
func (f fakeHost) WindowsVersion() (platform.WindowsVersion, error) { return f.version, nil }

type fakeStats struct {
	vm         *mem.VirtualMemoryStat
	vmErr      error
	swap       *mem.SwapMemoryStat
	swapErr    error
	physical   int
	logical    int
	cpuErr     error
	partitions []disk.PartitionStat
	usage      map[string]*disk.UsageStat
	arch       string
}

func (f *fakeStats) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakeStats) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return f.swap, f.swapErr
}

func (f *fakeStats) PhysicalCores(ctx context.Context) (int, error) {
	return f.physical, f.cpuErr
}

func (f *fakeStats) LogicalCores(ctx context.Context) (int, error) {
	return f.logical, f.cpuErr
}

func (f *fakeStats) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return f.partitions, nil
}

func (f *fakeStats) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	u, ok := f.usage[path]
	if !ok {
		return nil, fs.ErrPermission
	}
	return u, nil
}

func (f *fakeStats) KernelArch(ctx context.Context) (string, error) {
	return f.arch, nil
}
