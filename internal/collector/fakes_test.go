package collector

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

type fakeCommands struct {
	out   string
	err   error
	calls []string
}

func (f *fakeCommands) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
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
	hostname string
	hostErr  error
	username string
	userErr  error
	version  platform.WindowsVersion
	verErr   error
}

func (f *fakeHost) Uname() (platform.Uname, error) { return f.uname, f.unameErr }
func (f *fakeHost) Hostname() (string, error) { return f.hostname, f.hostErr }
func (f *fakeHost) Username() (string, error) { return f.username, f.userErr }
func (f *fakeHost) WindowsVersion() (platform.WindowsVersion, error) { return f.version, f.verErr }

type fakeStats struct {
	vm          *mem.VirtualMemoryStat
	vmErr       error
	swap        *mem.SwapMemoryStat
	swapErr     error
	physical    int
	physicalErr error
	logical     int
	logicalErr  error
	partitions  []disk.PartitionStat
	partErr     error
	usage       map[string]*disk.UsageStat
	arch        string
	archErr     error

	logicalCalls int
}

func (f *fakeStats) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakeStats) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return f.swap, f.swapErr
}

func (f *fakeStats) PhysicalCores(ctx context.Context) (int, error) {
	return f.physical, f.physicalErr
}

func (f *fakeStats) LogicalCores(ctx context.Context) (int, error) {
	f.logicalCalls++
	return f.logical, f.logicalErr
}

func (f *fakeStats) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return f.partitions, f.partErr
}

func (f *fakeStats) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	u, ok := f.usage[path]
	if !ok {
		return nil, fs.ErrPermission
	}
	return u, nil
}

func (f *fakeStats) KernelArch(ctx context.Context) (string, error) {
	return f.arch, f.archErr
}
