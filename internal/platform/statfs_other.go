//go:build !linux

package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

var errNoStatfs = errors.New("statfs is only wired on linux")

// Statfs is not available outside Linux; the Linux disk collector is the only caller.
func (o *OS) Statfs(path string) (FSStat, error) {
	return FSStat{}, errNoStatfs
}

// Uname assembles uname-like identity from the system-metrics library.
func (o *OS) Uname() (Uname, error) {
	ctx := context.Background()
	release, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return Uname{}, fmt.Errorf("kernel version: %w", err)
	}
	machine, err := host.KernelArch()
	if err != nil {
		return Uname{}, fmt.Errorf("kernel arch: %w", err)
	}
	node, err := os.Hostname()
	if err != nil {
		return Uname{}, fmt.Errorf("hostname: %w", err)
	}
	return Uname{
		Sysname:  systemName(runtime.GOOS),
		Nodename: node,
		Release:  release,
		Machine:  machine,
	}, nil
}
