//go:build !windows

package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// WindowsVersion reports the non-Windows system name so the Windows
// OS-version collector can tell it is running elsewhere.
func (o *OS) WindowsVersion() (WindowsVersion, error) {
	release, err := host.KernelVersionWithContext(context.Background())
	if err != nil {
		return WindowsVersion{}, err
	}
	return WindowsVersion{
		System:  systemName(runtime.GOOS),
		Release: release,
		Version: release,
	}, nil
}
