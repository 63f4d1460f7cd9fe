//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type ntVersion struct{ major, minor uint32 }

// clientReleases maps NT kernel versions to their client release names.
var clientReleases = map[ntVersion]string{
	{5, 0}:  "2000",
	{5, 1}:  "XP",
	{5, 2}:  "2003Server",
	{6, 0}:  "Vista",
	{6, 1}:  "7",
	{6, 2}:  "8",
	{6, 3}:  "8.1",
	{10, 0}: "10",
}

// WindowsVersion reads the true kernel version via RtlGetVersion, which is
// not subject to manifest-based version lies.
func (o *OS) WindowsVersion() (WindowsVersion, error) {
	v := windows.RtlGetVersion()
	release, ok := clientReleases[ntVersion{v.MajorVersion, v.MinorVersion}]
	if !ok {
		release = fmt.Sprintf("%d.%d", v.MajorVersion, v.MinorVersion)
	}
	return WindowsVersion{
		System:  "Windows",
		Release: release,
		Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
	}, nil
}
