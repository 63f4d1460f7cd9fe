//go:build windows

package platform

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/windows"
)

// isCDROMDrive asks the volume manager for the drive type of the
// partition's mount point ("D:").
func isCDROMDrive(p disk.PartitionStat) bool {
	root := p.Mountpoint
	if !strings.HasSuffix(root, `\`) {
		root += `\`
	}
	path, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return false
	}
	return windows.GetDriveType(path) == windows.DRIVE_CDROM
}
