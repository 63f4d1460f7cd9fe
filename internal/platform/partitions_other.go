//go:build !windows

package platform

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// opticalFSTypes are filesystems only found on optical media.
var opticalFSTypes = map[string]bool{
	"iso9660": true,
	"udf":     true,
}

// isCDROMDrive has no drive-type query outside Windows, so optical media is
// recognised by filesystem type.
func isCDROMDrive(p disk.PartitionStat) bool {
	return opticalFSTypes[strings.ToLower(p.Fstype)]
}
