package platform

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
)

// CDROMOption is appended to a partition's Opts when the drive is an
// optical drive. The library itself only reports rw, ro and compress.
const CDROMOption = "cdrom"

// Partitions lists physical partitions, skipping pseudo devices, and flags
// optical drives with CDROMOption. On Windows the library may return the
// partitions it could read together with a non-nil *disk.Warnings listing
// the drives it could not.
func (o *OS) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	return tagCDROMs(parts, isCDROMDrive), err
}

// tagCDROMs appends CDROMOption to every partition isCDROM reports as an
// optical drive.
func tagCDROMs(parts []disk.PartitionStat, isCDROM func(disk.PartitionStat) bool) []disk.PartitionStat {
	for i := range parts {
		if hasOption(parts[i].Opts, CDROMOption) || !isCDROM(parts[i]) {
			continue
		}
		parts[i].Opts = append(parts[i].Opts, CDROMOption)
	}
	return parts
}

func hasOption(opts []string, opt string) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}
