package collector

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

func TestDriveCollector(t *testing.T) {
	stats := &fakeStats{
		partitions: []disk.PartitionStat{
			{Device: "C:", Mountpoint: "C:", Fstype: "NTFS", Opts: []string{"rw", "compress"}},
			// tagged by platform.OS.Partitions
			{Device: "D:", Mountpoint: "D:", Fstype: "CDFS", Opts: []string{"ro", platform.CDROMOption}},
			{Device: "", Mountpoint: "E:", Fstype: "NTFS"},
			{Device: "F:", Mountpoint: "F:", Fstype: "FAT32"},
			{Device: "G:", Mountpoint: "G:", Fstype: "exFAT"},
		},
		usage: map[string]*disk.UsageStat{
			"C:": {Total: 500<<30 + 123, Free: 120<<30 + 999},
			"D:": {Total: 4 << 30, Free: 0},
			"E:": {Total: 8 << 30, Free: 8 << 30},
			"G:": {Total: 64 << 30, Free: 1 << 29},
			// F: has no usage entry, so its query fails
		},
	}

	got := NewDriveCollector(stats, nil).Collect(context.Background())

	assert.Equal(t, []models.DriveEntry{
		{Drive: "C:", FSType: "NTFS", TotalGB: 500, FreeGB: 120},
		{Drive: "G:", FSType: "exFAT", TotalGB: 64, FreeGB: 0},
	}, got)
}

func TestDriveCollector_EnumerationFails(t *testing.T) {
	got := NewDriveCollector(&fakeStats{partErr: errFake}, nil).Collect(context.Background())
	assert.Empty(t, got)
}

func TestDriveCollector_PartialEnumeration(t *testing.T) {
	warnings := &disk.Warnings{Verbose: true}
	warnings.Add(errFake)
	stats := &fakeStats{
		partitions: []disk.PartitionStat{
			{Device: "C:", Mountpoint: "C:", Fstype: "NTFS", Opts: []string{"rw"}},
		},
		partErr: warnings.Reference(),
		usage: map[string]*disk.UsageStat{
			"C:": {Total: 256 << 30, Free: 100 << 30},
		},
	}

	got := NewDriveCollector(stats, nil).Collect(context.Background())

	assert.Equal(t, []models.DriveEntry{{Drive: "C:", FSType: "NTFS", TotalGB: 256, FreeGB: 100}}, got)
}
