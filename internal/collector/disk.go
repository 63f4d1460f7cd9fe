// Disk usage collector for Linux.
// Walks the live mount table, drops pseudo filesystems and virtual devices,
// and sizes each remaining mount with statfs.
package collector

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// pseudoFSTypes contains filesystem types that carry no real storage.
var pseudoFSTypes = map[string]bool{
	"proc":            true,
	"sysfs":           true,
	"devtmpfs":        true,
	"devpts":          true,
	"tmpfs":           true,
	"cgroup":          true,
	"securityfs":      true,
	"configfs":        true,
	"debugfs":         true,
	"tracefs":         true,
	"pstore":          true,
	"efivarfs":        true,
	"mqueue":          true,
	"hugetlbfs":       true,
	"fusectl":         true,
	"fuse.gvfsd-fuse": true,
	"autofs":          true,
	"binfmt_misc":     true,
	"nsfs":            true,
	"bpf":             true,
	"iso9660":         true,
}

// virtualDevicePrefixes marks mount sources that are not block devices.
var virtualDevicePrefixes = []string{"/dev/loop", "udev", "none"}

// minTotalGB drops degenerate mounts the name filters miss.
const minTotalGB = 0.1

const bytesPerGB = 1 << 30

// mountEntry is one record of /proc/mounts.
type mountEntry struct {
	Device     string
	MountPoint string
	FSType     string
	Options    string
}

// MountCollector collects capacity for every real mounted filesystem.
type MountCollector struct {
	files   platform.FileReader
	statter platform.FSStatter
	path    string
	logger  *zap.Logger
}

// NewMountCollector creates a collector reading the mount table at path.
func NewMountCollector(files platform.FileReader, statter platform.FSStatter, path string, logger *zap.Logger) *MountCollector {
	return &MountCollector{files: files, statter: statter, path: path, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *MountCollector) Name() string { return "disk" }

// Collect returns the filtered mounts in mount-table order.
// Mounts that cannot be stat'ed are skipped individually.
func (c *MountCollector) Collect(ctx context.Context) []models.DiskEntry {
	data, err := c.files.ReadFile(c.path)
	if err != nil {
		c.logger.Debug("mount table not readable", zap.String("path", c.path), zap.Error(err))
		return nil
	}

	var results []models.DiskEntry
	for _, m := range parseMounts(string(data)) {
		if !isRealMount(m) {
			c.logger.Debug("Skipping pseudo filesystem",
				zap.String("mount", m.MountPoint),
				zap.String("fstype", m.FSType))
			continue
		}

		st, err := c.statter.Statfs(m.MountPoint)
		if err != nil {
			c.logger.Debug("Skipping unreadable mount",
				zap.String("mount", m.MountPoint), zap.Error(err))
			continue
		}
		entry, ok := diskEntryFromStat(m, st)
		if !ok {
			continue
		}
		results = append(results, entry)
	}
	return results
}

// isRealMount applies the filesystem type and device prefix filters.
func isRealMount(m mountEntry) bool {
	if pseudoFSTypes[m.FSType] {
		return false
	}
	for _, prefix := range virtualDevicePrefixes {
		if strings.HasPrefix(m.Device, prefix) {
			return false
		}
	}
	return true
}

// diskEntryFromStat converts statfs counters to gigabytes and applies the
// minimum-size filter. Free space is clamped to total.
func diskEntryFromStat(m mountEntry, st platform.FSStat) (models.DiskEntry, bool) {
	total := float64(st.Blocks) * float64(st.Frsize) / bytesPerGB
	if total < minTotalGB {
		return models.DiskEntry{}, false
	}
	free := float64(st.Bfree) * float64(st.Frsize) / bytesPerGB
	if free > total {
		free = total
	}
	return models.DiskEntry{
		MountPoint: m.MountPoint,
		FSType:     m.FSType,
		TotalGB:    total,
		FreeGB:     free,
	}, true
}

// parseMounts parses fstab-style records, keeping those with at least
// four fields.
func parseMounts(content string) []mountEntry {
	var entries []mountEntry
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		entries = append(entries, mountEntry{
			Device:     unescapeMountField(fields[0]),
			MountPoint: unescapeMountField(fields[1]),
			FSType:     fields[2],
			Options:    fields[3],
		})
	}
	return entries
}

// unescapeMountField decodes the kernel's three-digit octal escapes
// (\040 for space, \011 tab, \012 newline, \134 backslash).
func unescapeMountField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
