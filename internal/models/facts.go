// Package models defines the snapshot values the collectors produce.
// Every value carries its own notion of availability so that "zero" and
// "unknown" stay distinguishable all the way to the report.
package models

// Unknown is the sentinel printed for identity facts that could not be read.
const Unknown = "Unknown"

// OSIdentity is the display name of the operating system.
type OSIdentity struct {
	Name      string
	Available bool
}

// KernelInfo holds uname-style identity of the running kernel.
type KernelInfo struct {
	System    string
	Release   string
	Machine   string
	Node      string
	Available bool
}

// Identity holds the host and user names.
type Identity struct {
	Hostname string
	Username string
}

// MemInfo maps /proc/meminfo counter names to their values in kilobytes.
// Counters that were not reported are absent rather than zero.
type MemInfo map[string]uint64

// Get returns the counter value and whether it was reported.
func (m MemInfo) Get(key string) (uint64, bool) {
	v, ok := m[key]
	return v, ok
}

// Value returns the counter value, or 0 when absent.
func (m MemInfo) Value(key string) uint64 {
	return m[key]
}

// VirtualMemory is a memory summary in megabytes, as reported by the
// system-metrics library.
type VirtualMemory struct {
	TotalMB     uint64
	AvailableMB uint64
	UsedPercent float64
	Available   bool
}

// UsedMB returns total minus available, never underflowing.
func (v VirtualMemory) UsedMB() uint64 {
	if v.AvailableMB > v.TotalMB {
		return 0
	}
	return v.TotalMB - v.AvailableMB
}

// SwapSnapshot is swap capacity in kilobytes. Zero/zero with Available
// false means the swap table could not be read.
type SwapSnapshot struct {
	TotalKB   uint64
	FreeKB    uint64
	Available bool
}

// Pagefile is swap usage in megabytes on the Windows pipeline.
type Pagefile struct {
	UsedMB    uint64
	TotalMB   uint64
	Available bool
}

// LoadAverage holds the 1, 5 and 15 minute scheduler load, in that order.
type LoadAverage struct {
	Samples   [3]float64
	Available bool
}

// DiskEntry is one mounted filesystem, sized in gigabytes.
type DiskEntry struct {
	MountPoint string
	FSType     string
	TotalGB    float64
	FreeGB     float64
}

// DriveEntry is one Windows partition, sized in whole gigabytes.
type DriveEntry struct {
	Drive   string
	FSType  string
	TotalGB uint64
	FreeGB  uint64
}

// ProcessorCount is the number of processors. Available false means the
// count could not be determined.
type ProcessorCount struct {
	Count     int
	Available bool
}

// VirtualMemorySize is the combined physical plus swap capacity in megabytes.
type VirtualMemorySize struct {
	MB        uint64
	Available bool
}
