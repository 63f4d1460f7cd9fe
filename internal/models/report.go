package models

// Capacity is a free/total pair in megabytes after reporter-level fallbacks.
type Capacity struct {
	FreeMB    uint64
	TotalMB   uint64
	Available bool
}

// LinuxFacts is everything the Linux pipeline reports.
type LinuxFacts struct {
	OS         OSIdentity
	Kernel     KernelInfo
	Identity   Identity
	MemInfo    MemInfo
	RAM        Capacity
	Swap       SwapSnapshot
	SwapMB     Capacity
	Processors ProcessorCount
	Load       LoadAverage
	Disks      []DiskEntry
}

// WindowsFacts is everything the Windows pipeline reports.
type WindowsFacts struct {
	OSVersion     string
	Identity      Identity
	Architecture  string
	Memory        VirtualMemory
	Pagefile      Pagefile
	Processors    ProcessorCount
	VirtualMemory VirtualMemorySize
	Drives        []DriveEntry
}
