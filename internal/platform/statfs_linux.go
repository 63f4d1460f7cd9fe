//go:build linux

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Statfs queries capacity statistics for the filesystem mounted at path.
// The path is not rooted: mount points come from the live mount table.
func (o *OS) Statfs(path string) (FSStat, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return FSStat{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	frsize := uint64(st.Frsize)
	if frsize == 0 {
		frsize = uint64(st.Bsize)
	}
	return FSStat{
		Blocks: st.Blocks,
		Bfree:  st.Bfree,
		Frsize: frsize,
	}, nil
}

// Uname returns the kernel identity via uname(2).
func (o *OS) Uname() (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, fmt.Errorf("uname: %w", err)
	}
	return Uname{
		Sysname:  unix.ByteSliceToString(u.Sysname[:]),
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
