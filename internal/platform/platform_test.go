package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Rooted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "proc", "loadavg"), []byte("0.10 0.20 0.30 1/200 1234\n"), 0o644))

	o := New(root, 0)
	data, err := o.ReadFile("/proc/loadavg")
	require.NoError(t, err)
	assert.Equal(t, "0.10 0.20 0.30 1/200 1234\n", string(data))
}

func TestReadFile_Missing(t *testing.T) {
	o := New(t.TempDir(), 0)
	_, err := o.ReadFile("/etc/os-release")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutput_MissingCommand(t *testing.T) {
	o := New("", 0)
	_, err := o.Output(context.Background(), "hostinfo-no-such-command-for-tests")
	assert.Error(t, err)
}

func TestUsername_PrefersLogname(t *testing.T) {
	t.Setenv("LOGNAME", "alice")
	t.Setenv("USER", "bob")

	name, err := New("", 0).Username()
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestUsername_FallsThroughEmptyVars(t *testing.T) {
	t.Setenv("LOGNAME", "")
	t.Setenv("USER", "")
	t.Setenv("LNAME", "carol")

	name, err := New("", 0).Username()
	require.NoError(t, err)
	assert.Equal(t, "carol", name)
}

func TestSystemName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "Linux"},
		{"windows", "Windows"},
		{"darwin", "Darwin"},
		{"freebsd", "Freebsd"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, systemName(tt.goos))
		})
	}
}

func TestTagCDROMs(t *testing.T) {
	// Shaped the way the library returns them: opts never mention cdrom.
	parts := []disk.PartitionStat{
		{Device: "C:", Mountpoint: "C:", Fstype: "NTFS", Opts: []string{"rw", "compress"}},
		{Device: "D:", Mountpoint: "D:", Fstype: "CDFS", Opts: []string{"ro"}},
		{Device: "E:", Mountpoint: "E:", Fstype: "UDF", Opts: []string{"ro", CDROMOption}},
	}
	optical := map[string]bool{"D:": true, "E:": true}

	got := tagCDROMs(parts, func(p disk.PartitionStat) bool { return optical[p.Mountpoint] })

	assert.Equal(t, []string{"rw", "compress"}, got[0].Opts)
	assert.Equal(t, []string{"ro", CDROMOption}, got[1].Opts)
	assert.Equal(t, []string{"ro", CDROMOption}, got[2].Opts, "already tagged partitions are left alone")
}

func TestKernelArch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("", 0).KernelArch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
