package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guliveer/hostinfo/internal/models"
)

func TestOSRelease_PrettyName(t *testing.T) {
	files := fakeFiles{"/etc/os-release": "NAME=\"Ubuntu\"\nVERSION=\"22.04.4 LTS (Jammy Jellyfish)\"\nPRETTY_NAME=\"Ubuntu 22.04.4 LTS\"\nID=ubuntu\n"}
	cmds := &fakeCommands{}

	got := NewOSReleaseCollector(files, cmds, "/etc/os-release", "lsb_release", nil).Collect(context.Background())

	assert.Equal(t, models.OSIdentity{Name: "Ubuntu 22.04.4 LTS", Available: true}, got)
	assert.Empty(t, cmds.calls, "lsb_release must not run when os-release is usable")
}

func TestOSRelease_NameAndVersion(t *testing.T) {
	files := fakeFiles{"/etc/os-release": "NAME=Foo\nVERSION=1\n"}

	got := NewOSReleaseCollector(files, &fakeCommands{}, "/etc/os-release", "lsb_release", nil).Collect(context.Background())

	assert.Equal(t, "Foo 1", got.Name)
}

func TestOSRelease_FallsBackToLSB(t *testing.T) {
	tests := []struct {
		name  string
		files fakeFiles
	}{
		{"missing file", fakeFiles{}},
		{"no usable keys", fakeFiles{"/etc/os-release": "ID=arch\nNAME=Arch\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := &fakeCommands{out: "Description:\tDebian GNU/Linux 12 (bookworm)\n"}

			got := NewOSReleaseCollector(tt.files, cmds, "/etc/os-release", "lsb_release", nil).Collect(context.Background())

			assert.Equal(t, "Debian GNU/Linux 12 (bookworm)", got.Name)
			assert.True(t, got.Available)
			assert.Equal(t, []string{"lsb_release"}, cmds.calls)
		})
	}
}

func TestOSRelease_Unknown(t *testing.T) {
	tests := []struct {
		name string
		cmds *fakeCommands
	}{
		{"command fails", &fakeCommands{err: errFake}},
		{"no colon in output", &fakeCommands{out: "garbage"}},
		{"empty description", &fakeCommands{out: "Description:   \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewOSReleaseCollector(fakeFiles{}, tt.cmds, "/etc/os-release", "lsb_release", nil).Collect(context.Background())
			assert.Equal(t, models.OSIdentity{Name: models.Unknown}, got)
		})
	}
}

func TestParseKeyValueFile(t *testing.T) {
	fields := parseKeyValueFile("# comment=ignored\nPRETTY_NAME=\"Fedora Linux 40\"\nHOME_URL=https://x.org/?a=b\n\nnot a pair\n")

	assert.Equal(t, map[string]string{
		"PRETTY_NAME": "Fedora Linux 40",
		"HOME_URL":    "https://x.org/?a=b",
	}, fields)
}
