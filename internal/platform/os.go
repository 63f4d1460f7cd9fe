package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

// OS binds every source interface to the running host.
type OS struct {
	// Root is prefixed to every file path read. Empty or "/" reads the live host.
	Root string

	// CommandTimeout bounds external commands. Zero means no limit.
	CommandTimeout time.Duration
}

// New returns an OS source rooted at root.
func New(root string, commandTimeout time.Duration) *OS {
	return &OS{Root: root, CommandTimeout: commandTimeout}
}

// ReadFile reads name relative to the configured root.
func (o *OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.path(name))
}

func (o *OS) path(name string) string {
	if o.Root == "" || o.Root == "/" {
		return name
	}
	return filepath.Join(o.Root, name)
}

// Output runs name with args and returns its standard output.
func (o *OS) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if o.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.CommandTimeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}

// Hostname returns the kernel's host name.
func (o *OS) Hostname() (string, error) {
	return os.Hostname()
}

// loginEnvVars are consulted in order before the account database.
var loginEnvVars = []string{"LOGNAME", "USER", "LNAME", "USERNAME"}

// Username returns the login name of the invoking user.
func (o *OS) Username() (string, error) {
	for _, key := range loginEnvVars {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("looking up current user: %w", err)
	}
	// Windows account names come back as DOMAIN\user.
	if i := strings.LastIndex(u.Username, `\`); i >= 0 {
		return u.Username[i+1:], nil
	}
	return u.Username, nil
}
