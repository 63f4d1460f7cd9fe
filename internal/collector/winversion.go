// Windows OS-version collector.
// Maps the raw release token to a display name; on other systems it reports
// that the host is not Windows.
package collector

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/platform"
)

// NotWindows is reported when the Windows pipeline runs on another system.
const NotWindows = "Not Windows"

// windowsReleases is matched in order by case-insensitive substring. "10"
// comes first: Windows 10 and 11 both report release 10.
var windowsReleases = []struct {
	token string
	name  string
}{
	{"10", "Windows 10 or Greater"},
	{"8", "Windows 8"},
	{"7", "Windows 7"},
	{"vista", "Windows Vista"},
}

// WindowsVersionCollector determines the Windows release name.
type WindowsVersionCollector struct {
	host   platform.Host
	logger *zap.Logger
}

// NewWindowsVersionCollector creates a new Windows version collector.
func NewWindowsVersionCollector(host platform.Host, logger *zap.Logger) *WindowsVersionCollector {
	return &WindowsVersionCollector{host: host, logger: orNop(logger)}
}

// Name returns the collector identifier.
func (c *WindowsVersionCollector) Name() string { return "winversion" }

// Collect returns the display name. Lookup errors are embedded in the result.
func (c *WindowsVersionCollector) Collect(ctx context.Context) string {
	v, err := c.host.WindowsVersion()
	if err != nil {
		c.logger.Debug("Windows version lookup failed", zap.Error(err))
		return fmt.Sprintf("Unknown (Error: %v)", err)
	}
	if v.System != "Windows" {
		return NotWindows
	}
	return windowsDisplayName(v)
}

func windowsDisplayName(v platform.WindowsVersion) string {
	release := strings.ToLower(v.Release)
	for _, r := range windowsReleases {
		if strings.Contains(release, r.token) {
			return r.name
		}
	}
	return fmt.Sprintf("%s %s (%s)", v.System, v.Release, v.Version)
}
