// OS identity collector for Linux.
// Reads /etc/os-release and falls back to `lsb_release -d` when the file is
// missing or carries neither PRETTY_NAME nor NAME plus VERSION.
package collector

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/models"
	"github.com/Guliveer/hostinfo/internal/platform"
)

// OSReleaseCollector determines the Linux distribution name.
type OSReleaseCollector struct {
	files      platform.FileReader
	cmds       platform.CommandRunner
	path       string
	lsbRelease string
	logger     *zap.Logger
}

// NewOSReleaseCollector creates a collector reading path, with lsbRelease as
// the descriptor command used for the fallback.
func NewOSReleaseCollector(files platform.FileReader, cmds platform.CommandRunner, path, lsbRelease string, logger *zap.Logger) *OSReleaseCollector {
	return &OSReleaseCollector{
		files:      files,
		cmds:       cmds,
		path:       path,
		lsbRelease: lsbRelease,
		logger:     orNop(logger),
	}
}

// Name returns the collector identifier.
func (c *OSReleaseCollector) Name() string { return "osrelease" }

// Collect returns the distribution name, or the Unknown sentinel.
func (c *OSReleaseCollector) Collect(ctx context.Context) models.OSIdentity {
	data, err := c.files.ReadFile(c.path)
	if err == nil {
		if name, ok := identityFromOSRelease(parseKeyValueFile(string(data))); ok {
			return models.OSIdentity{Name: name, Available: true}
		}
		c.logger.Debug("os-release has no usable name", zap.String("path", c.path))
	} else {
		c.logger.Debug("os-release not readable", zap.String("path", c.path), zap.Error(err))
	}

	out, err := c.cmds.Output(ctx, c.lsbRelease, "-d")
	if err != nil {
		c.logger.Debug("lsb_release fallback failed", zap.Error(err))
		return models.OSIdentity{Name: models.Unknown}
	}
	if desc, ok := parseLSBDescription(string(out)); ok {
		return models.OSIdentity{Name: desc, Available: true}
	}
	return models.OSIdentity{Name: models.Unknown}
}

// identityFromOSRelease prefers PRETTY_NAME, then "NAME VERSION".
func identityFromOSRelease(fields map[string]string) (string, bool) {
	if pretty := fields["PRETTY_NAME"]; pretty != "" {
		return pretty, true
	}
	name, hasName := fields["NAME"]
	version, hasVersion := fields["VERSION"]
	if hasName && hasVersion {
		return name + " " + version, true
	}
	return "", false
}

// parseKeyValueFile parses KEY=VALUE lines (like /etc/os-release), stripping
// double quotes around values.
func parseKeyValueFile(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"`)
	}
	return fields
}

// parseLSBDescription extracts the text after the first colon of
// `lsb_release -d` output ("Description:\tUbuntu 22.04.4 LTS").
func parseLSBDescription(out string) (string, bool) {
	_, desc, ok := strings.Cut(out, ":")
	if !ok {
		return "", false
	}
	desc = strings.TrimSpace(desc)
	return desc, desc != ""
}
