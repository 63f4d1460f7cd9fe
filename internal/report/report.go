// Package report runs one platform pipeline: it invokes every collector in a
// fixed order, applies the reporter-level fallbacks, and prints the facts as
// plain text.
package report

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Guliveer/hostinfo/internal/platform"
)

// Pipeline names.
const (
	PipelineAuto    = "auto"
	PipelineLinux   = "linux"
	PipelineWindows = "windows"
)

// Sources bundles every data source a pipeline may read.
type Sources struct {
	Files   platform.FileReader
	Cmds    platform.CommandRunner
	Statter platform.FSStatter
	Host    platform.Host
	Stats   platform.Stats
}

// FromOS binds every source to the same host implementation.
func FromOS(o *platform.OS) Sources {
	return Sources{Files: o, Cmds: o, Statter: o, Host: o, Stats: o}
}

// Paths locates the files and commands the Linux pipeline reads.
type Paths struct {
	OSRelease  string
	Proc       string
	LSBRelease string
}

// DefaultPaths returns the standard Linux locations.
func DefaultPaths() Paths {
	return Paths{
		OSRelease:  "/etc/os-release",
		Proc:       "/proc",
		LSBRelease: "lsb_release",
	}
}

// Reporter collects and prints one fact block.
type Reporter interface {
	Run(ctx context.Context, w io.Writer) error
}

// New returns the reporter for the named pipeline. "auto" resolves to the
// pipeline compiled for this platform.
func New(pipeline string, src Sources, paths Paths, logger *zap.Logger) (Reporter, error) {
	if pipeline == "" || pipeline == PipelineAuto {
		pipeline = DefaultPipeline
	}
	switch pipeline {
	case PipelineLinux:
		return NewLinux(src, paths, logger), nil
	case PipelineWindows:
		return NewWindows(src, logger), nil
	default:
		return nil, fmt.Errorf("unknown pipeline %q", pipeline)
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
