//go:build windows

package report

// DefaultPipeline is the pipeline "auto" resolves to on this platform.
const DefaultPipeline = PipelineWindows
