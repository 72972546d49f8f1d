// Package version provides version information for donegen.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModule is the module path of the CUE SDK used for config validation.
const cueModule = "cuelang.org/go"

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK version read from the build info.
	CUESDKVersion string `json:"cueSDKVersion"`
}

// ToolInfo describes an external tool donegen runs.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Found   bool   `json:"found"`

	// Message explains why the tool was not found.
	Message string `json:"message,omitempty"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: dependencyVersion(cueModule),
	}
}

func dependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("donegen:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n  CUE SDK:  %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion)
}

// String returns a human-readable tool line.
func (t ToolInfo) String() string {
	if !t.Found {
		msg := "not found"
		if t.Message != "" {
			msg += " (" + t.Message + ")"
		}
		return fmt.Sprintf("  %-8s %s", t.Name+":", msg)
	}
	return fmt.Sprintf("  %-8s %s", t.Name+":", t.Version)
}

// FullVersionString returns complete version information including external tools.
func FullVersionString(info Info, tools ...ToolInfo) string {
	var b strings.Builder
	b.WriteString(info.String())
	if len(tools) > 0 {
		b.WriteString("\n\nTools:")
		for _, t := range tools {
			b.WriteString("\n")
			b.WriteString(t.String())
		}
	}
	return b.String()
}
