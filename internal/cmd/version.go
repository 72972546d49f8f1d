package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show donegen version information.

Displays:
  - donegen version, commit, and build date
  - CUE SDK version (embedded in donegen)
  - the npm version generated projects will be set up for`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(version.GetInfo(), npmTool(cmd.Context(), npm.NewProber())))
	return nil
}

func npmTool(ctx context.Context, prober npm.Prober) version.ToolInfo {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tool := version.ToolInfo{Name: "npm"}
	v, err := prober.Probe(ctx)
	if err != nil {
		tool.Message = err.Error()
		return tool
	}
	tool.Found = true
	tool.Version = v.String()
	return tool
}
