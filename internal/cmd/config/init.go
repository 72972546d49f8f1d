package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/config"
	oerrors "github.com/donejs/donegen/internal/errors"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a donegen configuration file with default values.

The configuration file is created at ~/.donegen/config.yaml by default.
Use --config or DONEGEN_CONFIG to choose a different location.

Examples:
  # Initialize configuration
  donegen config init

  # Overwrite existing configuration
  donegen config init --force`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config path")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create config directory", filepath.Dir(path))
	}

	if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return oerrors.NewPermissionError("could not write config file", path)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	fmt.Fprintln(c.OutOrStdout(), "Validate with: donegen config vet")
	return nil
}
