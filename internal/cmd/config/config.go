// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for donegen.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved --config path, resolving it from the
// environment when the command runs without the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	path := ""
	if cfg != nil {
		path = cfg.ConfigPath
	}
	if path == "" {
		resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{})
		if err != nil {
			return "", err
		}
		path = resolved.Value
	}
	return config.ExpandPath(path)
}
