// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/donejs/donegen/internal/cmd/config"
	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/config"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/version"
)

// NewRootCmd creates the root command for donegen.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	// Populated in PersistentPreRunE, before any RunE reads it.
	gcfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "donegen",
		Short: "DoneJS project scaffolding",
		Long: `donegen generates DoneJS applications, plugins, generators,
components and models.

It asks a few questions, renders the matching templates, writes
package.json and installs dependencies with npm.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, gcfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: DONEGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewAppCmd(gcfg),
		NewPluginCmd(gcfg),
		NewGeneratorCmd(gcfg),
		NewComponentCmd(gcfg),
		NewSupermodelCmd(gcfg),
		configcmd.NewConfigCmd(gcfg),
		NewVersionCmd(gcfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command, gcfg *cmdtypes.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	pathValue, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
	}

	cfg, err := config.NewLoader().Load(pathValue.Value)
	if err != nil {
		// Commands work without a config file; config vet reports problems.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}

	gcfg.Config = cfg
	gcfg.ConfigPath = pathValue.Value
	gcfg.Verbose = verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(pathValue)
	output.Debug("donegen started", "version", version.Version)

	return nil
}
