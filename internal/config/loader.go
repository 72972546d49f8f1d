package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for donegen configuration.
const envPrefix = "DONEGEN"

// envBindings maps config keys to environment variables whose names do not
// follow from the key alone.
var envBindings = map[string]string{
	"author.name":    "DONEGEN_AUTHOR_NAME",
	"author.email":   "DONEGEN_AUTHOR_EMAIL",
	"author.url":     "DONEGEN_AUTHOR_URL",
	"githubAccount":  "DONEGEN_GITHUB_ACCOUNT",
	"packages":       "DONEGEN_PACKAGES",
	"skipInstall":    "DONEGEN_SKIP_INSTALL",
	"log.timestamps": "DONEGEN_LOG_TIMESTAMPS",
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	v.SetDefault("author.url", DefaultAuthorURL)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Packages, err = ExpandPath(cfg.Packages); err != nil {
		return nil, fmt.Errorf("expanding packages path: %w", err)
	}

	return &cfg, nil
}
