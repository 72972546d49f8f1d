// Package config provides configuration loading and management.
package config

// AuthorConfig holds author defaults for generated manifests and licenses.
type AuthorConfig struct {
	// Name is the default author name.
	// Env: DONEGEN_AUTHOR_NAME, Default: git config user.name
	Name string `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`

	// Email is the default author email.
	// Env: DONEGEN_AUTHOR_EMAIL, Default: git config user.email
	Email string `mapstructure:"email" json:"email,omitempty" yaml:"email,omitempty"`

	// URL is the default author homepage.
	// Env: DONEGEN_AUTHOR_URL, Default: https://donejs.com
	URL string `mapstructure:"url" json:"url,omitempty" yaml:"url,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the donegen configuration.
// Loaded from ~/.donegen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Author AuthorConfig `mapstructure:"author" json:"author,omitempty" yaml:"author,omitempty"`

	// GithubAccount is the default GitHub user or organization for repository URLs.
	// Env: DONEGEN_GITHUB_ACCOUNT
	GithubAccount string `mapstructure:"githubAccount" json:"githubAccount,omitempty" yaml:"githubAccount,omitempty"`

	// Packages is the path to a JSON package table replacing the built-in one.
	// Env: DONEGEN_PACKAGES
	Packages string `mapstructure:"packages" json:"packages,omitempty" yaml:"packages,omitempty"`

	// SkipInstall disables the npm install step after generation.
	// Env: DONEGEN_SKIP_INSTALL
	SkipInstall bool `mapstructure:"skipInstall" json:"skipInstall,omitempty" yaml:"skipInstall,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultAuthorURL is the author homepage offered when none is configured.
const DefaultAuthorURL = "https://donejs.com"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Author: AuthorConfig{URL: DefaultAuthorURL},
	}
}

// DefaultConfigTemplate is written by `donegen config init`.
const DefaultConfigTemplate = `# donegen configuration
#
# Values here are defaults for generator prompts. Environment variables
# (DONEGEN_*) and command-line flags take precedence.

author:
  # name: Jane Doe
  # email: jane@example.com
  url: https://donejs.com

# GitHub user or organization used in synthesized repository URLs.
# githubAccount: donejs-user

# Path to a JSON file replacing the built-in DoneJS package table.
# packages: ~/.donegen/packages.json

# Skip "npm install" after generating a project.
skipInstall: false

log:
  timestamps: true
`
