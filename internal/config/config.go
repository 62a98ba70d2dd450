// Package config provides configuration types, defaults, and persistence
// for prdhub.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prdhub/prdhub/internal/log"
	"github.com/prdhub/prdhub/internal/repoident"
	"github.com/prdhub/prdhub/internal/tracing"
)

// Config holds all configuration options for prdhub.
type Config struct {
	// DefaultRepo is the central registry repository PRDs are published
	// to when --repo is not given. Explicit configuration, not a hidden
	// literal, so deployments can point at their own registry.
	DefaultRepo string `mapstructure:"default_repo"`

	// BaseBranch is the branch registry.json is read from and PRs target.
	// Empty means "use the repository's default branch".
	BaseBranch string `mapstructure:"base_branch"`

	// RegistryPath is the path of the index file inside the registry repo.
	RegistryPath string `mapstructure:"registry_path"`

	// DefaultFile is the PRD file published when --file is not given.
	DefaultFile string `mapstructure:"default_file"`

	// TokenEnvVars are checked in order for the API credential.
	TokenEnvVars []string `mapstructure:"token_env_vars"`

	// RequiredSections configures the schema-aware validate command.
	RequiredSections []string `mapstructure:"required_sections"`

	// LogFile receives debug logs when --debug or PRDHUB_DEBUG is set.
	LogFile string `mapstructure:"log_file"`

	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DefaultRepo:      "prdhub/prd-registry",
		BaseBranch:       "main",
		RegistryPath:     "registry.json",
		DefaultFile:      "docs/prd.md",
		TokenEnvVars:     []string{"PRDHUB_TOKEN", "GITHUB_TOKEN"},
		RequiredSections: nil, // schema validator's own defaults apply
		LogFile:          DefaultLogFilePath(),
		Tracing:          tracing.DefaultConfig(),
	}
}

// DefaultLogFilePath returns the default debug log location.
func DefaultLogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "prdhub-debug.log"
	}
	return filepath.Join(home, ".config", "prdhub", "debug.log")
}

// DefaultTracesFilePath returns the default trace output location.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "prdhub", "traces", "traces.jsonl")
}

// Validate checks the configuration for values that would fail later in a
// confusing place.
func Validate(cfg Config) error {
	if cfg.DefaultRepo != "" {
		if _, err := repoident.Parse(cfg.DefaultRepo); err != nil {
			return fmt.Errorf("default_repo: %w", err)
		}
	}
	if cfg.RegistryPath == "" {
		return fmt.Errorf("registry_path must not be empty")
	}
	if len(cfg.TokenEnvVars) == 0 {
		return fmt.Errorf("token_env_vars must list at least one variable")
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks the tracing subsection.
func ValidateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	if cfg.Enabled {
		if cfg.Exporter == "file" && cfg.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if cfg.Exporter == "otlp" && cfg.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Token returns the first non-empty credential from the configured
// environment variables.
func (c Config) Token() (string, bool) {
	for _, name := range c.TokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, true
		}
	}
	return "", false
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# prdhub configuration

# Central registry repository (owner/name or github.com URL)
default_repo: prdhub/prd-registry

# Branch registry.json is read from and pull requests target.
# Leave empty to use the repository's default branch.
base_branch: main

# Path of the index file inside the registry repository
registry_path: registry.json

# PRD file published when --file is not given
default_file: docs/prd.md

# Environment variables checked in order for the API credential
token_env_vars:
  - PRDHUB_TOKEN
  - GITHUB_TOKEN

# Sections the 'prdhub validate' command requires (defaults: Overview, Goals, Requirements)
# required_sections:
#   - Overview
#   - Goals
#   - Requirements

# Tracing of publish pipeline steps
tracing:
  enabled: false
  exporter: file          # none, file, stdout, otlp
  # file_path: ~/.config/prdhub/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}
