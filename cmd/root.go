// Package cmd wires the prdhub command-line surface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prdhub/prdhub/internal/config"
	"github.com/prdhub/prdhub/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	debugFlag   bool
	verboseFlag bool

	// closed by the root PersistentPostRun to stop --verbose mirroring
	verboseCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "prdhub",
	Short: "Publish PRD documents to a central registry repository",
	Long: `prdhub validates a PRD markdown document, updates the registry index,
and opens a pull request against the central PRD registry repository.

Every publish lands as a reviewable pull request: a branch with the PRD
document plus the updated registry.json, never a direct push.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	PersistentPostRun: teardownRun,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .prdhub/config.yaml, then ~/.config/prdhub/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to the configured log file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"mirror log lines to stderr")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("default_repo", defaults.DefaultRepo)
	viper.SetDefault("base_branch", defaults.BaseBranch)
	viper.SetDefault("registry_path", defaults.RegistryPath)
	viper.SetDefault("default_file", defaults.DefaultFile)
	viper.SetDefault("token_env_vars", defaults.TokenEnvVars)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .prdhub/config.yaml (current directory)
		// 2. ~/.config/prdhub/config.yaml (user config)
		if _, err := os.Stat(".prdhub/config.yaml"); err == nil {
			viper.SetConfigFile(".prdhub/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "prdhub"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine, defaults apply. Anything else (a config
		// file that exists but does not parse) should not be swallowed.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setupRun(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugFlag || os.Getenv("PRDHUB_DEBUG") != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o750); err == nil {
			if _, err := log.Init(cfg.LogFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
				log.InitDiscard()
			}
		} else {
			log.InitDiscard()
		}
	} else {
		log.InitDiscard()
		if !verboseFlag {
			log.SetEnabled(false)
		}
	}

	if verboseFlag {
		var ctx context.Context
		ctx, verboseCancel = context.WithCancel(context.Background())
		if ch := log.Subscribe(ctx); ch != nil {
			go func() {
				for event := range ch {
					fmt.Fprint(os.Stderr, event.Payload)
				}
			}()
		}
	}

	return nil
}

func teardownRun(cmd *cobra.Command, args []string) {
	if verboseCancel != nil {
		verboseCancel()
	}
}

// configFilePath returns the path config:set should write to.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return ".prdhub/config.yaml"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
