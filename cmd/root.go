package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/knowncmd/internal/config"
	"github.com/zjrosen/knowncmd/internal/flags"
	"github.com/zjrosen/knowncmd/internal/log"
)

// defaultConfigPath is where a default config is written when none exists.
const defaultConfigPath = ".knowncmd/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	cfgUsed    string
	cfgErr     error
	jsonOutput bool
	debugFlag  bool

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "knowncmd",
	Short: "Typed registry of known host commands",
	Long: `knowncmd inspects and checks the table of known host commands: the
identifiers a host accepts through executeCommand, with the parameter list and
result type each one is declared with.

The table merges the built-in declarations with declaration files from
~/.knowncmd/declarations and the directories listed in the config file.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .knowncmd/config.yaml, then ~/.config/knowncmd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "write JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (path from log.file or KNOWNCMD_LOG)")
}

func initConfig() {
	v := viper.New()
	v.SetEnvPrefix("KNOWNCMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .knowncmd/config.yaml (current directory)
		// 2. ~/.config/knowncmd/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			v.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "knowncmd"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file found anywhere - create default at .knowncmd/config.yaml
		if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
			v.SetConfigFile(defaultConfigPath)
			_ = v.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	cfgUsed = v.ConfigFileUsed()
	cfg, cfgErr = config.Load(v)
}

func setup(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return fmt.Errorf("invalid configuration: %w", cfgErr)
	}

	// Initialize logging if debug mode enabled (via flag or env var)
	if os.Getenv("KNOWNCMD_DEBUG") != "" || debugFlag {
		logPath := os.Getenv("KNOWNCMD_LOG")
		if logPath == "" {
			logPath = cfg.Log.File
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Info(log.CatCLI, "knowncmd starting", "command", cmd.Name(), "config", cfgUsed, "logPath", logPath)
	}
	return nil
}

// featureFlags returns the flag registry for the loaded config.
func featureFlags() *flags.Registry {
	return flags.New(cfg.Flags)
}

// configPath returns the config file commands that save settings write to.
func configPath() string {
	if cfgUsed != "" {
		return cfgUsed
	}
	if cfgFile != "" {
		return cfgFile
	}
	return defaultConfigPath
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
