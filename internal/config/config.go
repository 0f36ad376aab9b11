// Package config provides configuration types and defaults for knowncmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/tracing"
)

// Config holds all configuration options for knowncmd.
type Config struct {
	Declarations DeclarationsConfig `mapstructure:"declarations"`
	Bus          BusConfig          `mapstructure:"bus"`
	Tracing      tracing.Config     `mapstructure:"tracing"`
	Log          LogConfig          `mapstructure:"log"`
	Flags        map[string]bool    `mapstructure:"flags"`
}

// DeclarationsConfig controls which declaration files are merged into the
// signature table on top of the built-in declarations.
type DeclarationsConfig struct {
	// Dirs are extra directories scanned for *.yaml, *.yml and *.toml files.
	Dirs []string `mapstructure:"dirs"`

	// UserDir enables ~/.knowncmd/declarations.
	// Default: true
	UserDir bool `mapstructure:"user_dir"`
}

// BusConfig holds dispatch middleware settings.
type BusConfig struct {
	SlowCallThreshold time.Duration `mapstructure:"slow_call_threshold"` // warn above this (default: 500ms)
	LogArguments      bool          `mapstructure:"log_arguments"`       // include argument values in debug logs
	Cache             CacheConfig   `mapstructure:"cache"`
}

// CacheConfig configures result caching for side-effect free commands.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	TTL      time.Duration `mapstructure:"ttl"`
	Commands []string      `mapstructure:"commands"`
}

// LogConfig configures the debug log.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug (default), info, warn, error
	File  string `mapstructure:"file"`  // debug log path used with --debug
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/knowncmd/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "knowncmd", "traces", "traces.jsonl")
}

// DefaultCacheCommands lists the read-only provider commands whose results
// are cached when caching is enabled and no command list is configured.
func DefaultCacheCommands() []string {
	return []string{
		"vscode.executeDocumentSymbolProvider",
		"vscode.executeFoldingRangeProvider",
		"vscode.executeLinkProvider",
		"vscode.provideDocumentSemanticTokensLegend",
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	traces := tracing.DefaultConfig()
	traces.FilePath = DefaultTracesFilePath()

	return Config{
		Declarations: DeclarationsConfig{
			UserDir: true,
		},
		Bus: BusConfig{
			SlowCallThreshold: 500 * time.Millisecond,
			Cache: CacheConfig{
				Enabled:  false,
				TTL:      30 * time.Second,
				Commands: DefaultCacheCommands(),
			},
		},
		Tracing: traces,
		Log: LogConfig{
			Level: "debug",
			File:  "debug.log",
		},
		Flags: map[string]bool{},
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateDeclarations(c.Declarations); err != nil {
		return err
	}
	if err := ValidateBus(c.Bus); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return ValidateLog(c.Log)
}

// ValidateDeclarations checks declaration directory settings.
func ValidateDeclarations(decl DeclarationsConfig) error {
	for i, dir := range decl.Dirs {
		if dir == "" {
			return fmt.Errorf("declarations.dirs[%d] cannot be empty", i)
		}
	}
	return nil
}

// ValidateBus checks dispatch middleware settings.
func ValidateBus(bus BusConfig) error {
	if bus.SlowCallThreshold < 0 {
		return fmt.Errorf("bus.slow_call_threshold cannot be negative, got %v", bus.SlowCallThreshold)
	}
	if bus.Cache.TTL < 0 {
		return fmt.Errorf("bus.cache.ttl cannot be negative, got %v", bus.Cache.TTL)
	}
	for i, id := range bus.Cache.Commands {
		if id == "" {
			return fmt.Errorf("bus.cache.commands[%d] cannot be empty", i)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if cfg.Enabled {
		if cfg.Exporter == tracing.ExporterFile && cfg.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if cfg.Exporter == tracing.ExporterOTLP && cfg.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateLog checks the log level name.
func ValidateLog(l LogConfig) error {
	switch l.Level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("log.level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", l.Level)
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# knowncmd configuration

# Declaration files merged into the signature table after the built-in
# declarations. Files are *.yaml, *.yml or *.toml; see 'knowncmd check'.
declarations:
  user_dir: true    # Load ~/.knowncmd/declarations
  # dirs:
  #   - ./declarations

# Dispatch middleware
bus:
  slow_call_threshold: 500ms  # Warn when a host call takes longer than this
  log_arguments: false        # Include argument values in debug logs

  # Result cache for side-effect free commands
  cache:
    enabled: false
    ttl: 30s
    commands:
      - vscode.executeDocumentSymbolProvider
      - vscode.executeFoldingRangeProvider
      - vscode.executeLinkProvider
      - vscode.provideDocumentSemanticTokensLegend

# Invocation tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/knowncmd/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Debug log (written only with --debug or KNOWNCMD_DEBUG=1)
log:
  level: debug
  # file: debug.log

# Feature flags
# flags:
#   strict-merge: false     # Treat refined opaque declarations as conflicts
#   trace-arguments: false  # Record argument values on invocation spans
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
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

// Load registers the defaults on v and decodes its merged settings.
// v must already have read its config file, if any.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Flags == nil {
		cfg.Flags = map[string]bool{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("declarations.user_dir", d.Declarations.UserDir)
	v.SetDefault("bus.slow_call_threshold", d.Bus.SlowCallThreshold)
	v.SetDefault("bus.log_arguments", d.Bus.LogArguments)
	v.SetDefault("bus.cache.enabled", d.Bus.Cache.Enabled)
	v.SetDefault("bus.cache.ttl", d.Bus.Cache.TTL)
	v.SetDefault("bus.cache.commands", d.Bus.Cache.Commands)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}
