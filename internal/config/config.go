// Package config provides configuration types and defaults for the spacetraders CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/tracing"
)

// EnvPrefix namespaces environment overrides, e.g. SPACETRADERS_API_BASE_URL.
const EnvPrefix = "SPACETRADERS"

// DefaultBaseURL is the public v2 API.
const DefaultBaseURL = api.DefaultBaseURL

// DefaultSaveFile is where sessions are persisted unless configured otherwise.
const DefaultSaveFile = "spacetraders.save"

// DefaultConfigPath is written on first run when no config file is found.
const DefaultConfigPath = ".spacetraders/config.yaml"

// Config holds all configuration options for spacetraders.
type Config struct {
	API            APIConfig       `mapstructure:"api"`
	SaveFile       string          `mapstructure:"save_file"`
	DefaultFaction string          `mapstructure:"default_faction"`
	Lookup         LookupConfig    `mapstructure:"lookup"`
	Ledger         LedgerConfig    `mapstructure:"ledger"`
	Tracing        tracing.Config  `mapstructure:"tracing"`
	LastAgent      LastAgentConfig `mapstructure:"last_agent"`
	Debug          bool            `mapstructure:"debug"`
	LogLevel       string          `mapstructure:"log_level"` // minimum level written when Debug is set
}

// APIConfig points the client at a server.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 disables the client timeout
}

// LookupConfig controls memoization of waypoint and shipyard views.
type LookupConfig struct {
	// TTL is how long a lookup stays fresh. 0 disables the lookup cache.
	TTL time.Duration `mapstructure:"ttl"`
}

// LedgerConfig controls the local credit ledger.
type LedgerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // sqlite database file
}

// LastAgentConfig remembers the most recent registration.
type LastAgentConfig struct {
	Callsign string `mapstructure:"callsign" yaml:"callsign"`
	Faction  string `mapstructure:"faction" yaml:"faction"`
}

// DefaultLedgerPath returns ~/.config/spacetraders/ledger.db, or a relative
// path if the home directory is unavailable.
func DefaultLedgerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".spacetraders", "ledger.db")
	}
	return filepath.Join(home, ".config", "spacetraders", "ledger.db")
}

// DefaultTracesFilePath returns ~/.config/spacetraders/traces/traces.jsonl or
// empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spacetraders", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
		SaveFile:       DefaultSaveFile,
		DefaultFaction: string(domain.FactionCosmic),
		Lookup:         LookupConfig{TTL: 5 * time.Minute},
		Ledger: LedgerConfig{
			Enabled: true,
			Path:    DefaultLedgerPath(),
		},
		Tracing:  tr,
		LogLevel: "debug",
	}
}

// Faction returns the configured default faction, validated.
func (c Config) Faction() (domain.FactionSymbol, error) {
	if c.DefaultFaction == "" {
		return domain.FactionCosmic, nil
	}
	return domain.ParseFactionSymbol(c.DefaultFaction)
}

// Validate checks every section.
func Validate(c Config) error {
	if err := ValidateAPI(c.API); err != nil {
		return err
	}
	if c.SaveFile == "" {
		return fmt.Errorf("save_file must not be empty")
	}
	if _, err := c.Faction(); err != nil {
		return fmt.Errorf("default_faction: %w", err)
	}
	if c.Lookup.TTL < 0 {
		return fmt.Errorf("lookup.ttl must not be negative, got %s", c.Lookup.TTL)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := ValidateLedger(c.Ledger); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateAPI requires an absolute http(s) base URL.
func ValidateAPI(api APIConfig) error {
	u, err := url.Parse(api.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http or https URL, got %q", api.BaseURL)
	}
	if api.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", api.Timeout)
	}
	return nil
}

// ValidateLedger requires a path when the ledger is enabled.
func ValidateLedger(ledger LedgerConfig) error {
	if ledger.Enabled && ledger.Path == "" {
		return fmt.Errorf("ledger.path is required when the ledger is enabled")
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tr tracing.Config) error {
	if tr.SampleRate < 0.0 || tr.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tr.SampleRate)
	}

	if tr.Exporter != "" && !slices.Contains(tracing.Exporters(), tr.Exporter) {
		return fmt.Errorf("tracing.exporter must be one of %s, got %q", strings.Join(tracing.Exporters(), ", "), tr.Exporter)
	}

	// Only validate path requirements when tracing is enabled
	if tr.Enabled {
		if tr.Exporter == tracing.ExporterFile && tr.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tr.Exporter == tracing.ExporterOTLP && tr.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# SpaceTraders CLI configuration

# Server to talk to
api:
  base_url: https://api.spacetraders.io/v2
  timeout: 30s            # 0 disables the request timeout

# Token and session cache are stored here (two lines: token, then JSON)
save_file: spacetraders.save

# Faction used by 'spacetraders register' when --faction is omitted
default_faction: COSMIC

# Memoize waypoint and shipyard lookups for this long (0 disables)
lookup:
  ttl: 5m

# Local record of every credit change (contract acceptance, ship purchase)
ledger:
  enabled: true
  # path: ~/.config/spacetraders/ledger.db

# Debug log (.spacetraders/debug.log) is written only with --debug
debug: false
log_level: debug          # debug, info, warn or error

# OpenTelemetry tracing of client operations and HTTP requests
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/spacetraders/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1
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
