package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/spacetraders/internal/log"
)

// Load reads configuration into v. Lookup order:
//  1. explicit (the --config flag)
//  2. .spacetraders/config.yaml (current directory)
//  3. ~/.config/spacetraders/config.yaml (user config)
//
// When none exists a commented default is written to DefaultConfigPath.
// Environment variables prefixed with SPACETRADERS_ override file values.
// The returned path is the file that was read, or "" when running on
// defaults alone.
func Load(v *viper.Viper, explicit string) (Config, string, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(DefaultConfigPath):
		v.SetConfigFile(DefaultConfigPath)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "spacetraders"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		if writeErr := WriteDefaultConfig(DefaultConfigPath); writeErr == nil {
			v.SetConfigFile(DefaultConfigPath)
			_ = v.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, "", fmt.Errorf("invalid configuration: %w", err)
	}
	log.Debug(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
	return cfg, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("save_file", d.SaveFile)
	v.SetDefault("default_faction", d.DefaultFaction)
	v.SetDefault("lookup.ttl", d.Lookup.TTL)
	v.SetDefault("ledger.enabled", d.Ledger.Enabled)
	v.SetDefault("ledger.path", d.Ledger.Path)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("debug", false)
	v.SetDefault("log_level", d.LogLevel)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
