package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLastAgent_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveLastAgent(configPath, LastAgentConfig{Callsign: "TESTER", Faction: "COSMIC"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "last_agent:")
	assert.Contains(t, string(data), "callsign: TESTER")
	assert.Contains(t, string(data), "faction: COSMIC")
}

func TestSaveLastAgent_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# Server to talk to
api:
  base_url: http://localhost:9000 # local mock
lookup:
  ttl: 1m
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	require.NoError(t, SaveLastAgent(configPath, LastAgentConfig{Callsign: "TESTER", Faction: "VOID"}))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Server to talk to")
	assert.Contains(t, string(data), "# local mock")

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, "http://localhost:9000", v.GetString("api.base_url"))
	assert.Equal(t, "1m", v.GetString("lookup.ttl"))
	assert.Equal(t, "TESTER", v.GetString("last_agent.callsign"))
	assert.Equal(t, "VOID", v.GetString("last_agent.faction"))
}

func TestSaveLastAgent_ReplacesPreviousAgent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveLastAgent(configPath, LastAgentConfig{Callsign: "FIRST", Faction: "COSMIC"}))
	require.NoError(t, SaveLastAgent(configPath, LastAgentConfig{Callsign: "SECOND", Faction: "QUANTUM"}))

	cfg, _, err := Load(viper.New(), configPath)
	require.NoError(t, err)
	assert.Equal(t, LastAgentConfig{Callsign: "SECOND", Faction: "QUANTUM"}, cfg.LastAgent)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "FIRST")
}

func TestSaveLastAgent_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, SaveLastAgent(configPath, LastAgentConfig{Callsign: "TESTER"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be renamed away")
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestSaveLastAgent_CreatesDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
	require.NoError(t, SaveLastAgent(configPath, LastAgentConfig{Callsign: "TESTER"}))
	_, err := os.Stat(configPath)
	require.NoError(t, err)
}

func TestSaveLastAgent_RejectsMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api: [unterminated\n"), 0o600))

	err := SaveLastAgent(configPath, LastAgentConfig{Callsign: "TESTER"})
	require.ErrorContains(t, err, "parsing config")
}
