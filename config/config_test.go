package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `DataDir = "./data"
NetworkName = "testnet"
AdminAddress = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
HouDecimals = 8
HouSymbol = "HOU"
HouName = "Houston Token"
MetricsListenAddress = "0.0.0.0:9464"
LogEnvironment = "production"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "testnet", cfg.NetworkName)
	require.Equal(t, uint8(8), cfg.HouDecimals)
	require.Equal(t, "production", cfg.LogEnvironment)
}

func TestLoadAppliesDefaultsForBlankFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`DataDir = "./data"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "houstonswap-local", cfg.NetworkName)
	require.Equal(t, "HOU", cfg.HouSymbol)
	require.Equal(t, uint8(8), cfg.HouDecimals)
}

func TestLoadCreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "houstonswap-local", cfg.NetworkName)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.NetworkName, reloaded.NetworkName)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`NotARealField = 1`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
