package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewServiceWithPath(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewServiceWithPath(path)

	cfg := DefaultConfig()
	cfg.BaseURL = "https://api.example.test"
	cfg.RequestTimeoutSecs = 30
	cfg.UISettings.DateFormat = "02 Jan 2006"

	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("base_url = \"https://other.example.test\"\n"), 0644))

	cfg, err := NewServiceWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "https://other.example.test", cfg.BaseURL)
	// Unspecified fields fall back to defaults.
	assert.Equal(t, DefaultConfig().SiteURL, cfg.SiteURL)
	assert.Equal(t, DefaultConfig().UISettings.DateFormat, cfg.UISettings.DateFormat)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("base_url = [broken"), 0644))

	_, err := NewServiceWithPath(path).Load()
	assert.Error(t, err)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewServiceWithPath(path)

	require.NoError(t, svc.Save(DefaultConfig()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
