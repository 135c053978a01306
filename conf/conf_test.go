package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/programme-lv/console/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := conf.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, conf.Default(), cfg)
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.toml")
	body := `
[api]
base_url = "https://judge.example.com/api"

[search]
page_size = 50
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := conf.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://judge.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, conf.Default().API.MicroserviceURL, cfg.API.MicroserviceURL,
		"unset keys keep their defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONSOLE_API_URL", "https://other.example.com/api")
	cfg, err := conf.Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com/api", cfg.API.BaseURL)
}

func TestLoadBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [toml"), 0644))
	_, err := conf.Load(path)
	assert.Error(t, err)
}
