package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.ServerBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "toolshare.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8080/api", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("TOOLSHARE_SERVER_URL", "http://tools.example.org/api")
	t.Setenv("TOOLSHARE_REQUEST_TIMEOUT", "20s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://tools.example.org/api", c.ServerBaseURL)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "toolshare.db", c.DatabasePath)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "overrides", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-t", "30"},
			expected: &Config{ServerBaseURL: "http://127.0.0.1:9090/api", RequestTimeout: 30 * time.Second},
		},
		{
			name: "bad timeout", args: []string{"cmd", "-t", "abc"},
			expectPanic: true, expected: &Config{},
		},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseJson_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "http://json.example.org/api",
		"request_timeout": "25s"
	}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://json.example.org/api", c.ServerBaseURL)
	assert.Equal(t, 25*time.Second, c.RequestTimeout)
	assert.Equal(t, "toolshare.db", c.DatabasePath)
}
