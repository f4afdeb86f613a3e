package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{LogFormat: "text", LogLevel: "info", Pause: time.Second}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"json format", func(c *Config) { c.LogFormat = "json" }, ""},
		{"longer pause", func(c *Config) { c.Pause = 3 * time.Second }, ""},
		{"bad format", func(c *Config) { c.LogFormat = "yaml" }, "invalid log format"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"pause too short", func(c *Config) { c.Pause = 999 * time.Millisecond }, "invalid pause"},
		{"no pause", func(c *Config) { c.Pause = 0 }, "invalid pause"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}
