package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name        string
		args        []string
		mutate      func(c *Config)
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "/tmp/x.db", "-l", "250", "-m", "127.0.0.1:9100", "-s", "s3", "-v", "debug"},
			mutate: func(c *Config) {
				c.DatabasePath = "/tmp/x.db"
				c.MockLatency = 250 * time.Millisecond
				c.MetricsAddr = "127.0.0.1:9100"
				c.StorageBackend = "s3"
				c.LogLevel = "debug"
			},
		},
		{
			name:   "config flag is ignored here",
			args:   []string{"-c", "cfg.json", "-l", "0"},
			mutate: func(c *Config) { c.MockLatency = 0 },
		},
		{
			name:        "bad latency",
			args:        []string{"-l", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			want := defaults()
			tt.mutate(want)

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
