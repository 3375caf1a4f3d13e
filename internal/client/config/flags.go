package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/flagx"
)

// parseFlags overlays cfg with the short flags documented in doc.go.
// Unknown arguments (including -c/-config) are filtered out first; a
// malformed value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-m", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	latency := fs.Int("l", int(cfg.MockLatency.Milliseconds()), "mock collaborator latency (ms)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics endpoint address")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "avatar storage backend (memory|s3)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MockLatency = time.Duration(*latency) * time.Millisecond
}
