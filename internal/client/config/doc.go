// Package config loads runtime configuration for the SaludConecta client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database
//	-l int      mock collaborator latency (milliseconds)
//	-m string   address for the Prometheus /metrics endpoint
//	-s string   avatar storage backend: memory | s3
//	-v string   log level: debug | info | warn | error
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "database_path": "saludconecta.db",
//	  "mock_latency": "500ms",
//	  "splash_delay": "3s",
//	  "notifications_enabled": true,
//	  "storage_backend": "s3",
//	  "s3_bucket": "avatars"
//	}
//
// Keys missing from the file keep their previous values.
package config
