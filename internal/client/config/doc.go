// Package config loads runtime configuration for the WordTrail CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (env-default struct tags).
//  2. Optional JSON or YAML file selected via -c or --config.
//  3. Environment variables (WORDTRAIL_*).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a, --server string      base URL of the WordTrail backend
//	-d, --store string       path of the local SQLite store
//	-l, --log-level string   debug, info, warn or error
//
// # File schema
//
//	{
//	  "server_url": "https://api.wordtrail.example",
//	  "store_path": "~/.local/share/wordtrail/wordtrail.db",
//	  "log": {"level": "info", "format": "json"}
//	}
//
// Primary API
//
//   - type Config                               holds the resolved settings
//   - func LoadConfig(args []string) (*Config, error)
//   - func (*Config) Validate() error
package config
