package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dmitrijs2005/wordtrail/internal/flagx"
)

// Config holds runtime settings for the WordTrail CLI.
type Config struct {
	ServerBaseURL string    `json:"server_url" yaml:"server_url" env:"WORDTRAIL_SERVER_URL" env-default:"http://127.0.0.1:8080"`
	StorePath     string    `json:"store_path" yaml:"store_path" env:"WORDTRAIL_STORE_PATH" env-default:"wordtrail.db"`
	Log           LogConfig `json:"log" yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"  yaml:"level"  env:"WORDTRAIL_LOG_LEVEL"  env-default:"warn"`
	Format string `json:"format" yaml:"format" env:"WORDTRAIL_LOG_FORMAT" env-default:"text"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// LoadConfig builds a Config from defaults, an optional config file named
// in args, the environment and finally the flags in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	var cfg Config

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := parseFlags(&cfg, args); err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the resolved values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StorePath) == "" {
		return fmt.Errorf("store_path must not be empty")
	}

	u, err := url.Parse(c.ServerBaseURL)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server_url must be an absolute http(s) URL (got %q)", c.ServerBaseURL)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}
