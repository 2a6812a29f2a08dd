package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
)

type fileConfig struct {
	Server   serverFileConfig   `toml:"server"`
	Database databaseFileConfig `toml:"database"`
	Logging  loggingFileConfig  `toml:"logging"`
}

type serverFileConfig struct {
	Listen string `toml:"listen"`
}

type databaseFileConfig struct {
	URL  string `toml:"url"`
	Name string `toml:"name"`
}

type loggingFileConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// loadConfig builds the effective config: defaults first, then the optional
// TOML file, then environment overrides. A config path that is set but
// unreadable is fatal; an empty path just means defaults plus environment.
func loadConfig(configPath string) Config {
	cfg := defaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			fatal("config file", err, "path", configPath)
		}
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			fatal("config parse", err, "path", configPath)
		}
		applyFileConfig(&cfg, fc)
	}

	applyEnvOverrides(&cfg)
	return cfg
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if v := strings.TrimSpace(fc.Server.Listen); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(fc.Database.URL); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(fc.Database.Name); v != "" {
		cfg.DatabaseName = v
	}
	if v := strings.TrimSpace(fc.Logging.Level); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(fc.Logging.File); v != "" {
		cfg.LogFile = v
	}
}

func applyEnvOverrides(cfg *Config) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			logger.Warn("ignoring invalid PORT", "value", port)
		} else {
			cfg.ListenAddr = "0.0.0.0:" + port
		}
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_NAME")); v != "" {
		cfg.DatabaseName = v
	}
}

func parseLogLevel(s string) (logLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logLevelDebug, true
	case "info":
		return logLevelInfo, true
	case "warn":
		return logLevelWarn, true
	case "error":
		return logLevelError, true
	}
	return logLevelInfo, false
}
