package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waves-lite/internal/loader"
)

const (
	appName = "waves-lite"

	defaultTick   = 16 * time.Millisecond
	minTick       = 5 * time.Millisecond
	maxTick       = time.Second
	defaultVolume = 0.5
)

type Config struct {
	DefaultFolder string   `koanf:"default_folder"`
	Extensions    []string `koanf:"extensions"` // playable extensions, e.g. ["wav", "mp3"]
	SortFiles     *bool    `koanf:"sort_files"` // sort the file list by name (default: true)
	Volume        *float64 `koanf:"volume"`     // initial volume when none was saved (0.0-1.0)
	TickMs        int      `koanf:"tick_ms"`    // position refresh interval
	LogLevel      string   `koanf:"log_level"`  // zerolog level name (default: "info")
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = ExpandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/waves-lite/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetExtensions returns the playable extension allow-list.
func (c *Config) GetExtensions() []string {
	var exts []string
	for _, e := range c.Extensions {
		if strings.TrimSpace(e) != "" {
			exts = append(exts, e)
		}
	}
	if len(exts) == 0 {
		return loader.DefaultExtensions
	}
	return exts
}

// ShouldSortFiles reports whether the file list is sorted by name.
func (c *Config) ShouldSortFiles() bool {
	return c.SortFiles == nil || *c.SortFiles
}

// GetInitialVolume returns the configured starting volume, clamped to [0, 1].
func (c *Config) GetInitialVolume() float64 {
	if c.Volume == nil || math.IsNaN(*c.Volume) || math.IsInf(*c.Volume, 0) {
		return defaultVolume
	}
	return max(0, min(1, *c.Volume))
}

// GetTickInterval returns the position refresh interval.
func (c *Config) GetTickInterval() time.Duration {
	if c.TickMs <= 0 {
		return defaultTick
	}
	d := time.Duration(c.TickMs) * time.Millisecond
	return max(minTick, min(maxTick, d))
}

// GetLogLevel parses LogLevel, falling back to info.
func (c *Config) GetLogLevel() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
