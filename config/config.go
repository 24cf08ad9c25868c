package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/system"
)

const (
	// DefaultConfigPath is read when no path is given and the file exists
	DefaultConfigPath = "arena.toml"

	// DefaultEnvPath is loaded into the process environment when present
	DefaultEnvPath = ".env"

	envPrefix = "ARENA_"
	maxFPS    = 240
)

// ErrInvalid marks a config value outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Color modes
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds front-end settings
type Config struct {
	FPS    int    `toml:"fps"`
	Motion string `toml:"motion"`
	Sound  bool   `toml:"sound"`
	Debug  bool   `toml:"debug"`
	Color  string `toml:"color"`
	Seed   uint64 `toml:"seed"` // 0 seeds from wall time
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:    parameter.DefaultFPS,
		Motion: system.MotionFrame.String(),
		Sound:  true,
		Color:  ColorAuto,
	}
}

// MotionMode returns the parsed motion mode; call after Validate
func (c Config) MotionMode() system.MotionMode {
	m, _ := system.ParseMotionMode(c.Motion)
	return m
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d not in [1,%d]", ErrInvalid, c.FPS, maxFPS)
	}
	if _, ok := system.ParseMotionMode(c.Motion); !ok {
		return fmt.Errorf("%w: motion %q (want frame or scaled)", ErrInvalid, c.Motion)
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: color %q (want auto, truecolor or 256)", ErrInvalid, c.Color)
	}
	return nil
}

// LoadFile decodes a TOML file over the defaults; unknown keys are rejected
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ARENA_* variables found by lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "FPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sFPS: %w", ErrInvalid, envPrefix, err)
		}
		cfg.FPS = n
	}
	if v, ok := lookup(envPrefix + "MOTION"); ok {
		cfg.Motion = strings.ToLower(v)
	}
	if v, ok := lookup(envPrefix + "COLOR"); ok {
		cfg.Color = strings.ToLower(v)
	}
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{"SOUND", &cfg.Sound},
		{"DEBUG", &cfg.Debug},
	} {
		v, ok := lookup(envPrefix + b.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalid, envPrefix, b.key, err)
		}
		*b.dst = parsed
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %w", ErrInvalid, envPrefix, err)
		}
		cfg.Seed = n
	}
	return nil
}

// Load resolves settings with priority: environment > config file > defaults
// An explicit path must exist; otherwise DefaultConfigPath is used when present
// Returns a description of the sources used for logging
func Load(path string) (Config, string, error) {
	cfg := Default()
	sources := []string{"defaults"}

	switch {
	case path != "":
		c, err := LoadFile(path)
		if err != nil {
			return cfg, "", err
		}
		cfg = c
		sources = append(sources, path)
	case fileExists(DefaultConfigPath):
		c, err := LoadFile(DefaultConfigPath)
		if err != nil {
			return cfg, "", err
		}
		cfg = c
		sources = append(sources, DefaultConfigPath)
	}

	// Existing process variables win over .env entries
	if fileExists(DefaultEnvPath) {
		if err := godotenv.Load(DefaultEnvPath); err != nil {
			return cfg, "", fmt.Errorf("failed to load %s: %w", DefaultEnvPath, err)
		}
		sources = append(sources, DefaultEnvPath)
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, "", err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, strings.Join(sources, "+"), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
