package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/wolfchan/internal/games"
)

// Format is the encoding of a config file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Unknown extensions
// are read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads configuration. An explicit path must exist. Otherwise the
// search order is:
//  1. $WOLFCHAN_CONFIG
//  2. $XDG_CONFIG_HOME/wolfchan/config.toml (or config.yaml)
//  3. ~/.config/wolfchan/config.toml (or config.yaml)
//
// If no file exists, returns DefaultConfig() with env overrides applied.
// The second return value is the file that was read, if any.
func Load(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadFromFile(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFromFile(p)
			if err != nil {
				return nil, "", err
			}
			return cfg, p, nil
		}
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, "", cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes configuration over the defaults.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg in the given format.
func Write(w io.Writer, cfg *Config, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate rejects settings that cannot be normalized. Timer values are
// not checked here; the scheduler clamps them.
func (c *Config) Validate() error {
	for _, id := range c.Games.Enabled {
		if _, err := games.Parse(id); err != nil {
			return fmt.Errorf("games.enabled: %w", err)
		}
	}
	switch c.Games.TriviaSource {
	case "", "bank", "llm":
	default:
		return fmt.Errorf("games.trivia_source: unknown source %q", c.Games.TriviaSource)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// EnabledGames returns the configured game list, or every game.
func (c *Config) EnabledGames() []games.ID {
	if len(c.Games.Enabled) == 0 {
		return games.All
	}
	out := make([]games.ID, 0, len(c.Games.Enabled))
	for _, s := range c.Games.Enabled {
		if id, err := games.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	durations := []struct {
		env string
		dst *Duration
	}{
		{"WOLFCHAN_WORK", &cfg.Timer.Work},
		{"WOLFCHAN_BREAK", &cfg.Timer.Break},
		{"WOLFCHAN_GAME_INTERVAL", &cfg.Timer.GameInterval},
	}
	for _, d := range durations {
		if v := os.Getenv(d.env); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				d.dst.Duration = parsed
			}
		}
	}

	if v := os.Getenv("WOLFCHAN_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("WOLFCHAN_STATUS_ADDR"); v != "" {
		cfg.Status.Addr = v
	}
	if v := os.Getenv("WOLFCHAN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WOLFCHAN_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("WOLFCHAN_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("WOLFCHAN_LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv("WOLFCHAN_CONFIG"); p != "" {
		paths = append(paths, p)
	}

	home, _ := os.UserHomeDir()
	dirs := []string{filepath.Join(xdgConfigHome(home), "wolfchan")}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	if fallback := filepath.Join(home, ".config", "wolfchan"); fallback != dirs[0] {
		dirs = append(dirs, fallback)
	}

	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "config.yaml"),
		)
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
