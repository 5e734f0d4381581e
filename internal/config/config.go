// Package config loads wolfchan settings from TOML or YAML files with
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Timer    TimerConfig    `toml:"timer" yaml:"timer"`
	Games    GamesConfig    `toml:"games" yaml:"games"`
	Progress ProgressConfig `toml:"progress" yaml:"progress"`
	Notify   NotifyConfig   `toml:"notify" yaml:"notify"`
	Store    StoreConfig    `toml:"store" yaml:"store"`
	Status   StatusConfig   `toml:"status" yaml:"status"`
	LLM      LLMConfig      `toml:"llm" yaml:"llm"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// TimerConfig sets the pomodoro cycle.
type TimerConfig struct {
	Work         Duration `toml:"work" yaml:"work"`
	Break        Duration `toml:"break" yaml:"break"`
	GameInterval Duration `toml:"game_interval" yaml:"game_interval"`
	Tick         Duration `toml:"tick" yaml:"tick"`

	// AutoStart starts the timer as soon as the app opens.
	AutoStart bool `toml:"auto_start" yaml:"auto_start"`
}

// GamesConfig controls the mini-game menu.
type GamesConfig struct {
	// Enabled lists game IDs offered in the menu. Empty means all.
	Enabled []string `toml:"enabled" yaml:"enabled"`

	// CountDismissed counts games closed before they finished.
	CountDismissed bool `toml:"count_dismissed" yaml:"count_dismissed"`

	// TriviaQuestions is the number of questions per trivia round.
	TriviaQuestions int `toml:"trivia_questions" yaml:"trivia_questions"`

	// TriviaSource is "bank" or "llm".
	TriviaSource string `toml:"trivia_source" yaml:"trivia_source"`

	// PhotoDir receives captured photos.
	PhotoDir string `toml:"photo_dir" yaml:"photo_dir"`

	// CameraImage, when set, is used as the camera feed instead of the
	// built-in test pattern.
	CameraImage string `toml:"camera_image" yaml:"camera_image"`
}

// ProgressConfig tunes the progress panel.
type ProgressConfig struct {
	WeeklyGoal int `toml:"weekly_goal" yaml:"weekly_goal"`
}

// NotifyConfig controls transition chimes.
type NotifyConfig struct {
	Sound bool `toml:"sound" yaml:"sound"`
	Bell  bool `toml:"bell" yaml:"bell"`
}

// StoreConfig locates the event journal.
type StoreConfig struct {
	Path     string `toml:"path" yaml:"path"`
	Disabled bool   `toml:"disabled" yaml:"disabled"`
}

// StatusConfig enables the local status endpoint.
type StatusConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// LLMConfig selects the provider for generated trivia.
type LLMConfig struct {
	Provider string   `toml:"provider" yaml:"provider"`
	Model    string   `toml:"model" yaml:"model"`
	APIKey   string   `toml:"api_key" yaml:"api_key"`
	BaseURL  string   `toml:"base_url" yaml:"base_url"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Timer: TimerConfig{
			Work:         D(25 * time.Minute),
			Break:        D(5 * time.Minute),
			GameInterval: D(2 * time.Minute),
			Tick:         D(time.Second),
		},
		Games: GamesConfig{
			CountDismissed:  true,
			TriviaQuestions: 5,
			TriviaSource:    "bank",
			PhotoDir:        filepath.Join(home, "Pictures", "wolfchan"),
		},
		Progress: ProgressConfig{
			WeeklyGoal: 20,
		},
		Notify: NotifyConfig{
			Sound: true,
			Bell:  true,
		},
		LLM: LLMConfig{
			Timeout: D(30 * time.Second),
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(xdgStateHome(home), "wolfchan", "wolfchan.log"),
		},
	}
}
