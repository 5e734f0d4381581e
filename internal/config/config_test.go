package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wolfchan/internal/games"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	for _, k := range []string{
		"WOLFCHAN_CONFIG", "WOLFCHAN_WORK", "WOLFCHAN_BREAK", "WOLFCHAN_GAME_INTERVAL",
		"WOLFCHAN_DB", "WOLFCHAN_STATUS_ADDR", "WOLFCHAN_LOG_LEVEL",
		"WOLFCHAN_LLM_PROVIDER", "WOLFCHAN_LLM_MODEL", "WOLFCHAN_LLM_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 25*time.Minute, cfg.Timer.Work.Duration)
	assert.Equal(t, 5*time.Minute, cfg.Timer.Break.Duration)
	assert.Equal(t, 2*time.Minute, cfg.Timer.GameInterval.Duration)
	assert.True(t, cfg.Games.CountDismissed)
	assert.Equal(t, 20, cfg.Progress.WeeklyGoal)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromReaderTOML(t *testing.T) {
	isolateEnv(t)
	src := `
[timer]
work = "50m"
break = "10m"
game_interval = "5m"

[games]
enabled = ["trivia", "jump"]
count_dismissed = false
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 50*time.Minute, cfg.Timer.Work.Duration)
	assert.Equal(t, 10*time.Minute, cfg.Timer.Break.Duration)
	assert.Equal(t, 5*time.Minute, cfg.Timer.GameInterval.Duration)
	assert.Equal(t, time.Second, cfg.Timer.Tick.Duration, "unset keys keep defaults")
	assert.False(t, cfg.Games.CountDismissed)
	assert.Equal(t, []games.ID{games.Trivia, games.Jump}, cfg.EnabledGames())
}

func TestLoadFromReaderYAML(t *testing.T) {
	isolateEnv(t)
	src := `
timer:
  work: 15m
  game_interval: 90s
progress:
  weekly_goal: 12
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Timer.Work.Duration)
	assert.Equal(t, 90*time.Second, cfg.Timer.GameInterval.Duration)
	assert.Equal(t, 12, cfg.Progress.WeeklyGoal)
}

func TestLoadFromReaderEmptyYAML(t *testing.T) {
	isolateEnv(t)
	cfg, err := LoadFromReader(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Work.Duration)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name string
		src  string
	}{
		{"bad duration", "[timer]\nwork = \"soon\"\n"},
		{"unknown game", "[games]\nenabled = [\"chess\"]\n"},
		{"unknown trivia source", "[games]\ntrivia_source = \"web\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.src), FormatTOML)
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("WOLFCHAN_WORK", "1m")
	t.Setenv("WOLFCHAN_GAME_INTERVAL", "20s")
	t.Setenv("WOLFCHAN_DB", "/tmp/x.db")
	t.Setenv("WOLFCHAN_LLM_PROVIDER", "mock")

	cfg, err := LoadFromReader(strings.NewReader("[timer]\nwork = \"40m\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Timer.Work.Duration, "env wins over file")
	assert.Equal(t, 20*time.Second, cfg.Timer.GameInterval.Duration)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoadSearchPath(t *testing.T) {
	isolateEnv(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "wolfchan")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timer:\n  break: 7m\n"), 0o644))

	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 7*time.Minute, cfg.Timer.Break.Duration)
}

func TestLoadWithoutFile(t *testing.T) {
	isolateEnv(t)
	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Work.Duration)
}

func TestLoadExplicitMissing(t *testing.T) {
	isolateEnv(t)
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	isolateEnv(t)
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Timer.Work = D(42 * time.Minute)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, cfg, format))

			got, err := LoadFromReader(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, 42*time.Minute, got.Timer.Work.Duration)
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatFor("c.YAML"))
	assert.Equal(t, FormatTOML, FormatFor("d.toml"))
	assert.Equal(t, FormatTOML, FormatFor("e"))
}
