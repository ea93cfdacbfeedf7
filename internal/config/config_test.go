package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrill/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Words)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigDecodesPointers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[practice]\nwords = 40\nwpm = 60\n\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Practice.Words)
	require.NotNil(t, cfg.Practice.WPM)
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, 40, *cfg.Practice.Words)
	assert.Equal(t, 60, *cfg.Practice.WPM)
	assert.Equal(t, "debug", *cfg.Log.Level)
	assert.Nil(t, cfg.Practice.Duration)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[practice]\nlang = \"en\"\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "practice.lang")
}

func TestValidate(t *testing.T) {
	valid := model.Config{Words: 25, WPMTarget: 40, Candidates: 10}
	tests := []struct {
		name    string
		mutate  func(*model.Config)
		wantErr string
	}{
		{"valid", func(*model.Config) {}, ""},
		{"too few words", func(c *model.Config) { c.Words = 9 }, "--words must be between 10 and 200"},
		{"too many words", func(c *model.Config) { c.Words = 201 }, "--words must be between 10 and 200"},
		{"zero wpm", func(c *model.Config) { c.WPMTarget = 0 }, "--wpm must be > 0"},
		{"negative duration", func(c *model.Config) { c.DurationSeconds = -1 }, "--duration must be >= 0"},
		{"zero candidates", func(c *model.Config) { c.Candidates = 0 }, "--candidates must be > 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidWordsAndWPM(t *testing.T) {
	assert.True(t, ValidWords(10))
	assert.True(t, ValidWords(200))
	assert.False(t, ValidWords(9))
	assert.False(t, ValidWords(201))
	assert.True(t, ValidWPM(1))
	assert.False(t, ValidWPM(0))
	assert.False(t, ValidWPM(-5))
}
