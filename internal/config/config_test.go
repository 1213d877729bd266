package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Subreddits, cfg.Subreddits)
	assert.Equal(t, AccentOrange, cfg.Accent)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
subreddits = ["golang"]
listing_ttl = "90s"
thread_ttl = "5m"
fetch_page_size = 10
accent = "blue"
font = "serif"
scheme = "light"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, cfg.Subreddits)
	assert.Equal(t, 90*time.Second, cfg.ListingTTL)
	assert.Equal(t, 5*time.Minute, cfg.ThreadTTL)
	assert.Equal(t, 10, cfg.FetchPageSize)
	assert.Equal(t, AccentBlue, cfg.Accent)
	assert.Equal(t, FontSerif, cfg.Font)
	assert.Equal(t, SchemeLight, cfg.Scheme)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown accent", body: `accent = "chartreuse"`},
		{name: "unknown font", body: `font = "comic"`},
		{name: "unknown scheme", body: `scheme = "sepia"`},
		{name: "bad duration", body: `listing_ttl = "soon"`},
		{name: "not toml", body: `{"accent": "blue"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err, "a bad file must never yield a partial config")
		})
	}
}
