package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Accent is one of the fixed accent palette names.
type Accent string

const (
	AccentOrange Accent = "orange"
	AccentBlue   Accent = "blue"
	AccentGreen  Accent = "green"
	AccentRed    Accent = "red"
	AccentPurple Accent = "purple"
	AccentPink   Accent = "pink"
)

// Font selects the rich-content typeface family.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
)

// Scheme selects light or dark rendering.
type Scheme string

const (
	SchemeDark  Scheme = "dark"
	SchemeLight Scheme = "light"
)

type Config struct {
	CacheDir   string `validate:"required"`
	DBPath     string `validate:"required"`
	LogPath    string `validate:"required"`
	ConfigPath string

	Subreddits    []string      `validate:"min=1,dive,required"`
	ListingTTL    time.Duration `validate:"gt=0"`
	ThreadTTL     time.Duration `validate:"gt=0"`
	FetchPageSize int           `validate:"gt=0"`

	Accent Accent `validate:"oneof=orange blue green red purple pink"`
	Font   Font   `validate:"oneof=sans serif"`
	Scheme Scheme `validate:"oneof=dark light"`
}

func Default() Config {
	cacheDir := filepath.Join(userConfigDir(), "today-tui")
	return Config{
		CacheDir:      cacheDir,
		DBPath:        filepath.Join(cacheDir, "cache.db"),
		LogPath:       filepath.Join(cacheDir, "debug.log"),
		ConfigPath:    filepath.Join(cacheDir, "config.toml"),
		Subreddits:    []string{"golang", "programming", "worldnews"},
		ListingTTL:    60 * time.Second,
		ThreadTTL:     10 * time.Minute,
		FetchPageSize: 30,
		Accent:        AccentOrange,
		Font:          FontSans,
		Scheme:        SchemeDark,
	}
}

// fileConfig is the TOML shape. Durations are strings ("90s", "5m") so
// the file stays human-editable.
type fileConfig struct {
	Subreddits    []string `toml:"subreddits"`
	ListingTTL    string   `toml:"listing_ttl"`
	ThreadTTL     string   `toml:"thread_ttl"`
	FetchPageSize int      `toml:"fetch_page_size"`
	Accent        string   `toml:"accent"`
	Font          string   `toml:"font"`
	Scheme        string   `toml:"scheme"`
}

// Load starts from defaults, overlays the TOML file at path if one
// exists, and validates the result. A missing file is fine; a bad file
// fails the whole load rather than producing a partial config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		cfg.ConfigPath = path
	}

	if _, err := os.Stat(cfg.ConfigPath); err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(cfg.ConfigPath, &fc); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", cfg.ConfigPath, err)
		}
		if err := cfg.apply(fc); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", cfg.ConfigPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if len(fc.Subreddits) > 0 {
		c.Subreddits = fc.Subreddits
	}
	if fc.ListingTTL != "" {
		d, err := time.ParseDuration(fc.ListingTTL)
		if err != nil {
			return fmt.Errorf("parsing listing_ttl: %w", err)
		}
		c.ListingTTL = d
	}
	if fc.ThreadTTL != "" {
		d, err := time.ParseDuration(fc.ThreadTTL)
		if err != nil {
			return fmt.Errorf("parsing thread_ttl: %w", err)
		}
		c.ThreadTTL = d
	}
	if fc.FetchPageSize > 0 {
		c.FetchPageSize = fc.FetchPageSize
	}
	if fc.Accent != "" {
		c.Accent = Accent(fc.Accent)
	}
	if fc.Font != "" {
		c.Font = Font(fc.Font)
	}
	if fc.Scheme != "" {
		c.Scheme = Scheme(fc.Scheme)
	}
	return nil
}

// Validate checks enum values and TTL ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
