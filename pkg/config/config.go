// Package config resolves folio settings from .folio.yaml, FOLIO_* environment
// variables and flag overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/folio/pkg/geo"
)

// Theme names accepted by the theme key.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Keys.
const (
	KeyTheme        = "theme"
	KeyContent      = "content"
	KeyTilesURL     = "tiles.url"
	KeyTilesDarkURL = "tiles.dark_url"
	KeyTilesCache   = "tiles.cache"
	KeyTilesEnabled = "tiles.enabled"
	KeyLogFile      = "log.file"
	KeyLogLevel     = "log.level"
	KeyHTTPAddr     = "http.addr"
)

// Config is the resolved configuration.
type Config struct {
	Theme        string `json:"theme"`
	Content      string `json:"content,omitempty"`
	TilesURL     string `json:"tilesUrl"`
	TilesDarkURL string `json:"tilesDarkUrl"`
	TilesCache   string `json:"tilesCache"`
	TilesEnabled bool   `json:"tilesEnabled"`
	LogFile      string `json:"logFile,omitempty"`
	LogLevel     string `json:"logLevel"`
	HTTPAddr     string `json:"httpAddr"`
	// Source is the config file that was read, empty when none was found.
	Source string `json:"source,omitempty"`
}

// Load reads .folio.yaml from $FOLIO_CONFIG_PATH, the working directory or
// the home directory. A .env file in the working directory seeds FOLIO_*
// variables that are not already set. Missing files are not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault(KeyTheme, ThemeDark)
	v.SetDefault(KeyTilesURL, geo.LightTiles)
	v.SetDefault(KeyTilesDarkURL, geo.DarkTiles)
	v.SetDefault(KeyTilesCache, "~/.folio/tiles")
	v.SetDefault(KeyTilesEnabled, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHTTPAddr, "127.0.0.1:8080")

	v.SetConfigName(".folio") // .yaml is implicit
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("FOLIO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{
		Theme:        strings.ToLower(v.GetString(KeyTheme)),
		Content:      v.GetString(KeyContent),
		TilesURL:     v.GetString(KeyTilesURL),
		TilesDarkURL: v.GetString(KeyTilesDarkURL),
		TilesCache:   v.GetString(KeyTilesCache),
		TilesEnabled: v.GetBool(KeyTilesEnabled),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
		HTTPAddr:     v.GetString(KeyHTTPAddr),
		Source:       v.ConfigFileUsed(),
	}
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("config: theme %q: want auto, dark or light", c.Theme)
	}
	for _, tmpl := range []string{c.TilesURL, c.TilesDarkURL} {
		for _, p := range []string{"{z}", "{x}", "{y}"} {
			if !strings.Contains(tmpl, p) {
				return fmt.Errorf("config: tiles url %q is missing %s", tmpl, p)
			}
		}
	}
	return nil
}

// TileTemplate returns the template for the given dark flag.
func (c *Config) TileTemplate(dark bool) string {
	if dark {
		return c.TilesDarkURL
	}
	return c.TilesURL
}

func (c *Config) expand() error {
	for _, p := range []*string{&c.Content, &c.TilesCache, &c.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}
