// Package config loads the scraper settings from json5 files
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/parser"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/scraper"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "edpi-scraper.json5"

// Config holds the settings shared by every command
type Config struct {
	URL            string `json:"url"`
	UserAgent      string `json:"user_agent"`
	TableID        string `json:"table_id"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// ExcludeInactive drops free agents, retired players and content creators.
	ExcludeInactive bool `json:"exclude_inactive"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		URL:            scraper.DefaultURL,
		UserAgent:      scraper.DefaultUserAgent,
		TableID:        parser.DefaultTableID,
		TimeoutSeconds: int(scraper.DefaultTimeout / time.Second),
	}
}

// Timeout returns the request timeout as a duration
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads name and then its .local sibling (edpi-scraper.local.json5 for
// edpi-scraper.json5). Both files decode into the same value, so the local
// file only replaces the keys it sets, false included. Fields left unset by
// both fall back to Default. Missing files are not an error.
func Load(name string) (Config, error) {
	var cfg Config

	for _, path := range []string{name, localPath(name)} {
		content, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", path).Debug("no config file")
			continue
		}
		if err != nil {
			return Default(), errors.Wrapf(err, "error reading config %s", path)
		}
		if len(bytes.TrimSpace(content)) == 0 {
			continue
		}
		err = json5.Unmarshal(content, &cfg)
		if err != nil {
			return Default(), errors.Wrapf(err, "error parsing config %s", path)
		}
		log.WithField("path", path).Debug("loaded config")
	}

	// unset fields only; exclude_inactive defaults to false either way
	err := mergo.Merge(&cfg, Default())
	if err != nil {
		return Default(), errors.Wrap(err, "error applying config defaults")
	}
	return cfg, nil
}

func localPath(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}
