// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/littlebuttermilk/funplay/swatch"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config is the contents of the configuration file.
type Config struct {
	// URL and Data select where the dataset comes from. Data, a
	// local CSV file, takes precedence.
	URL  string `toml:"url"`
	Data string `toml:"data"`

	// Painting is the default painting for blobs and cloud.
	Painting string `toml:"painting"`

	// Seed seeds random choices. 0 means a time based seed.
	Seed int64 `toml:"seed"`

	// Width and Height are the chart size in inches.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	DPI    int     `toml:"dpi"`
}

func defaultConfig() *Config {
	return &Config{
		URL:      paintings.DefaultURL,
		Painting: swatch.DefaultPainting,
		Width:    swatch.DefaultOptions.Width,
		Height:   swatch.DefaultOptions.Height,
		DPI:      swatch.DefaultOptions.DPI,
	}
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "bobross", "config.toml")
}

// loadConfig reads the config file at path over the defaults. A
// missing file is an error only if explicit is set.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "reading config")
	}
	for _, key := range md.Undecoded() {
		log.Warnf("%s: unknown key %s", path, key)
	}
	log.Debugf("loaded config %s", path)
	return cfg, nil
}

// options returns the chart size settings of c.
func (c *Config) options() swatch.Options {
	return swatch.Options{Width: c.Width, Height: c.Height, DPI: c.DPI}
}
