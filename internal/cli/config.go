// Copyright 2016 Daniël de Kok. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config stores the configuration of the spellcheck command-line
// tools: the locations of the affix grammar, the word list, and an
// optional personal dictionary.
type Config struct {
	Affix      string
	Dictionary string
	Personal   string `toml:"personal"`
}

func defaultConfiguration() *Config {
	return &Config{
		Affix:      "dictionary.aff",
		Dictionary: "dictionary.dic",
	}
}

// MustParseConfig reads and parses filename, exiting the process on
// any error, and resolves its relative paths against the
// configuration file's own directory.
func MustParseConfig(filename string) *Config {
	f, err := os.Open(filename)
	ExitIfError("cannot open configuration file", err)
	defer f.Close()

	config, err := ParseConfig(f)
	ExitIfError("cannot parse configuration file", err)

	config.Affix = relToConfig(filename, config.Affix)
	config.Dictionary = relToConfig(filename, config.Dictionary)
	config.Personal = relToConfig(filename, config.Personal)

	return config
}

// ParseConfig attempts to parse the configuration from the given
// reader, filling in defaults for any field the TOML document omits.
func ParseConfig(reader io.Reader) (*Config, error) {
	config := defaultConfiguration()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}

	return config, nil
}

// relToConfig returns filePath relative to the directory of
// configPath, unless filePath is empty or already absolute.
func relToConfig(configPath, filePath string) string {
	if len(filePath) == 0 {
		return filePath
	}

	if filepath.IsAbs(filePath) {
		return filePath
	}

	return filepath.Join(filepath.Dir(configPath), filePath)
}
