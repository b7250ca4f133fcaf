// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/xmidt-org/prism"
)

//go:embed prism.toml
var builtinConfig string

// Config holds everything the program needs for a run.
type Config struct {
	Message  string
	Repeat   int
	Addends  [2]int
	Status   prism.Status
	LogLevel zerolog.Level
}

// DefaultConfig returns the configuration used when a document defines no keys.
func DefaultConfig() Config {
	return Config{
		Message:  "Hello, Prism!",
		Repeat:   3,
		Addends:  [2]int{5, 7},
		Status:   prism.StatusActive,
		LogLevel: zerolog.WarnLevel,
	}
}

type fileConfig struct {
	Message  string       `toml:"message"`
	Repeat   int          `toml:"repeat"`
	Addends  []int        `toml:"addends"`
	Status   prism.Status `toml:"status"`
	LogLevel string       `toml:"log_level"`
}

// parseConfig decodes a TOML document over DefaultConfig. Only keys that
// are present in the document override a default.
func parseConfig(doc string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.Decode(doc, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key [%s]", undecoded[0])
	}

	if meta.IsDefined("message") {
		cfg.Message = raw.Message
	}

	if meta.IsDefined("repeat") {
		if raw.Repeat < 0 {
			return Config{}, fmt.Errorf("repeat must not be negative: %d", raw.Repeat)
		}

		cfg.Repeat = raw.Repeat
	}

	if meta.IsDefined("addends") {
		if len(raw.Addends) != len(cfg.Addends) {
			return Config{}, fmt.Errorf("addends must have exactly %d elements: %v", len(cfg.Addends), raw.Addends)
		}

		copy(cfg.Addends[:], raw.Addends)
	}

	if meta.IsDefined("status") {
		cfg.Status = raw.Status
	}

	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw.LogLevel)))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}

		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// loadConfig returns the configuration compiled into this binary.
func loadConfig() (Config, error) {
	cfg, err := parseConfig(builtinConfig)
	if err != nil {
		return Config{}, fmt.Errorf("builtin config: %w", err)
	}

	return cfg, nil
}
