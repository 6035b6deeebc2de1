// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/colshift/pkg/locate"
	"github.com/walteh/colshift/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🪜 Step is one configured migration
type Step struct {
	Kind         string `json:"kind" yaml:"kind" toml:"kind"`
	Column       string `json:"column" yaml:"column" toml:"column"`
	DefaultValue string `json:"default_value,omitempty" yaml:"default_value,omitempty" toml:"default_value"`
	Order        int    `json:"order" yaml:"order" toml:"order"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Path            string   `json:"path" yaml:"path" toml:"path"`
	Extension       string   `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension"`
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude"`
	InPlace         bool     `json:"in_place,omitempty" yaml:"in_place,omitempty" toml:"in_place"`
	Backup          bool     `json:"backup,omitempty" yaml:"backup,omitempty" toml:"backup"`
	ContinueOnError bool     `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty" toml:"continue_on_error"`
	Steps           []Step   `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps"`

	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.location = path
	if cfg.Path != "" && !filepath.IsAbs(cfg.Path) {
		cfg.Path = filepath.Join(filepath.Dir(path), cfg.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("hash", cfg.Hash()).Int("steps", len(cfg.Steps)).Msg("configuration loaded")
	return cfg, nil
}

// 🔍 Validate checks every step and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Extension == "" {
		cfg.Extension = locate.DefaultExtension
	}
	if cfg.Path != "" {
		cfg.Path = filepath.Clean(cfg.Path)
	}

	for i, step := range cfg.Steps {
		op, err := step.Operation()
		if err != nil {
			return errors.Errorf("step %d: %w", i+1, err)
		}
		if err := op.Validate(); err != nil {
			return errors.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

// 🔄 Operation converts the step into an operation
func (s Step) Operation() (operation.Operation, error) {
	kind, err := operation.ParseKind(s.Kind)
	if err != nil {
		return operation.Operation{}, err
	}

	switch kind {
	case operation.KindReorder:
		if s.DefaultValue != "" {
			return operation.Operation{}, errors.Errorf("default_value is only valid for insert steps")
		}
		return operation.Reorder(s.Column, s.Order), nil
	default:
		return operation.Insert(s.Column, s.DefaultValue, s.Order), nil
	}
}

// 📋 Operations converts every step, in order
func (cfg *Config) Operations() ([]operation.Operation, error) {
	ops := make([]operation.Operation, 0, len(cfg.Steps))
	for i, step := range cfg.Steps {
		op, err := step.Operation()
		if err != nil {
			return nil, errors.Errorf("step %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// 🔧 LocateOptions returns the file filter described by the config
func (cfg *Config) LocateOptions() locate.Options {
	return locate.Options{
		Extension: cfg.Extension,
		Exclude:   cfg.Exclude,
	}
}

// ApplyOptions returns how files should be written
func (cfg *Config) ApplyOptions() operation.ApplyOptions {
	return operation.ApplyOptions{
		Atomic: !cfg.InPlace,
		Backup: cfg.Backup,
	}
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔑 Hash fingerprints the settings and steps
func (cfg *Config) Hash() string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (*.%s, %d step(s))", cfg.Path, cfg.Extension, len(cfg.Steps))
}
