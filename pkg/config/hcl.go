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
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

type hclStep struct {
	Kind         string `hcl:"kind,label"`
	Column       string `hcl:"column"`
	DefaultValue string `hcl:"default_value,optional"`
	Order        int    `hcl:"order"`
}

type hclConfig struct {
	Path            string    `hcl:"path,optional"`
	Extension       string    `hcl:"extension,optional"`
	Exclude         []string  `hcl:"exclude,optional"`
	InPlace         bool      `hcl:"in_place,optional"`
	Backup          bool      `hcl:"backup,optional"`
	ContinueOnError bool      `hcl:"continue_on_error,optional"`
	Steps           []hclStep `hcl:"step,block"`
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".hcl"
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Path:            hclCfg.Path,
		Extension:       hclCfg.Extension,
		Exclude:         hclCfg.Exclude,
		InPlace:         hclCfg.InPlace,
		Backup:          hclCfg.Backup,
		ContinueOnError: hclCfg.ContinueOnError,
	}
	for _, s := range hclCfg.Steps {
		cfg.Steps = append(cfg.Steps, Step{
			Kind:         s.Kind,
			Column:       s.Column,
			DefaultValue: s.DefaultValue,
			Order:        s.Order,
		})
	}

	return cfg, nil
}
