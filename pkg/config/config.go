// Copyright 2026 snylonue
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/snylonue/multirep/pkg/multirep"
	"github.com/snylonue/multirep/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
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

// 🔄 Replacement represents one literal substitution rule
type Replacement struct {
	// Old is the pattern to search for
	Old string `json:"old" yaml:"old" hcl:"old"`
	// New is the replacement text, possibly empty
	New string `json:"new" yaml:"new" hcl:"new,optional"`
	// File optionally limits which files the rule touches
	File *string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"`
}

// 🔀 Exchange represents two patterns to swap throughout each file
type Exchange struct {
	A string `json:"a" yaml:"a" hcl:"a"`
	B string `json:"b" yaml:"b" hcl:"b"`
}

// 📂 Paths selects which files under Root the rules apply to
type Paths struct {
	// Root is the tree to walk, defaulting to "."
	Root string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	// Include lists globs to select; empty means every file
	Include []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	// Ignore lists globs to skip
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
	Exchanges    []Exchange    `json:"exchanges,omitempty" yaml:"exchanges,omitempty" hcl:"exchange,block"`
	Paths        *Paths        `json:"paths,omitempty" yaml:"paths,omitempty" hcl:"paths,block"`
	Async        bool          `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Replacements) == 0 && len(cfg.Exchanges) == 0 {
		return errors.Errorf("at least one replacement or exchange is required")
	}

	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacement %d: old is required", i)
		}
		if r.File != nil && !doublestar.ValidatePattern(*r.File) {
			return errors.Errorf("replacement %d: invalid file glob %q", i, *r.File)
		}
	}

	for i, e := range cfg.Exchanges {
		if e.A == "" || e.B == "" {
			return errors.Errorf("exchange %d: both a and b are required", i)
		}
	}

	// Set defaults
	if cfg.Paths == nil {
		cfg.Paths = &Paths{}
	}
	if cfg.Paths.Root == "" {
		cfg.Paths.Root = "."
	}
	cfg.Paths.Root = filepath.Clean(cfg.Paths.Root)

	for _, pattern := range cfg.Paths.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid include glob %q", pattern)
		}
	}
	for _, pattern := range cfg.Paths.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore glob %q", pattern)
		}
	}

	return nil
}

// 🧾 Rules converts the configuration into the ordered rule list the
// replacer consumes. Replacements keep their configured order; each exchange
// expands into its two-entry list with the longer pattern first.
func (cfg *Config) Rules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements)+2*len(cfg.Exchanges))
	for _, r := range cfg.Replacements {
		rule := text.ReplacementRule{FromText: r.Old, ToText: r.New}
		if r.File != nil {
			rule.FileFilterGlob = *r.File
		}
		rules = append(rules, rule)
	}
	for _, e := range cfg.Exchanges {
		for _, p := range multirep.ExchangePairs(e.A, e.B) {
			rules = append(rules, text.ReplacementRule{FromText: p.Old, ToText: p.New})
		}
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	root := "."
	if cfg.Paths != nil && cfg.Paths.Root != "" {
		root = cfg.Paths.Root
	}
	return fmt.Sprintf("%d replacements, %d exchanges -> %s", len(cfg.Replacements), len(cfg.Exchanges), root)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
