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
	"os"
	"path/filepath"
	"testing"

	"github.com/snylonue/multirep/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		content   string
		wantError string
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_config",
			filename: "rules.yaml",
			content: `
replacements:
  - old: foo
    new: bar
exchanges:
  - a: left
    b: right
paths:
  root: src
  include:
    - "**/*.go"
async: true
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replacements, 1)
				assert.Equal(t, "foo", cfg.Replacements[0].Old)
				assert.Equal(t, "bar", cfg.Replacements[0].New)
				require.Len(t, cfg.Exchanges, 1)
				assert.Equal(t, "left", cfg.Exchanges[0].A)
				assert.Equal(t, "right", cfg.Exchanges[0].B)
				assert.Equal(t, "src", cfg.Paths.Root)
				assert.Equal(t, []string{"**/*.go"}, cfg.Paths.Include)
				assert.True(t, cfg.Async)
			},
		},
		{
			name:     "hcl_config",
			filename: "rules.hcl",
			content: `
replacement {
  old = "foo"
  new = "bar"
}

exchange {
  a = "left"
  b = "right"
}

paths {
  root    = "src"
  include = ["**/*.go"]
}

async = true
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replacements, 1)
				assert.Equal(t, "foo", cfg.Replacements[0].Old)
				require.Len(t, cfg.Exchanges, 1)
				assert.Equal(t, "src", cfg.Paths.Root)
				assert.True(t, cfg.Async)
			},
		},
		{
			name:     "json_config",
			filename: "rules.json",
			content:  `{"replacements": [{"old": "foo", "new": "bar"}]}`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replacements, 1)
				assert.Equal(t, "foo", cfg.Replacements[0].Old)
				assert.Equal(t, ".", cfg.Paths.Root, "root should default")
			},
		},
		{
			name:     "replacement_with_file_glob",
			filename: "rules.yaml",
			content: `
replacements:
  - old: foo
    new: bar
    file: "**/*.md"
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replacements, 1)
				require.NotNil(t, cfg.Replacements[0].File)
				assert.Equal(t, "**/*.md", *cfg.Replacements[0].File)
			},
		},
		{
			name:      "unknown_extension",
			filename:  "rules.toml",
			content:   `old = "foo"`,
			wantError: "no parser found",
		},
		{
			name:      "unknown_yaml_field",
			filename:  "rules.yaml",
			content:   "replacemnts:\n  - old: foo\n",
			wantError: "parsing config",
		},
		{
			name:      "no_rules",
			filename:  "rules.yaml",
			content:   "async: true\n",
			wantError: "at least one replacement or exchange is required",
		},
		{
			name:     "replacement_missing_old",
			filename: "rules.yaml",
			content: `
replacements:
  - new: bar
`,
			wantError: "old is required",
		},
		{
			name:     "exchange_missing_pattern",
			filename: "rules.yaml",
			content: `
exchanges:
  - a: left
`,
			wantError: "both a and b are required",
		},
		{
			name:     "invalid_include_glob",
			filename: "rules.yaml",
			content: `
replacements:
  - old: foo
    new: bar
paths:
  include: ["["]
`,
			wantError: "invalid include glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := Load(context.Background(), path)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfigRules(t *testing.T) {
	file := "**/*.go"
	cfg := &Config{
		Replacements: []Replacement{
			{Old: "foo", New: "bar", File: &file},
		},
		Exchanges: []Exchange{
			{A: "Hina", B: "Hinata"},
		},
	}
	require.NoError(t, cfg.Validate())

	rules := cfg.Rules()
	require.Len(t, rules, 3)

	assert.Equal(t, text.ReplacementRule{FromText: "foo", ToText: "bar", FileFilterGlob: "**/*.go"}, rules[0])

	// the longer exchange pattern comes first
	assert.Equal(t, text.ReplacementRule{FromText: "Hinata", ToText: "Hina"}, rules[1])
	assert.Equal(t, text.ReplacementRule{FromText: "Hina", ToText: "Hinata"}, rules[2])
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("rules.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("rules.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("rules.hcl"))
	assert.IsType(t, &JSONParser{}, GetParser("rules.json"))
	assert.Nil(t, GetParser("rules.ini"))
}
