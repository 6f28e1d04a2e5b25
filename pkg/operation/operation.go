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

package operation

import (
	"context"

	"github.com/snylonue/multirep/pkg/config"
	"github.com/snylonue/multirep/pkg/log"
	"github.com/snylonue/multirep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the interface for rules-file runs
type Operator interface {
	// Apply runs the rules over the tree and writes changed files
	Apply(ctx context.Context) ([]FileResult, error)
	// Status runs the rules without writing and reports what would change
	Status(ctx context.Context) ([]FileResult, error)
}

// 📄 FileResult describes the outcome for one processed file
type FileResult struct {
	Path         string // Path relative to the configured root
	Changed      bool   // Whether the content changed (or would change)
	Skipped      bool   // Whether the file was skipped
	SkipReason   string // Why the file was skipped
	Replacements int    // Number of occurrences substituted
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the parsed rules file
	Config *config.Config
	// Replacer applies the rules to file content
	Replacer text.TextReplacer
	// Logger reports per-file progress to the console
	Logger *log.Logger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}

	// Validate fills in path defaults when the config was built in code
	// rather than loaded from a file
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	rules := opts.Config.Rules()
	if err := opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &operator{
		cfg:      opts.Config,
		replacer: opts.Replacer,
		logger:   opts.Logger,
		rules:    rules,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	cfg      *config.Config
	replacer text.TextReplacer
	logger   *log.Logger
	rules    []text.ReplacementRule
}
