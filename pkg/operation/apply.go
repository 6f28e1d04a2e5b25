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
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/snylonue/multirep/pkg/log"
	"github.com/snylonue/multirep/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// binarySniffLen bounds how much of a file is inspected for NUL bytes
const binarySniffLen = 8000

// 🏃 Apply runs the rules over the tree and writes changed files
func (op *operator) Apply(ctx context.Context) ([]FileResult, error) {
	return op.run(ctx, false)
}

// 🔍 Status runs the rules without writing anything
func (op *operator) Status(ctx context.Context) ([]FileResult, error) {
	return op.run(ctx, true)
}

// run is the shared walk-and-replace pass. Dry runs take the identical path
// and only skip the final write.
func (op *operator) run(ctx context.Context, dryRun bool) ([]FileResult, error) {
	logger := zerolog.Ctx(ctx)

	files, err := op.selectFiles()
	if err != nil {
		return nil, errors.Errorf("selecting files: %w", err)
	}
	logger.Debug().Int("files", len(files)).Bool("dry_run", dryRun).Msg("processing files")

	results := make([]FileResult, len(files))
	if op.cfg.Async {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				result, err := op.processFile(gctx, file, dryRun)
				if err != nil {
					return errors.Errorf("processing file %s: %w", file, err)
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, errors.Errorf("run cancelled: %w", err)
			}
			result, err := op.processFile(ctx, file, dryRun)
			if err != nil {
				return nil, errors.Errorf("processing file %s: %w", file, err)
			}
			results[i] = result
		}
	}

	// Report in walk order regardless of completion order
	for _, result := range results {
		op.logger.LogFileOperation(ctx, log.FileOperation{
			Path:         result.Path,
			Status:       statusText(result, dryRun),
			Changed:      result.Changed,
			Skipped:      result.Skipped,
			Replacements: result.Replacements,
		})
	}

	return results, nil
}

// 🗂️ selectFiles walks the root and filters paths by the configured globs
func (op *operator) selectFiles() ([]string, error) {
	paths := op.cfg.Paths

	var files []string
	err := filepath.WalkDir(paths.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(paths.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchAny(paths.Include, rel, true) {
			return nil
		}
		if matchAny(paths.Ignore, rel, false) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", paths.Root, err)
	}
	return files, nil
}

// matchAny reports whether rel matches any of the patterns. An empty
// pattern list yields the provided default, so no include globs means
// everything and no ignore globs means nothing.
func matchAny(patterns []string, rel string, whenEmpty bool) bool {
	if len(patterns) == 0 {
		return whenEmpty
	}
	for _, pattern := range patterns {
		// patterns are validated at config load time
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// 📄 processFile applies the file's matching rules to one file
func (op *operator) processFile(ctx context.Context, rel string, dryRun bool) (FileResult, error) {
	result := FileResult{Path: rel}
	abs := filepath.Join(op.cfg.Paths.Root, filepath.FromSlash(rel))

	data, err := os.ReadFile(abs)
	if err != nil {
		return result, errors.Errorf("reading file: %w", err)
	}

	if isBinary(data) {
		result.Skipped = true
		result.SkipReason = "binary file"
		return result, nil
	}

	rules := op.rulesFor(rel)
	if len(rules) == 0 {
		result.Skipped = true
		result.SkipReason = "no matching rules"
		return result, nil
	}

	replaced, err := op.replacer.ReplaceText(ctx, bytes.NewReader(data), rules)
	if err != nil {
		return result, errors.Errorf("replacing text: %w", err)
	}

	result.Replacements = replaced.ReplacementCount
	result.Changed = replaced.WasModified
	if !result.Changed || dryRun {
		return result, nil
	}

	if err := writeFileAtomic(abs, replaced.ModifiedContent); err != nil {
		return result, errors.Errorf("writing file: %w", err)
	}
	return result, nil
}

// 🧾 rulesFor returns the rules whose file filter matches rel
func (op *operator) rulesFor(rel string) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(op.rules))
	for _, rule := range op.rules {
		if rule.FileFilterGlob != "" {
			if ok, err := doublestar.Match(rule.FileFilterGlob, rel); err != nil || !ok {
				continue
			}
		}
		rules = append(rules, rule)
	}
	return rules
}

// isBinary sniffs the leading bytes for a NUL, the same heuristic git uses
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// 💾 writeFileAtomic replaces path via a temp file in the same directory,
// preserving the original file mode
func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".multirep-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// statusText picks the console status column for a result
func statusText(result FileResult, dryRun bool) string {
	switch {
	case result.Skipped:
		return "SKIPPED"
	case result.Changed && dryRun:
		return "WOULD CHANGE"
	case result.Changed:
		return "CHANGED"
	default:
		return "UNCHANGED"
	}
}
