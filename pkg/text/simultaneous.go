package text

import (
	"context"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/snylonue/multirep/pkg/multirep"
	"gitlab.com/tozd/go/errors"
)

// SimultaneousReplacer implements TextReplacer on top of multirep. All rules
// are matched against the original content and resolved into one
// non-overlapping set before any text is substituted, so one rule's
// replacement is never rescanned by a later rule and earlier rules win
// overlapping matches. A chain of strings.ReplaceAll calls guarantees
// neither.
type SimultaneousReplacer struct{}

// NewSimultaneousReplacer creates a new SimultaneousReplacer
func NewSimultaneousReplacer() *SimultaneousReplacer {
	return &SimultaneousReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimultaneousReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Empty rules never match, keep them as no-ops
	pairs := make([]multirep.Pair, 0, len(rules))
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}
		pairs = append(pairs, multirep.Pair{Old: rule.FromText, New: rule.ToText})
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	source := string(originalContent)
	matches := multirep.Matches(source, pairs)
	result.ReplacementCount = len(matches)
	if len(matches) == 0 {
		return result, nil
	}

	modified := multirep.Replace(source, pairs)
	result.ModifiedContent = []byte(modified)
	result.WasModified = modified != source
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimultaneousReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
