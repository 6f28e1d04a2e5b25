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

package multirep

import (
	"sort"
	"strings"
)

// Pair is one ordered pattern entry: occurrences of Old in the source are
// replaced by New. Earlier pairs in a list take priority when candidate
// match spans conflict. A Pair with an empty Old never matches.
type Pair struct {
	Old string // literal pattern to search for
	New string // replacement text, spliced in verbatim
}

// Match is one kept occurrence of a pattern. Start and Length are byte
// offsets into the source string; both fall on UTF-8 boundaries because
// they come from matching a valid pattern string against a valid source.
type Match struct {
	Start       int    // byte offset of the match in the source
	Length      int    // byte length of the matched pattern
	Replacement string // text to splice in place of the match
}

// End returns the byte offset just past the matched span.
func (m Match) End() int { return m.Start + m.Length }

// Matches finds every occurrence of every pair in s, in pair order, and
// resolves them into a non-overlapping set ordered by ascending start
// offset. All matching happens against the original s: a candidate that
// overlaps an already-kept match is discarded, which is how earlier pairs
// win conflicting spans. At most one match is kept per start offset.
func Matches(s string, pairs []Pair) []Match {
	var kept []Match
	for _, p := range pairs {
		if p.Old == "" {
			continue
		}
		for off := 0; off < len(s); {
			i := strings.Index(s[off:], p.Old)
			if i < 0 {
				break
			}
			m := Match{Start: off + i, Length: len(p.Old), Replacement: p.New}
			kept = keep(kept, m)
			off = m.End()
		}
	}
	return kept
}

// keep inserts m into the set unless it overlaps a neighbor. The set is
// ordered by start offset, so only the entries on either side of the
// insertion point can overlap m's span.
func keep(kept []Match, m Match) []Match {
	i := sort.Search(len(kept), func(n int) bool { return kept[n].Start > m.Start })
	if i > 0 && kept[i-1].End() > m.Start {
		return kept
	}
	if i < len(kept) && kept[i].Start < m.End() {
		return kept
	}
	kept = append(kept, Match{})
	copy(kept[i+1:], kept[i:])
	kept[i] = m
	return kept
}

// Replace returns s with all resolved matches of pairs substituted in one
// pass. Replacement text is never rescanned, so a later pair cannot match
// inside an earlier pair's replacement. An empty pair list, or pairs that
// never match, return s unchanged.
func Replace(s string, pairs []Pair) string {
	return render(s, Matches(s, pairs))
}

// render walks the resolved matches with a cursor, copying the untouched
// spans between them verbatim. Matches are non-overlapping and ascending,
// so the cursor only moves forward.
func render(s string, matches []Match) string {
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	end := 0
	for _, m := range matches {
		b.WriteString(s[end:m.Start])
		b.WriteString(m.Replacement)
		end = m.End()
	}
	b.WriteString(s[end:])
	return b.String()
}

// ExchangePairs returns the two-entry pattern list Exchange resolves. The
// longer of a and b is listed first: if one pattern is a substring of the
// other, the longer one has to claim its spans before the shorter one gets
// a chance to match inside them. Equal lengths cannot nest, so b-then-a is
// used for those.
func ExchangePairs(a, b string) []Pair {
	if len(a) > len(b) {
		return []Pair{{Old: a, New: b}, {Old: b, New: a}}
	}
	return []Pair{{Old: b, New: a}, {Old: a, New: b}}
}

// Exchange returns s with every occurrence of a replaced by b and every
// occurrence of b replaced by a, resolved in a single pass so neither
// substitution corrupts the other. Exchange(s, a, a) returns s.
func Exchange(s, a, b string) string {
	return Replace(s, ExchangePairs(a, b))
}
