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

import "io"

// Replacer holds a pattern list for repeated use against many sources.
// It keeps no per-call state, so a single Replacer is safe for concurrent
// use by multiple goroutines. The zero value performs no replacements.
type Replacer struct {
	pairs []Pair
}

// NewReplacer builds a Replacer from pairs. The slice is copied, so the
// caller may reuse or mutate it afterwards.
func NewReplacer(pairs ...Pair) *Replacer {
	return &Replacer{pairs: append([]Pair(nil), pairs...)}
}

// Replace applies the pattern list to s.
func (r *Replacer) Replace(s string) string {
	return Replace(s, r.pairs)
}

// Matches returns the resolved match set for s under the pattern list.
func (r *Replacer) Matches(s string) []Match {
	return Matches(s, r.pairs)
}

// WriteString renders the replacement of s directly to w, without building
// the intermediate output string. It returns the number of bytes written
// and the first write error encountered.
func (r *Replacer) WriteString(w io.Writer, s string) (int, error) {
	written := 0
	end := 0
	for _, m := range Matches(s, r.pairs) {
		n, err := io.WriteString(w, s[end:m.Start])
		written += n
		if err != nil {
			return written, err
		}
		n, err = io.WriteString(w, m.Replacement)
		written += n
		if err != nil {
			return written, err
		}
		end = m.End()
	}
	n, err := io.WriteString(w, s[end:])
	return written + n, err
}
