/*
Package multirep replaces multiple literal patterns in a string in a single
pass.

	+-----------+     +-----------+     +----------+
	|  Collect  | --> |  Resolve  | --> |  Render  |
	| (matches) |     | (overlap) |     | (output) |
	+-----------+     +-----------+     +----------+

🎯 Purpose:
- Substitutes every occurrence of an ordered list of literal patterns at once
- Resolves overlapping candidate matches deterministically
- Never rescans replacement text for further matches

🔄 Flow:
1. Every pattern is matched against the original source, in list order
2. Candidates that overlap an already-kept match are discarded
3. The kept, non-overlapping matches are rendered in one cursor walk

⚡ Key Properties:
- Earlier patterns win when candidate spans conflict
- All matching happens against the untouched source, never against output
- Pure functions: no shared state, safe for concurrent callers
- Total: empty patterns, empty sources and empty lists are all no-ops

🔍 Example:

	out := multirep.Replace("Hana is cute", []multirep.Pair{
		{Old: "Hana", New: "Minami"},
		{Old: "cute", New: "kawaii"},
	})
	// out == "Minami is kawaii"

Exchange swaps two patterns with each other in the same single pass:

	out := multirep.Exchange("bar foo", "foo", "bar")
	// out == "foo bar"
*/
package multirep
