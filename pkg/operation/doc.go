/*
Package operation applies a rules file to a working tree.

	+-------------+
	|  Operation  |
	|  (Runner)   |
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Replace)   |
	+------+------+

🎯 Purpose:
- Walks the configured root and selects files by include/ignore globs
- Runs the replacement rules over each selected file
- Writes changed files atomically, or just reports in dry-run mode

🔄 Flow:
1. Walk the tree and filter paths against the configured globs
2. Read each file, skipping binary content
3. Apply the file's matching rules through the text replacer
4. Write changes (temp file + rename) and report per-file results

⚡ Key Responsibilities:
- File selection and binary detection
- Atomic writes that preserve file modes
- Bounded parallelism when async mode is on
- Per-file result reporting for console output

📝 Design Philosophy:
The operation package owns file I/O and nothing else: what gets substituted
is decided entirely by pkg/text and pkg/multirep, and what gets selected is
decided entirely by the configuration. Dry runs share the exact code path
with real runs minus the write, so "status" can never drift from "apply".
*/
package operation
