/*
Package config manages rules-file parsing and validation for multirep.

	            +-------------+
	            |   Config    |
	            |  (Rules)    |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+--+   +--+--+     +--+--+
	| YAML|   | HCL |     | JSON|
	+-----+   +-----+     +-----+

🎯 Purpose:
- Loads replacement and exchange rules from a file
- Validates patterns and file-selection globs
- Supports YAML, HCL and JSON formats behind one Parser interface

🔄 Flow:
1. Load reads the file and picks a parser by extension
2. The parser decodes format-specific syntax into Config
3. Validate rejects empty patterns and bad globs, fills defaults
4. Rules flattens the config into the ordered rule list the replacer runs

📝 Design Philosophy:
The config package is the source of truth for what gets replaced where.
Rule order in the file is the priority order of the substitution pass, so
parsing must preserve it exactly. Exchanges expand into their two-entry
pattern lists here, keeping the downstream file operations format-agnostic.
*/
package config
