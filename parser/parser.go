// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: parser.go — Access-trace record scanner (zero-alloc)
//
// Purpose:
//   - Parses one trace line into an access address. A record is a
//     (0x-optional) hex address, optionally prefixed with an "A" kind tag.
//     Blank lines and '#' comments are skipped.
//
// Notes:
//   - Byte-level scanning, no fmt/strconv on the per-line path.
//   - Malformed lines are reported, not fatal; the runner counts and skips.
// ─────────────────────────────────────────────────────────────────────────────

package parser

import "main/utils"

// Parse scans one trace line. ok is false for blank lines, comments and
// malformed records; skip reports whether the line was deliberately empty
// or a comment (so callers can separate "skipped" from "malformed").
func Parse(line []byte) (addr uint64, ok bool, skip bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r') {
		i++
	}
	if i == len(line) || line[i] == '#' {
		return 0, false, true
	}

	// Optional record-kind tag; only demand accesses exist today.
	if line[i] == 'A' || line[i] == 'a' {
		i++
		if i == len(line) || (line[i] != ' ' && line[i] != '\t') {
			return 0, false, false
		}
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
	}

	v, n := utils.ParseHexU64(line[i:])
	if n == 0 || (n == 2 && line[i] == '0' && (line[i+1]|0x20) == 'x') {
		return 0, false, false
	}
	// Trailing garbage other than whitespace is malformed.
	for j := i + n; j < len(line); j++ {
		if line[j] != ' ' && line[j] != '\t' && line[j] != '\r' {
			return 0, false, false
		}
	}
	return v, true, false
}
