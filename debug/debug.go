// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path diagnostic logging (alloc-light)
//
// Purpose:
//   - Logs infrequent error and lifecycle paths without pulling fmt into
//     the simulation loop.
//   - Used for: configuration failures, trace/store I/O errors, run
//     progress and summary lines.
//
// Notes:
//   - Direct string concatenation, single write to stderr.
//   - The per-access path never logs; all call sites are setup, teardown,
//     or failure handling.
//
// ⚠️ Never invoke in hot loops — use only in cold-path diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs an error with its prefix tag, or just the tag when err is
// nil (used for tagged lifecycle markers).
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a tagged message. Cold paths only: run phases, summary
// counters, skipped-record notices.
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
