// Package backfill re-runs a single pipeline phase across every completed
// recording, for example to recompile all memories after a prompt change.
//
// Phase output replaces what earlier runs stored, so backfills are safe to
// repeat. Progress is tracked and reported; per-recording failures are
// counted and skipped without retry.
package backfill
