// Package pipeline orchestrates the multi-phase processing of recordings.
//
// The Orchestrator type runs the phase sequence for one recording:
//   - Transcribing the audio into a diarized transcript
//   - Extracting entity candidates and resolving them against canonical entities
//   - Compiling the transcript into a structured memory
//
// A job without an action runs all phases in order; a job with an explicit
// action runs only that phase. Transcription failures are fatal and mark the
// recording failed; malformed model output in later phases is recoverable and
// skipped without disturbing previously persisted results.
//
// The Worker type drains job messages sequentially through the orchestrator.
// Every job is acknowledged whether or not it succeeds; there is no retry.
package pipeline
