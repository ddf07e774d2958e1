// Package deepgram adapts the Deepgram pre-recorded listen API to the
// provider-neutral transcription interface. Requests always enable
// diarization and paragraph grouping so downstream phases receive
// speaker-attributed sentences with timing.
package deepgram
