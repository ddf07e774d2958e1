package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain records.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Status is the lifecycle stage of a Recording.
type Status int

const (
	// StatusUploading means the audio artifact is still being received.
	StatusUploading Status = iota + 1
	// StatusProcessing means the pipeline is running one of its phases.
	StatusProcessing
	// StatusCompleted means all requested phases finished without a fatal error.
	StatusCompleted
	// StatusFailed means a fatal error stopped the pipeline.
	StatusFailed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusUploading:
		return "uploading"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase is one of the three sequential pipeline stages.
type Phase int

const (
	// PhaseTranscribing converts audio into a diarized transcript.
	PhaseTranscribing Phase = iota + 1
	// PhaseExtracting resolves entity candidates against canonical entities.
	PhaseExtracting
	// PhaseCompiling compiles the narrative memory from the transcript.
	PhaseCompiling
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTranscribing:
		return "transcribing"
	case PhaseExtracting:
		return "extracting"
	case PhaseCompiling:
		return "compiling"
	default:
		return "unknown"
	}
}

// RecordingState is a tagged union over recording status.
// A phase is carried only by the processing variant and a failure reason only
// by the failed variant, so invalid combinations cannot be constructed.
// The zero value is not a valid state; use one of the State constructors.
type RecordingState struct {
	status Status
	phase  Phase  // set only when status == StatusProcessing
	reason string // set only when status == StatusFailed
}

// StateUploading returns the state of a recording whose audio is still arriving.
func StateUploading() RecordingState {
	return RecordingState{status: StatusUploading}
}

// StateProcessing returns the state of a recording currently in the given phase.
func StateProcessing(phase Phase) RecordingState {
	return RecordingState{status: StatusProcessing, phase: phase}
}

// StateCompleted returns the terminal success state.
func StateCompleted() RecordingState {
	return RecordingState{status: StatusCompleted}
}

// StateFailed returns the terminal failure state carrying the error text.
func StateFailed(reason string) RecordingState {
	return RecordingState{status: StatusFailed, reason: reason}
}

// Status returns the lifecycle stage of the state.
func (s RecordingState) Status() Status {
	return s.status
}

// Phase returns the active pipeline phase.
// The second return is false unless the status is processing.
func (s RecordingState) Phase() (Phase, bool) {
	if s.status != StatusProcessing {
		return 0, false
	}
	return s.phase, true
}

// FailureReason returns the recorded error text.
// The second return is false unless the status is failed.
func (s RecordingState) FailureReason() (string, bool) {
	if s.status != StatusFailed {
		return "", false
	}
	return s.reason, true
}

// String renders the state for logs, e.g. "processing(transcribing)".
func (s RecordingState) String() string {
	switch s.status {
	case StatusProcessing:
		return s.status.String() + "(" + s.phase.String() + ")"
	case StatusFailed:
		return s.status.String() + ": " + s.reason
	default:
		return s.status.String()
	}
}

// Recording represents one uploaded audio artifact and its processing state.
// It is created at upload time and only ever mutated by the orchestrator
// thereafter.
type Recording struct {
	Id              string // ULID assigned at upload
	Filename        string
	ContentType     string
	AudioPath       string // location of the stored audio artifact
	DurationSeconds float64
	SpeakerCount    int
	State           RecordingState
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// Segment is one speaker-labeled span of a transcript.
// Offsets are integer milliseconds from the start of the audio.
type Segment struct {
	Speaker string
	Text    string
	StartMS int64
	EndMS   int64
}

// Transcript holds the full concatenated text of a recording together with
// its segments, ordered by start time. One-to-one with a Recording.
type Transcript struct {
	RecordingId string
	Text        string
	Segments    []Segment
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// ConfidenceTier is the coarse strength classification of an entity,
// derived from its cumulative mention count.
type ConfidenceTier int

const (
	// TierEmerging is an entity with a single supporting mention.
	TierEmerging ConfidenceTier = iota + 1
	// TierDeveloping is an entity with at least two mentions.
	TierDeveloping
	// TierEstablished is an entity with at least five mentions.
	TierEstablished
)

// String returns the lowercase name of the tier.
func (t ConfidenceTier) String() string {
	switch t {
	case TierEmerging:
		return "emerging"
	case TierDeveloping:
		return "developing"
	case TierEstablished:
		return "established"
	default:
		return "unknown"
	}
}

// Tier thresholds on cumulative mention counts.
const (
	establishedMentions = 5
	developingMentions  = 2
)

// TierForMentions derives the confidence tier from a cumulative mention count.
func TierForMentions(count int) ConfidenceTier {
	switch {
	case count >= establishedMentions:
		return TierEstablished
	case count >= developingMentions:
		return TierDeveloping
	default:
		return TierEmerging
	}
}

// Entity is a canonical identity deduplicated across all recordings by exact
// name match. Entities are never deleted by the pipeline.
type Entity struct {
	Id         ID // content-based, from the exact name
	Name       string
	Type       string
	Portrait   string
	Tier       ConfidenceTier
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Mention is one cited occurrence of an entity within a specific recording's
// transcript. Mentions are append-only and accumulate indefinitely.
type Mention struct {
	Id          ID // from database sequence
	EntityId    ID
	RecordingId string
	Quote       string
	Context     string
	InsertedAt  time.Time
}

// Memory is the compiled narrative summary of one recording.
// One-to-one with a Recording; replaced wholesale on recompilation.
type Memory struct {
	RecordingId string
	Title       string
	Summary     string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Moment is one significant excerpt supporting a Memory.
// Moments are owned by their Memory and replaced together with it.
type Moment struct {
	RecordingId  string
	Seq          int // position within the memory, starting at 0
	Quote        string
	Context      string
	Significance string
}
