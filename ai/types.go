package ai

// DiarizedResult is the normalized output of the transcription service:
// the full transcript text plus paragraph-grouped, speaker-attributed
// sentences with fractional-second timing.
type DiarizedResult struct {
	// Text is the full concatenated transcript.
	Text string

	// Duration is the audio length in seconds as reported by the service.
	Duration float64

	// Paragraphs groups sentences by speaker turn, in temporal order.
	Paragraphs []DiarizedParagraph
}

// DiarizedParagraph is one speaker turn.
type DiarizedParagraph struct {
	// Speaker is the zero-based diarization index assigned by the service.
	Speaker int

	// Sentences are the paragraph's sentences, in temporal order.
	Sentences []DiarizedSentence
}

// DiarizedSentence is one sentence with fractional-second offsets.
type DiarizedSentence struct {
	Text  string
	Start float64
	End   float64
}

// EntityCandidate is one entity proposed by the extraction service,
// before resolution against canonical entities.
type EntityCandidate struct {
	// Name is the candidate's exact surface name. Resolution is
	// case-sensitive; no normalization happens here.
	Name string

	// Type categorizes the candidate (e.g., "person", "place").
	// Should match one of the predefined entity types.
	Type string

	// Portrait is a free-text description of the candidate.
	Portrait string

	// Quotes are verbatim transcript excerpts supporting the candidate.
	// One mention is recorded per quote.
	Quotes []string
}

// CompiledMemory is the structured output of the compilation service.
type CompiledMemory struct {
	Title   string
	Summary string
	Moments []CompiledMoment
}

// CompiledMoment is one significant excerpt within a compiled memory.
type CompiledMoment struct {
	Quote        string
	Context      string
	Significance string
}

// EntityTypes defines the valid categories for extracted entities.
// These types are used by extractors to classify entity candidates.
var EntityTypes = []string{
	"event",
	"object",
	"organization",
	"person",
	"place",
	"topic",
}
