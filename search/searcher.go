package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// HitKind identifies which store a search hit came from.
type HitKind int

const (
	// HitSegment is a match inside a transcript segment.
	HitSegment HitKind = iota + 1
	// HitMemory is a match in a memory's title or summary.
	HitMemory
	// HitMoment is a match in a memory moment.
	HitMoment
	// HitEntity is a match on an entity name.
	HitEntity
)

// String returns the lowercase name of the hit kind.
func (k HitKind) String() string {
	switch k {
	case HitSegment:
		return "segment"
	case HitMemory:
		return "memory"
	case HitMoment:
		return "moment"
	case HitEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Hit is one search result with its recording attribution.
// Entity hits produce one Hit per recording that mentions the entity.
type Hit struct {
	Kind        HitKind
	RecordingId string
	EntityId    core.ID // set only for entity hits
	Snippet     string
	Score       float32
}

// Base scores per hit kind; an exact substring match adds a boost on top.
const (
	segmentScore  = 1.0
	momentScore   = 1.1
	memoryScore   = 1.2
	entityScore   = 1.3
	verbatimBoost = 0.3
)

// Searcher provides verbatim text search over transcripts, memories, and
// entity names. A document matches when it contains every non-stop-word of
// the query.
type Searcher struct {
	recordings storage.RecordingRepository
	entities   storage.EntityRepository
	memories   storage.MemoryRepository
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	recordings storage.RecordingRepository,
	entities storage.EntityRepository,
	memories storage.MemoryRepository,
	opts ...Option,
) (*Searcher, error) {
	if recordings == nil {
		return nil, ErrRecordingRepositoryRequired
	}
	if entities == nil {
		return nil, ErrEntityRepositoryRequired
	}
	if memories == nil {
		return nil, ErrMemoryRepositoryRequired
	}

	s := &Searcher{
		recordings: recordings,
		entities:   entities,
		memories:   memories,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search finds matches for the query across all stores.
// Returns up to maxHits results, ranked by score descending.
func (s *Searcher) Search(ctx context.Context, query string, maxHits int) ([]*Hit, error) {
	return s.SearchWithMonitor(ctx, query, maxHits, nil)
}

// SearchWithMonitor finds matches for the query with monitoring.
// The monitor receives callbacks as each store is scanned.
// Returns up to maxHits results, ranked by score descending.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*Hit, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if len(tokenizeAndFilter(query)) == 0 {
		return nil, ErrEmptyQuery
	}

	monitor.Start(query)

	recordings, err := s.recordings.ListRecordings(ctx, 0)
	if err != nil {
		s.logger.Error("error listing recordings", "err", err)
		return nil, err
	}
	recordingIDs := make([]string, len(recordings))
	for i, recording := range recordings {
		recordingIDs[i] = recording.Id
	}
	monitor.AfterRecordingScan(recordingIDs)

	hits := make([]*Hit, 0)
	for _, recording := range recordings {
		segmentHits, err := s.searchTranscript(ctx, recording.Id, query, monitor)
		if err != nil {
			return nil, err
		}
		hits = append(hits, segmentHits...)

		memoryHits, err := s.searchMemory(ctx, recording.Id, query, monitor)
		if err != nil {
			return nil, err
		}
		hits = append(hits, memoryHits...)
	}

	entityHits, err := s.searchEntities(ctx, query, monitor)
	if err != nil {
		return nil, err
	}
	hits = append(hits, entityHits...)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if maxHits > 0 && len(hits) > maxHits {
		hits = hits[:maxHits]
	}
	monitor.Finish(hits)

	return hits, nil
}

// searchTranscript scans a recording's segments. A recording with no
// transcript yet is skipped.
func (s *Searcher) searchTranscript(ctx context.Context, recordingID, query string, monitor SearchMonitor) ([]*Hit, error) {
	transcript, err := s.recordings.GetTranscript(ctx, recordingID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("error loading transcript", "recording", recordingID, "err", err)
		return nil, err
	}

	hits := make([]*Hit, 0)
	for _, segment := range transcript.Segments {
		if !containsAllQueryWords(segment.Text, query) {
			continue
		}
		monitor.SegmentHit(recordingID, segment)
		hits = append(hits, &Hit{
			Kind:        HitSegment,
			RecordingId: recordingID,
			Snippet:     segment.Speaker + ": " + segment.Text,
			Score:       score(segmentScore, segment.Text, query),
		})
	}
	return hits, nil
}

// searchMemory scans a recording's memory title, summary, and moments.
// A recording with no compiled memory is skipped.
func (s *Searcher) searchMemory(ctx context.Context, recordingID, query string, monitor SearchMonitor) ([]*Hit, error) {
	memory, err := s.memories.GetMemory(ctx, recordingID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("error loading memory", "recording", recordingID, "err", err)
		return nil, err
	}

	hits := make([]*Hit, 0)
	if text := memory.Title + " " + memory.Summary; containsAllQueryWords(text, query) {
		monitor.MemoryHit(memory)
		hits = append(hits, &Hit{
			Kind:        HitMemory,
			RecordingId: recordingID,
			Snippet:     memory.Title + ": " + memory.Summary,
			Score:       score(memoryScore, text, query),
		})
	}

	moments, err := s.memories.GetMoments(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	for _, moment := range moments {
		text := moment.Quote + " " + moment.Context
		if !containsAllQueryWords(text, query) {
			continue
		}
		monitor.MomentHit(moment)
		hits = append(hits, &Hit{
			Kind:        HitMoment,
			RecordingId: recordingID,
			Snippet:     moment.Quote,
			Score:       score(momentScore, text, query),
		})
	}
	return hits, nil
}

// searchEntities matches entity names and attributes each match to the
// recordings that mention the entity.
func (s *Searcher) searchEntities(ctx context.Context, query string, monitor SearchMonitor) ([]*Hit, error) {
	entities, err := s.entities.ListEntities(ctx)
	if err != nil {
		s.logger.Error("error listing entities", "err", err)
		return nil, err
	}

	hits := make([]*Hit, 0)
	for _, entity := range entities {
		if !containsAllQueryWords(entity.Name, query) {
			continue
		}
		monitor.EntityHit(entity)

		mentions, err := s.entities.GetMentionsByEntity(ctx, entity.Id)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		for _, mention := range mentions {
			if seen[mention.RecordingId] {
				continue
			}
			seen[mention.RecordingId] = true
			hits = append(hits, &Hit{
				Kind:        HitEntity,
				RecordingId: mention.RecordingId,
				EntityId:    entity.Id,
				Snippet:     entity.Name + ": " + entity.Portrait,
				Score:       score(entityScore, entity.Name, query),
			})
		}
	}
	return hits, nil
}

// score applies the verbatim substring boost to a kind's base score.
func score(base float32, document, query string) float32 {
	if containsVerbatim(document, query) {
		return base + verbatimBoost
	}
	return base
}
