package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// Matcher resolves an entity candidate name against the canonical entity
// store. A nil entity with nil error means no match.
type Matcher interface {
	Match(ctx context.Context, entities storage.EntityRepository, name string) (*core.Entity, error)
}

// ExactMatcher matches candidate names byte for byte. "Bob" and "bob " are
// different entities under this strategy.
type ExactMatcher struct{}

// Match looks up the candidate name with an exact, case-sensitive comparison.
func (ExactMatcher) Match(ctx context.Context, entities storage.EntityRepository, name string) (*core.Entity, error) {
	entity, err := entities.FindEntityByName(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// extract runs entity extraction over the stored transcript and resolves
// each candidate against the canonical entity store. Malformed model output
// is recoverable and leaves prior extraction results untouched; storage
// faults are fatal.
func (o *Orchestrator) extract(ctx context.Context, recording *core.Recording) PhaseResult {
	transcript, err := o.recordings.GetTranscript(ctx, recording.Id)
	if err != nil {
		return phaseFatal(fmt.Errorf("loading transcript: %w", err))
	}

	candidates, err := o.provider.EntityExtractor().ExtractEntities(ctx, transcript.Text)
	if err != nil {
		return classifyAIError(fmt.Errorf("entity extraction failed: %w", err))
	}

	for _, candidate := range candidates {
		if err := o.resolveCandidate(ctx, recording.Id, transcript, candidate); err != nil {
			return phaseFatal(err)
		}
	}

	o.logger.Debug("entities resolved",
		"recording", recording.Id,
		"candidates", len(candidates))
	return phaseOK()
}

// resolveCandidate folds one candidate into the entity store: an existing
// entity is promoted to the tier its new mention count earns, a new one
// starts at the tier of a single mention. One mention is appended per
// supporting quote.
func (o *Orchestrator) resolveCandidate(ctx context.Context, recordingID string, transcript *core.Transcript, candidate ai.EntityCandidate) error {
	entity, err := o.matcher.Match(ctx, o.entities, candidate.Name)
	if err != nil {
		return fmt.Errorf("matching entity %q: %w", candidate.Name, err)
	}

	if entity != nil {
		count, err := o.entities.CountMentions(ctx, entity.Id)
		if err != nil {
			return fmt.Errorf("counting mentions for %q: %w", candidate.Name, err)
		}
		entity.Tier = core.TierForMentions(count + 1)
		if candidate.Portrait != "" {
			entity.Portrait = candidate.Portrait
		}
		if _, err := o.entities.UpdateEntity(ctx, entity); err != nil {
			return fmt.Errorf("updating entity %q: %w", candidate.Name, err)
		}
	} else {
		entity = &core.Entity{
			Name:     candidate.Name,
			Type:     candidate.Type,
			Portrait: candidate.Portrait,
			Tier:     core.TierForMentions(1),
		}
		if entity, err = o.entities.AddEntity(ctx, entity); err != nil {
			return fmt.Errorf("creating entity %q: %w", candidate.Name, err)
		}
	}

	mentions := make([]*core.Mention, 0, len(candidate.Quotes))
	for _, quote := range candidate.Quotes {
		mentions = append(mentions, &core.Mention{
			EntityId:    entity.Id,
			RecordingId: recordingID,
			Quote:       quote,
			Context:     contextForQuote(transcript, quote),
		})
	}
	if len(mentions) > 0 {
		if _, err := o.entities.AddMentions(ctx, mentions...); err != nil {
			return fmt.Errorf("recording mentions for %q: %w", candidate.Name, err)
		}
	}

	return nil
}

// contextForQuote finds the transcript segment containing the quote and
// returns its speaker-attributed text. The empty string means the quote
// could not be located.
func contextForQuote(transcript *core.Transcript, quote string) string {
	if quote == "" {
		return ""
	}
	for _, segment := range transcript.Segments {
		if strings.Contains(segment.Text, quote) {
			return segment.Speaker + ": " + segment.Text
		}
	}
	return ""
}
