package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

func TestEntityBasics(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	entity := &core.Entity{
		Name:     "Alice",
		Type:     "person",
		Portrait: "A friend",
		Tier:     core.TierEmerging,
	}

	added, err := entityRepo.AddEntity(ctx, entity)
	if err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero content-based ID")
	}
	if added.Id != core.IDFromContent("Alice") {
		t.Fatal("Expected ID derived from exact name")
	}

	found, err := entityRepo.FindEntityByName(ctx, "Alice")
	if err != nil {
		t.Fatalf("Failed to find entity: %v", err)
	}
	if found.Portrait != "A friend" {
		t.Fatalf("Expected portrait, got '%s'", found.Portrait)
	}

	_, err = entityRepo.FindEntityByName(ctx, "alice")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for case-differing name, got %v", err)
	}
}

func TestEntityExactNameDedup(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Case or whitespace differences produce distinct entities.
	bob, err := entityRepo.AddEntity(ctx, &core.Entity{Name: "Bob", Type: "person", Tier: core.TierEmerging})
	if err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}
	bobSpace, err := entityRepo.AddEntity(ctx, &core.Entity{Name: "bob ", Type: "person", Tier: core.TierEmerging})
	if err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	if bob.Id == bobSpace.Id {
		t.Fatal("Expected distinct IDs for 'Bob' and 'bob '")
	}

	entities, err := entityRepo.ListEntities(ctx)
	if err != nil {
		t.Fatalf("Failed to list entities: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}
}

func TestEntityUpdateTier(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	entity, err := entityRepo.AddEntity(ctx, &core.Entity{Name: "Alice", Type: "person", Tier: core.TierEmerging})
	if err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	entity.Tier = core.TierDeveloping
	if _, err := entityRepo.UpdateEntity(ctx, entity); err != nil {
		t.Fatalf("Failed to update entity: %v", err)
	}

	retrieved, err := entityRepo.GetEntity(ctx, entity.Id)
	if err != nil {
		t.Fatalf("Failed to get entity: %v", err)
	}
	if retrieved.Tier != core.TierDeveloping {
		t.Fatalf("Expected developing tier, got %v", retrieved.Tier)
	}

	_, err = entityRepo.UpdateEntity(ctx, &core.Entity{Id: 999999, Name: "ghost", Type: "person"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMentions(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	alice, err := entityRepo.AddEntity(ctx, &core.Entity{Name: "Alice", Type: "person", Tier: core.TierEmerging})
	if err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	count, err := entityRepo.CountMentions(ctx, alice.Id)
	if err != nil {
		t.Fatalf("Failed to count mentions: %v", err)
	}
	if count != 0 {
		t.Fatalf("Expected 0 mentions, got %d", count)
	}

	mentions := []*core.Mention{
		{EntityId: alice.Id, RecordingId: "r1", Quote: "I met Alice yesterday"},
		{EntityId: alice.Id, RecordingId: "r2", Quote: "Alice called again"},
	}
	added, err := entityRepo.AddMentions(ctx, mentions...)
	if err != nil {
		t.Fatalf("Failed to add mentions: %v", err)
	}
	for _, m := range added {
		if m.Id == 0 {
			t.Fatal("Expected sequence-assigned mention ID")
		}
	}

	count, err = entityRepo.CountMentions(ctx, alice.Id)
	if err != nil {
		t.Fatalf("Failed to count mentions: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 mentions, got %d", count)
	}

	byEntity, err := entityRepo.GetMentionsByEntity(ctx, alice.Id)
	if err != nil {
		t.Fatalf("Failed to get mentions by entity: %v", err)
	}
	if len(byEntity) != 2 {
		t.Fatalf("Expected 2 mentions, got %d", len(byEntity))
	}

	byRecording, err := entityRepo.GetMentionsByRecording(ctx, "r1")
	if err != nil {
		t.Fatalf("Failed to get mentions by recording: %v", err)
	}
	if len(byRecording) != 1 {
		t.Fatalf("Expected 1 mention for r1, got %d", len(byRecording))
	}
	if byRecording[0].Quote != "I met Alice yesterday" {
		t.Fatalf("Unexpected quote '%s'", byRecording[0].Quote)
	}
}
