package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

func TestMemoryJobStore_CreateAndFind(t *testing.T) {
	store := NewMemoryJobStore()
	ctx := context.Background()

	job := entities.NewAnalysisJob("space exploration")
	if err := store.Create(ctx, job); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := store.FindByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found == nil {
		t.Fatalf("expected job, got nil")
	}
	if found.Topic != "space exploration" || found.Status != entities.JobStatusTranscribing {
		t.Errorf("unexpected job: %+v", found)
	}
}

func TestMemoryJobStore_FindUnknownReturnsNil(t *testing.T) {
	store := NewMemoryJobStore()

	found, err := store.FindByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown ID, got %+v", found)
	}
}

func TestMemoryJobStore_DuplicateCreateFails(t *testing.T) {
	store := NewMemoryJobStore()
	ctx := context.Background()

	job := entities.NewAnalysisJob("topic")
	if err := store.Create(ctx, job); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Create(ctx, job); err == nil {
		t.Errorf("expected duplicate create to fail")
	}
}

func TestMemoryJobStore_UpdateUnknownFails(t *testing.T) {
	store := NewMemoryJobStore()

	job := entities.NewAnalysisJob("topic")
	if err := store.Update(context.Background(), job); err == nil {
		t.Errorf("expected update of unknown job to fail")
	}
}

func TestMemoryJobStore_ReadsAreSnapshots(t *testing.T) {
	store := NewMemoryJobStore()
	ctx := context.Background()

	job := entities.NewAnalysisJob("topic")
	if err := store.Create(ctx, job); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	job.MarkAsFailed("caller side mutation")

	found, err := store.FindByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Status != entities.JobStatusTranscribing {
		t.Errorf("store observed caller mutation: %s", found.Status)
	}

	// Mutating a returned snapshot must not leak either.
	found.MarkAsProcessing("snapshot mutation")
	again, _ := store.FindByID(ctx, job.ID)
	if again.Status != entities.JobStatusTranscribing {
		t.Errorf("store observed snapshot mutation: %s", again.Status)
	}
}
