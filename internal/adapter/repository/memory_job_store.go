package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/speakwise-team/speakwise/errors"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// MemoryJobStore keeps analysis jobs in an in-process map. It is the
// default store for single-instance deployments; every read hands out a
// deep copy so callers never share state with the workers.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*entities.AnalysisJob
}

// NewMemoryJobStore creates an empty in-memory job store.
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{
		jobs: make(map[uuid.UUID]*entities.AnalysisJob),
	}
}

// Create stores a new job. It fails if the ID is already taken.
func (s *MemoryJobStore) Create(_ context.Context, job *entities.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return errors.ErrJobStoreFailed(nil).WithDetail("job_id", job.ID.String())
	}
	s.jobs[job.ID] = job.Clone()
	return nil
}

// FindByID returns a copy of the job, or (nil, nil) when unknown.
func (s *MemoryJobStore) FindByID(_ context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	if !exists {
		return nil, nil
	}
	return job.Clone(), nil
}

// Update replaces the stored job state.
func (s *MemoryJobStore) Update(_ context.Context, job *entities.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; !exists {
		return errors.ErrJobNotFound(job.ID.String())
	}
	s.jobs[job.ID] = job.Clone()
	return nil
}
