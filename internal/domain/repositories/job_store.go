package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// JobStore defines data access for analysis jobs. The orchestrator is the only
// writer per job id; status polling reads concurrently from request goroutines,
// so implementations must hand out consistent snapshots.
type JobStore interface {
	// Create stores a new job record
	Create(ctx context.Context, job *entities.AnalysisJob) error

	// FindByID retrieves a job by ID, or (nil, nil) when the id is unknown
	FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error)

	// Update replaces an existing job record
	Update(ctx context.Context, job *entities.AnalysisJob) error
}
