package entities

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of an analysis job
type JobStatus string

const (
	JobStatusTranscribing JobStatus = "transcribing" // Waiting for the transcription service
	JobStatusProcessing   JobStatus = "processing"   // Scorers dispatched, results pending
	JobStatusCompleted    JobStatus = "completed"    // All four scores computed
	JobStatusFailed       JobStatus = "failed"       // Transcription failed or scoring deadline exceeded
)

// ScoreSet holds the four sub-scores, each in [0, 10] and rounded to two
// decimals at the orchestration boundary.
type ScoreSet struct {
	Fluency    float64 `json:"fluency"`
	Vocabulary float64 `json:"vocabulary"`
	Grammar    float64 `json:"grammar"`
	Relevancy  float64 `json:"relevancy"`
}

// AnalysisJob represents one audio analysis request. The orchestrator is the
// only writer; readers get copies through the job store.
type AnalysisJob struct {
	ID             uuid.UUID `json:"id"`
	Status         JobStatus `json:"status"`
	Topic          string    `json:"topic"`
	TranscriptText string    `json:"transcript_text,omitempty"`
	Scores         *ScoreSet `json:"scores,omitempty"`

	// DegradedScorers lists scorers that fell back to a default score because
	// their collaborator was unavailable.
	DegradedScorers []string `json:"degraded_scorers,omitempty"`
	LastError       *string  `json:"last_error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewAnalysisJob creates a job in the transcribing state
func NewAnalysisJob(topic string) *AnalysisJob {
	now := time.Now()
	return &AnalysisJob{
		ID:        uuid.New(),
		Status:    JobStatusTranscribing,
		Topic:     topic,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkAsProcessing records the transcript text and moves the job to processing
func (j *AnalysisJob) MarkAsProcessing(transcriptText string) {
	j.Status = JobStatusProcessing
	j.TranscriptText = transcriptText
	j.UpdatedAt = time.Now()
}

// MarkAsCompleted stores the final score set and moves the job to completed
func (j *AnalysisJob) MarkAsCompleted(scores ScoreSet, degraded []string) {
	j.Status = JobStatusCompleted
	j.Scores = &scores
	j.DegradedScorers = degraded
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed moves the job to the failed terminal state
func (j *AnalysisJob) MarkAsFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.LastError = &errMsg
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// IsTerminal reports whether the job can no longer change state
func (j *AnalysisJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// Clone returns a deep copy of the job so concurrent readers never observe a
// record mid-mutation.
func (j *AnalysisJob) Clone() *AnalysisJob {
	cp := *j
	if j.Scores != nil {
		scores := *j.Scores
		cp.Scores = &scores
	}
	if j.LastError != nil {
		msg := *j.LastError
		cp.LastError = &msg
	}
	if j.CompletedAt != nil {
		at := *j.CompletedAt
		cp.CompletedAt = &at
	}
	if j.DegradedScorers != nil {
		cp.DegradedScorers = append([]string(nil), j.DegradedScorers...)
	}
	return &cp
}
