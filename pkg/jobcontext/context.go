package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
)

// Begin derives a deadline-bound context carrying job metadata. Workers use
// the deadline to abandon jobs instead of hanging forever.
func Begin(parentCtx context.Context, jobID uuid.UUID, jobType string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// GetJobID returns the job ID from the context, or uuid.Nil when absent
func GetJobID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(keyJobID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetJobType returns the job type from the context
func GetJobType(ctx context.Context) string {
	if jobType, ok := ctx.Value(keyJobType).(string); ok {
		return jobType
	}
	return ""
}

// GetStartTime returns when the job began, or the zero time when absent
func GetStartTime(ctx context.Context) time.Time {
	if start, ok := ctx.Value(keyJobStartTime).(time.Time); ok {
		return start
	}
	return time.Time{}
}

// Elapsed returns the time spent since Begin
func Elapsed(ctx context.Context) time.Duration {
	start := GetStartTime(ctx)
	if start.IsZero() {
		return 0
	}
	return time.Since(start)
}
