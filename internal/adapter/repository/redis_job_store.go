package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/speakwise-team/speakwise/errors"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

const jobKeyPrefix = "analysis:job:"

// RedisJobStore persists analysis jobs as JSON values in Redis so
// results survive process restarts and can be shared across instances.
type RedisJobStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisJobStore creates a Redis-backed job store. Keys expire after
// ttl; zero means no expiration.
func NewRedisJobStore(client *redis.Client, ttl time.Duration) *RedisJobStore {
	return &RedisJobStore{
		client: client,
		ttl:    ttl,
	}
}

func jobKey(id uuid.UUID) string {
	return jobKeyPrefix + id.String()
}

// Create stores a new job. It fails if the key already exists.
func (s *RedisJobStore) Create(ctx context.Context, job *entities.AnalysisJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return errors.ErrJobStoreFailed(err)
	}

	ok, err := s.client.SetNX(ctx, jobKey(job.ID), payload, s.ttl).Result()
	if err != nil {
		return errors.ErrJobStoreFailed(err)
	}
	if !ok {
		return errors.ErrJobStoreFailed(nil).WithDetail("job_id", job.ID.String())
	}
	return nil
}

// FindByID returns the stored job, or (nil, nil) when the key is absent.
func (s *RedisJobStore) FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	payload, err := s.client.Get(ctx, jobKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.ErrJobStoreFailed(err)
	}

	var job entities.AnalysisJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, errors.ErrJobStoreFailed(err)
	}
	return &job, nil
}

// Update replaces the stored job state, refreshing the TTL.
func (s *RedisJobStore) Update(ctx context.Context, job *entities.AnalysisJob) error {
	existing, err := s.FindByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrJobNotFound(job.ID.String())
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return errors.ErrJobStoreFailed(err)
	}
	if err := s.client.Set(ctx, jobKey(job.ID), payload, s.ttl).Err(); err != nil {
		return errors.ErrJobStoreFailed(err)
	}
	return nil
}
