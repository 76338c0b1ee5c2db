package scoring

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// Embedder is the text-embedding collaborator
type Embedder interface {
	Encode(ctx context.Context, text string) ([]float64, error)
}

// RelevancyScorer maps the cosine similarity between topic and transcript
// embeddings onto [0, 10]. A nil or failing embedder degrades the score to 0.
type RelevancyScorer struct {
	embedder Embedder
	logger   *zap.Logger
}

// NewRelevancyScorer creates a relevancy scorer. embedder may be nil when the
// embedding service is unavailable; the scorer then always reports 0.
func NewRelevancyScorer(embedder Embedder, logger *zap.Logger) *RelevancyScorer {
	return &RelevancyScorer{embedder: embedder, logger: logger}
}

// Degraded reports whether the scorer is running without an embedder
func (s *RelevancyScorer) Degraded() bool {
	return s.embedder == nil
}

// Score computes the relevancy score between a transcript and a topic
func (s *RelevancyScorer) Score(ctx context.Context, t *entities.Transcript, topic string) float64 {
	if s.embedder == nil {
		if s.logger != nil {
			s.logger.Warn("embedding service not initialized, relevancy degraded to 0")
		}
		return 0
	}

	cleanTopic := strings.TrimSpace(strings.ToLower(topic))
	cleanText := strings.TrimSpace(strings.ToLower(t.Text))

	topicVec, err := s.embedder.Encode(ctx, cleanTopic)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("topic embedding failed, relevancy degraded to 0", zap.Error(err))
		}
		return 0
	}
	textVec, err := s.embedder.Encode(ctx, cleanText)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("transcript embedding failed, relevancy degraded to 0", zap.Error(err))
		}
		return 0
	}

	cosine, err := cosineSimilarity(topicVec, textVec)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("cosine similarity failed, relevancy degraded to 0", zap.Error(err))
		}
		return 0
	}

	return clamp((cosine+1)/2*10, LowerBound, UpperBound)
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// in [-1, 1]
func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, errors.New("embedding vectors empty or of different lengths")
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-magnitude embedding vector")
	}
	return floats.Dot(a, b) / (normA * normB), nil
}
