package analysis

import (
	"bytes"
	"context"
	"io"
	"math"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/speakwise-team/speakwise/errors"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
	"github.com/speakwise-team/speakwise/internal/domain/repositories"
	"github.com/speakwise-team/speakwise/internal/worker"
	"github.com/speakwise-team/speakwise/pkg/jobcontext"
)

// Transcriber converts an audio stream into a word-timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (*entities.Transcript, error)
}

// FluencyScorer scores delivery pace and hesitation patterns.
type FluencyScorer interface {
	Score(t *entities.Transcript) float64
}

// VocabularyScorer scores lexical diversity and readability.
type VocabularyScorer interface {
	Score(t *entities.Transcript) float64
}

// GrammarScorer scores grammatical correctness. Degraded reports whether
// the scorer is running without its checker backend.
type GrammarScorer interface {
	Score(ctx context.Context, t *entities.Transcript) float64
	Degraded() bool
}

// RelevancyScorer scores topical similarity between transcript and topic.
type RelevancyScorer interface {
	Score(ctx context.Context, t *entities.Transcript, topic string) float64
	Degraded() bool
}

// Service defines analysis orchestration methods
type Service interface {
	Submit(ctx context.Context, audio io.Reader, topic string) (*entities.AnalysisJob, error)
	GetResult(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error)
}

type analysisService struct {
	store       repositories.JobStore
	transcriber Transcriber
	pool        *worker.Pool

	fluency    FluencyScorer
	vocabulary VocabularyScorer
	grammar    GrammarScorer
	relevancy  RelevancyScorer

	jobTimeout time.Duration
	logger     *zap.Logger
}

// NewAnalysisService constructs the orchestrator. jobTimeout bounds the
// scoring phase of each job; zero falls back to 5 minutes.
func NewAnalysisService(
	store repositories.JobStore,
	transcriber Transcriber,
	pool *worker.Pool,
	fluency FluencyScorer,
	vocabulary VocabularyScorer,
	grammar GrammarScorer,
	relevancy RelevancyScorer,
	jobTimeout time.Duration,
	logger *zap.Logger,
) Service {
	if jobTimeout <= 0 {
		jobTimeout = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analysisService{
		store:       store,
		transcriber: transcriber,
		pool:        pool,
		fluency:     fluency,
		vocabulary:  vocabulary,
		grammar:     grammar,
		relevancy:   relevancy,
		jobTimeout:  jobTimeout,
		logger:      logger,
	}
}

// Submit transcribes the audio synchronously, registers the job, and hands the
// scoring work to the pool. The returned job carries the transcript text and
// is still in the processing state; callers poll GetResult for scores.
func (s *analysisService) Submit(ctx context.Context, audio io.Reader, topic string) (*entities.AnalysisJob, error) {
	if topic == "" {
		return nil, errors.ErrMissingTopic()
	}
	if audio == nil {
		return nil, errors.ErrMissingAudioFile()
	}

	job := entities.NewAnalysisJob(topic)
	if err := s.store.Create(ctx, job); err != nil {
		return nil, err
	}

	// Buffer the audio so the transcriber can be retried from the start.
	data, err := io.ReadAll(audio)
	if err != nil {
		s.failJob(ctx, job, "failed to read audio stream")
		return nil, errors.ErrTranscriptionFailed(err)
	}

	transcript, err := s.transcribeWithRetry(ctx, data)
	if err != nil {
		s.failJob(ctx, job, "transcription failed")
		s.logger.Error("❌ Transcription failed after retries",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return nil, errors.ErrTranscriptionFailed(err)
	}

	job.MarkAsProcessing(transcript.Text)
	if err := s.store.Update(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("🚀 Dispatching scorers",
		zap.String("job_id", job.ID.String()),
		zap.Int("word_count", transcript.WordCount()),
	)
	go s.process(job.Clone(), transcript)

	return job.Clone(), nil
}

// GetResult returns the current job state.
func (s *analysisService) GetResult(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	job, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound(id.String())
	}
	return job, nil
}

func (s *analysisService) transcribeWithRetry(ctx context.Context, data []byte) (*entities.Transcript, error) {
	var transcript *entities.Transcript

	submitFn := func() error {
		var err error
		transcript, err = s.transcriber.Transcribe(ctx, bytes.NewReader(data))
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 60 * time.Second

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return transcript, nil
}

// process fans the four scorers out to the pool and joins them under the job
// deadline. It runs on its own goroutine, detached from the request context.
func (s *analysisService) process(job *entities.AnalysisJob, transcript *entities.Transcript) {
	ctx, cancel := jobcontext.Begin(context.Background(), job.ID, "analysis", s.jobTimeout)
	defer cancel()

	var (
		scores entities.ScoreSet
		wg     sync.WaitGroup
	)

	tasks := []worker.Task{
		func() { scores.Fluency = s.fluency.Score(transcript) },
		func() { scores.Vocabulary = s.vocabulary.Score(transcript) },
		func() { scores.Grammar = s.grammar.Score(ctx, transcript) },
		func() { scores.Relevancy = s.relevancy.Score(ctx, transcript, job.Topic) },
	}
	wg.Add(len(tasks))
	for _, task := range tasks {
		task := task
		wrapped := func() {
			defer wg.Done()
			task()
		}
		// A full queue falls back to inline execution so the job still
		// completes.
		if !s.pool.Submit(wrapped) {
			wrapped()
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("⏰ Scoring deadline exceeded",
			zap.String("job_id", job.ID.String()),
			zap.Duration("timeout", s.jobTimeout),
		)
		s.failJob(context.Background(), job, "scoring deadline exceeded")
		return
	}

	job.MarkAsCompleted(entities.ScoreSet{
		Fluency:    round2(scores.Fluency),
		Vocabulary: round2(scores.Vocabulary),
		Grammar:    round2(scores.Grammar),
		Relevancy:  round2(scores.Relevancy),
	}, s.degradedScorers())

	if err := s.store.Update(context.Background(), job); err != nil {
		s.logger.Error("failed to store completed job",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("✅ Analysis completed",
		zap.String("job_id", job.ID.String()),
		zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
		zap.Float64("fluency", job.Scores.Fluency),
		zap.Float64("vocabulary", job.Scores.Vocabulary),
		zap.Float64("grammar", job.Scores.Grammar),
		zap.Float64("relevancy", job.Scores.Relevancy),
	)
}

func (s *analysisService) degradedScorers() []string {
	var degraded []string
	if s.grammar.Degraded() {
		degraded = append(degraded, "grammar")
	}
	if s.relevancy.Degraded() {
		degraded = append(degraded, "relevancy")
	}
	return degraded
}

func (s *analysisService) failJob(ctx context.Context, job *entities.AnalysisJob, reason string) {
	job.MarkAsFailed(reason)
	if err := s.store.Update(ctx, job); err != nil {
		s.logger.Error("failed to store failed job",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}
}

// round2 rounds to two decimals at the orchestration boundary; scorers
// themselves return full-precision values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
