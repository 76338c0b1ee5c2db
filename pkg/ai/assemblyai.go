package ai

import (
	"context"
	"fmt"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
	"github.com/speakwise-team/speakwise/pkg/config"
)

// AssemblyAIClient wraps the official SDK and maps its transcript shape onto
// the domain model. Word timings come back in milliseconds and are converted
// to seconds here.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
func NewAssemblyAIClient(cfg *config.AssemblyConfig) *AssemblyAIClient {
	return &AssemblyAIClient{
		client: aai.NewClient(cfg.APIKey),
	}
}

// Transcribe uploads the audio and blocks until AssemblyAI finishes.
// Punctuation is kept on the word tokens; pause classification depends on it.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (*entities.Transcript, error) {
	params := &aai.TranscriptOptionalParams{
		Punctuate:  aai.Bool(true),
		FormatText: aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status != aai.TranscriptStatusCompleted {
		reason := "unknown"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcript status %s: %s", transcript.Status, reason)
	}

	result := &entities.Transcript{}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	result.Words = make([]entities.WordTiming, 0, len(transcript.Words))
	for _, w := range transcript.Words {
		if w.Text == nil || w.Start == nil || w.End == nil {
			continue
		}
		result.Words = append(result.Words, entities.WordTiming{
			Word:  *w.Text,
			Start: float64(*w.Start) / 1000.0,
			End:   float64(*w.End) / 1000.0,
		})
	}
	return result, nil
}
