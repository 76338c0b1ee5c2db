package scoring

import (
	"strings"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// filledPausePhrases are verbal disfluencies counted as literal substring
// occurrences in the raw transcript text.
var filledPausePhrases = []string{"um", "uh", "ah", "err", "hmm", "like", "you know", "i mean", "so"}

// FluencyScorer converts pause and rate statistics into a 0-10 score
type FluencyScorer struct{}

// NewFluencyScorer creates a fluency scorer
func NewFluencyScorer() *FluencyScorer {
	return &FluencyScorer{}
}

// FluencyMetrics are the derived rate/pause metrics behind the score
type FluencyMetrics struct {
	SpeechRateWPM         float64
	ArticulationRateWPM   float64
	SpeakingTime          float64
	HesitationsPerMinute  float64
	AvgHesitationDuration float64
	FilledPausePercentage float64
	HesitationCount       int
}

// Metrics computes the derived fluency metrics for a transcript. Every
// division is guarded; degenerate transcripts yield zero rates instead of
// errors.
func (s *FluencyScorer) Metrics(t *entities.Transcript) FluencyMetrics {
	var m FluencyMetrics
	wordCount := float64(t.WordCount())
	if wordCount == 0 {
		return m
	}

	stats := SummarizePauses(AnalyzePauses(t.Words))
	full := t.Duration()

	m.HesitationCount = stats.HesitationCount
	m.AvgHesitationDuration = stats.AvgHesitationLength
	m.SpeakingTime = full - stats.TotalPauseTime

	if full > 0 {
		m.SpeechRateWPM = wordCount / full * 60
		m.HesitationsPerMinute = float64(stats.HesitationCount) / full * 60
	}
	if m.SpeakingTime > 0 {
		m.ArticulationRateWPM = wordCount / m.SpeakingTime * 60
	}

	filled := 0
	for _, phrase := range filledPausePhrases {
		filled += strings.Count(t.Text, phrase)
	}
	m.FilledPausePercentage = float64(filled) / wordCount * 100

	return m
}

// Score computes the fluency score from a transcript.
//
// Four additive components sum to a raw maximum of 80; dividing by 10
// deliberately compresses the raw range to roughly 0-8 before clamping. That
// calibration is intentional, carried over from tuning on real samples.
func (s *FluencyScorer) Score(t *entities.Transcript) float64 {
	if t.WordCount() == 0 {
		return 0
	}

	m := s.Metrics(t)
	raw := 0.0

	// Speech rate component (target 120-150 WPM)
	switch {
	case m.SpeechRateWPM >= 110 && m.SpeechRateWPM <= 160:
		raw += 30
	case m.SpeechRateWPM >= 90 && m.SpeechRateWPM <= 180:
		raw += 15
	default:
		raw += 5
	}

	// Pause component: fewer and shorter hesitation pauses are better
	if m.HesitationCount == 0 {
		raw += 20
	} else {
		raw += max(0, 20-m.HesitationsPerMinute*2.5-m.AvgHesitationDuration*10)
	}

	// Filled pause component
	raw += max(0, 20-m.FilledPausePercentage*3)

	// Consistency: articulation rate moderately above speech rate suggests
	// efficient speaking between pauses
	if m.ArticulationRateWPM > m.SpeechRateWPM*1.05 && m.ArticulationRateWPM < m.SpeechRateWPM*1.5 {
		raw += 10
	}

	return clamp(raw/10, LowerBound, UpperBound)
}
