package scoring

import (
	"testing"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// evenWords builds n abutting words of equal duration spanning total seconds
func evenWords(tokens []string, total float64) []entities.WordTiming {
	step := total / float64(len(tokens))
	words := make([]entities.WordTiming, len(tokens))
	for i, tok := range tokens {
		words[i] = entities.WordTiming{
			Word:  tok,
			Start: float64(i) * step,
			End:   float64(i+1) * step,
		}
	}
	return words
}

func TestFluencyScore_OptimalRateNoHesitations(t *testing.T) {
	// 4 words over 2 seconds: 120 WPM, squarely in the optimal band.
	tr := &entities.Transcript{
		Text:  "the quick brown fox",
		Words: evenWords([]string{"the", "quick", "brown", "fox"}, 2.0),
	}

	scorer := NewFluencyScorer()

	m := scorer.Metrics(tr)
	if got, want := m.SpeechRateWPM, 120.0; !almostEqual(got, want) {
		t.Fatalf("speech rate = %f, want %f", got, want)
	}
	if m.HesitationCount != 0 {
		t.Fatalf("expected no hesitations, got %d", m.HesitationCount)
	}
	if m.FilledPausePercentage != 0 {
		t.Fatalf("expected no filled pauses, got %f%%", m.FilledPausePercentage)
	}

	// Rate 30 + pause 20 + filled 20, no consistency bonus (articulation
	// equals speech rate with zero pause time): raw 70 -> 7.0.
	if got, want := scorer.Score(tr), 7.0; !almostEqual(got, want) {
		t.Errorf("score = %f, want %f", got, want)
	}
}

func TestFluencyScore_MonotonicInHesitations(t *testing.T) {
	scorer := NewFluencyScorer()

	// Same word count and full duration; variant B opens a 0.3s hesitation gap.
	fluent := &entities.Transcript{
		Text:  "we should plan it",
		Words: evenWords([]string{"we", "should", "plan", "it"}, 2.0),
	}
	hesitant := &entities.Transcript{
		Text: "we should plan it",
		Words: []entities.WordTiming{
			{Word: "we", Start: 0.0, End: 0.4},
			{Word: "should", Start: 0.7, End: 1.0},
			{Word: "plan", Start: 1.0, End: 1.5},
			{Word: "it", Start: 1.5, End: 2.0},
		},
	}

	a, b := scorer.Score(fluent), scorer.Score(hesitant)
	if b >= a {
		t.Errorf("hesitation should not raise the score: fluent=%f hesitant=%f", a, b)
	}
	if a < LowerBound || a > UpperBound || b < LowerBound || b > UpperBound {
		t.Errorf("scores out of bounds: %f, %f", a, b)
	}
}

func TestFluencyScore_FilledPausesPenalized(t *testing.T) {
	scorer := NewFluencyScorer()

	clean := &entities.Transcript{
		Text:  "we went there yesterday",
		Words: evenWords([]string{"we", "went", "there", "yesterday"}, 2.0),
	}
	filled := &entities.Transcript{
		Text:  "um we went um there",
		Words: evenWords([]string{"um", "we", "went", "um", "there"}, 2.5),
	}

	if scorer.Score(filled) >= scorer.Score(clean) {
		t.Errorf("filled pauses should lower the score: clean=%f filled=%f",
			scorer.Score(clean), scorer.Score(filled))
	}
}

func TestFluencyScore_DegenerateTranscripts(t *testing.T) {
	scorer := NewFluencyScorer()

	empty := &entities.Transcript{Text: ""}
	if got := scorer.Score(empty); got != 0 {
		t.Errorf("empty transcript score = %f, want 0", got)
	}

	single := &entities.Transcript{
		Text:  "hello",
		Words: []entities.WordTiming{{Word: "hello", Start: 0, End: 0.5}},
	}
	got := scorer.Score(single)
	if got < LowerBound || got > UpperBound {
		t.Errorf("singleton transcript score out of bounds: %f", got)
	}

	// Zero-duration timings must not divide by zero
	zero := &entities.Transcript{
		Text:  "hi",
		Words: []entities.WordTiming{{Word: "hi", Start: 1.0, End: 1.0}},
	}
	got = scorer.Score(zero)
	if got < LowerBound || got > UpperBound {
		t.Errorf("zero-duration transcript score out of bounds: %f", got)
	}
}

func TestFluencyScore_Bounds(t *testing.T) {
	scorer := NewFluencyScorer()

	// Pathologically slow speech with long hesitations everywhere
	words := []entities.WordTiming{
		{Word: "so", Start: 0, End: 1},
		{Word: "um", Start: 5, End: 6},
		{Word: "well", Start: 12, End: 13},
		{Word: "yes", Start: 20, End: 21},
	}
	tr := &entities.Transcript{Text: "so um well yes", Words: words}
	got := scorer.Score(tr)
	if got < LowerBound || got > UpperBound {
		t.Errorf("score out of bounds: %f", got)
	}
}
