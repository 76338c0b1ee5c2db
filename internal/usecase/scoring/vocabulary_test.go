package scoring

import (
	"strings"
	"testing"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

func newVocabScorer(t *testing.T) *VocabularyScorer {
	t.Helper()
	scorer, err := NewVocabularyScorer(nil)
	if err != nil {
		t.Fatalf("failed to build vocabulary scorer: %v", err)
	}
	return scorer
}

func TestVocabularyScore_EmptyText(t *testing.T) {
	scorer := newVocabScorer(t)

	// No tokens: diversity contributes 0, readability degenerates to the fog
	// floor, matching the reference behavior of (0 + 50) / 2 / 10.
	got := scorer.Score(&entities.Transcript{Text: ""})
	if !almostEqual(got, 2.5) {
		t.Errorf("empty text score = %f, want 2.5", got)
	}
}

func TestVocabularyScore_StopwordsOnly(t *testing.T) {
	scorer := newVocabScorer(t)

	// All tokens are stopwords: the diversity corpus is empty and must not
	// panic or propagate an error.
	got := scorer.Score(&entities.Transcript{Text: "the and of in a the it"})
	if got < LowerBound || got > UpperBound {
		t.Errorf("score out of bounds: %f", got)
	}
}

func TestVocabularyScore_Bounds(t *testing.T) {
	scorer := newVocabScorer(t)

	texts := []string{
		"cat cat cat cat cat cat cat cat",
		"I visited the botanical gardens yesterday and photographed several rare orchids.",
		strings.Repeat("the governance framework requires deliberate consensus among stakeholders. ", 6),
	}
	for _, text := range texts {
		got := scorer.Score(&entities.Transcript{Text: text})
		if got < LowerBound || got > UpperBound {
			t.Errorf("score out of bounds for %q: %f", text, got)
		}
	}
}

func TestVocabularyScore_RicherTextScoresHigher(t *testing.T) {
	scorer := newVocabScorer(t)

	repetitive := &entities.Transcript{
		Text: strings.Repeat("nice day ", 30),
	}
	rich := &entities.Transcript{
		Text: "My journey began at dawn. We crossed misty valleys, climbed granite ridges, " +
			"and rested beside quiet alpine lakes. Local guides shared folklore about the " +
			"mountain spirits. The descent revealed orchards, vineyards, and small villages.",
	}

	if scorer.Score(rich) <= scorer.Score(repetitive) {
		t.Errorf("richer text should score higher: rich=%f repetitive=%f",
			scorer.Score(rich), scorer.Score(repetitive))
	}
}

func TestIsAlphabetic(t *testing.T) {
	if !isAlphabetic("hello") {
		t.Errorf("expected hello to be alphabetic")
	}
	for _, tok := range []string{"", "it's", "123", "co-op", "."} {
		if isAlphabetic(tok) {
			t.Errorf("expected %q to be non-alphabetic", tok)
		}
	}
}
