package scoring

import (
	"context"
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

var (
	fillerWordPattern = regexp.MustCompile(`(?i)\b(um|uh|ah|err|hmm|like|you know|i mean)\b`)
	extraSpacePattern = regexp.MustCompile(`\s+`)
)

// RuleMatch is a single issue reported by the grammar-check collaborator
type RuleMatch struct {
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

// GrammarChecker is the rule-based grammar-check collaborator
type GrammarChecker interface {
	Check(ctx context.Context, text string) ([]RuleMatch, error)
}

// Error buckets and penalty weights, keyed by substrings of the rule id
const (
	penaltyGrammar       = 5.0 // agreement, tense, pronoun issues
	penaltyTypographical = 1.0 // spelling and punctuation
	penaltyStyle         = 2.0 // redundancy, clarity, word choice
	penaltyUncategorized = 3.0
)

// GrammarScorer penalizes detected errors by density. A nil or failing
// checker degrades the score to 0 rather than failing the job.
type GrammarScorer struct {
	checker GrammarChecker
	logger  *zap.Logger
}

// NewGrammarScorer creates a grammar scorer. checker may be nil when the
// grammar service is unavailable; the scorer then always reports 0.
func NewGrammarScorer(checker GrammarChecker, logger *zap.Logger) *GrammarScorer {
	return &GrammarScorer{checker: checker, logger: logger}
}

// Degraded reports whether the scorer is running without a checker
func (s *GrammarScorer) Degraded() bool {
	return s.checker == nil
}

// Score computes the grammar score for a transcript. Filler words are
// stripped before counting words so they don't inflate the denominator, but
// the check itself runs on the original text.
func (s *GrammarScorer) Score(ctx context.Context, t *entities.Transcript) float64 {
	if s.checker == nil {
		if s.logger != nil {
			s.logger.Warn("grammar checker not initialized, score degraded to 0")
		}
		return 0
	}

	clean := fillerWordPattern.ReplaceAllString(t.Text, "")
	clean = strings.TrimSpace(extraSpacePattern.ReplaceAllString(clean, " "))
	wordCount := tokenCount(clean)

	matches, err := s.checker.Check(ctx, t.Text)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("grammar check failed, score degraded to 0", zap.Error(err))
		}
		return 0
	}

	if wordCount == 0 {
		// Nothing to get wrong
		return UpperBound
	}

	totalPenalty := 0.0
	for _, m := range matches {
		totalPenalty += penaltyFor(m.RuleID)
	}

	scaledPenalty := totalPenalty / float64(wordCount) * 50
	return clamp(min(10, (100-scaledPenalty)/10), LowerBound, UpperBound)
}

// penaltyFor buckets a rule id by substring match
func penaltyFor(ruleID string) float64 {
	switch {
	case strings.Contains(ruleID, "AGREEMENT"),
		strings.Contains(ruleID, "SVA"),
		strings.Contains(ruleID, "TENSE"),
		strings.Contains(ruleID, "PRONOUN"):
		return penaltyGrammar
	case strings.Contains(ruleID, "COMMA"),
		strings.Contains(ruleID, "PUNCTUATION"),
		strings.Contains(ruleID, "SPELLING"):
		return penaltyTypographical
	case strings.Contains(ruleID, "REDUNDANCY"),
		strings.Contains(ruleID, "CLARITY"),
		strings.Contains(ruleID, "WORD_CHOICE"):
		return penaltyStyle
	default:
		return penaltyUncategorized
	}
}

// tokenCount counts tokens the way the vocabulary pipeline tokenizes,
// punctuation tokens included. Falls back to whitespace fields if the
// tokenizer errors.
func tokenCount(text string) int {
	if text == "" {
		return 0
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return len(strings.Fields(text))
	}
	return len(doc.Tokens())
}
