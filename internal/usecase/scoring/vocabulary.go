package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	prose "github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// VocabularyScorer blends lexical diversity (MTLD + HDD over lemmatized,
// stopword-filtered tokens) with readability (Flesch + Gunning Fog over the
// raw lowercased text) into a 0-10 score.
type VocabularyScorer struct {
	lemmatizer *golem.Lemmatizer
	logger     *zap.Logger
}

// NewVocabularyScorer creates a vocabulary scorer with an English lemmatizer
func NewVocabularyScorer(logger *zap.Logger) (*VocabularyScorer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemmatizer: %w", err)
	}
	return &VocabularyScorer{lemmatizer: lemmatizer, logger: logger}, nil
}

// Score computes the vocabulary score for a transcript
func (s *VocabularyScorer) Score(t *entities.Transcript) float64 {
	text := strings.ToLower(t.Text)

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("vocabulary tokenization failed, diversity and readability default to 0",
				zap.Error(err),
			)
		}
		return 0
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if isAlphabetic(tok.Text) {
			tokens = append(tokens, tok.Text)
		}
	}

	// Stopword test runs on the raw token, lemmatization after; the diversity
	// corpus only sees content words.
	var filtered []string
	for _, tok := range tokens {
		if isStopword(tok) {
			continue
		}
		filtered = append(filtered, s.lemmatizer.Lemma(tok))
	}

	mtld, hdd := s.diversityMetrics(filtered)

	diversity := math.Min(mtld, 50) + math.Min(hdd*10, 50)

	sentences := len(doc.Sentences())
	flesch := FleschReadingEase(tokens, sentences)
	fog := GunningFog(tokens, sentences)
	readability := math.Min(flesch, 50) + max(0, 5*(10-fog))

	return clamp((diversity+readability)/2/10, LowerBound, UpperBound)
}

// diversityMetrics computes MTLD and HDD; on any computational failure both
// default to 0. The fallback is logged so pathological inputs stay visible.
func (s *VocabularyScorer) diversityMetrics(filtered []string) (float64, float64) {
	unique := make(map[string]struct{}, len(filtered))
	for _, tok := range filtered {
		unique[tok] = struct{}{}
	}
	draws := len(unique) / 2
	if draws < 1 {
		draws = 1
	}
	if draws >= len(unique) {
		draws = len(unique) - 1
	}

	mtld, mtldErr := MTLD(filtered)
	hdd, hddErr := HDD(filtered, draws)
	if mtldErr != nil || hddErr != nil {
		if s.logger != nil {
			s.logger.Warn("lexical diversity computation failed, defaulting to 0",
				zap.Int("token_count", len(filtered)),
				zap.Int("unique_count", len(unique)),
				zap.NamedError("mtld_error", mtldErr),
				zap.NamedError("hdd_error", hddErr),
			)
		}
		return 0, 0
	}
	return mtld, hdd
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isStopword reports whether a token is an English stopword. The stopwords
// cleaner returns an empty string for tokens made entirely of stopwords.
func isStopword(token string) bool {
	return strings.TrimSpace(stopwords.CleanString(token, "en", false)) == ""
}
