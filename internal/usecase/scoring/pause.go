package scoring

import (
	"strings"

	"github.com/speakwise-team/speakwise/internal/domain/entities"
)

// MinPauseDuration is the silence threshold in seconds above which an
// inter-word gap counts as a real pause.
const MinPauseDuration = 0.2

// linguisticMarks are the punctuation characters that, when present in the
// word token preceding a gap, classify the pause as linguistic rather than a
// hesitation. Word tokens only carry punctuation when the transcription
// service emits punctuated words (punctuate on), so with bare ASR tokens
// every valid pause resolves to a hesitation.
const linguisticMarks = ".?!,;:-"

// PauseRecord describes the gap following one word
type PauseRecord struct {
	Word         string
	Pause        float64 // gap to the next word's start, 0 for the last word
	WordDuration float64
	Valid        bool // Pause > MinPauseDuration
	Linguistic   bool
	Hesitation   bool
}

// AnalyzePauses derives one PauseRecord per word from ordered word timings.
// Exactly one of Linguistic/Hesitation is set when Valid, neither otherwise.
func AnalyzePauses(words []entities.WordTiming) []PauseRecord {
	records := make([]PauseRecord, 0, len(words))
	for i, w := range words {
		rec := PauseRecord{
			Word:         w.Word,
			WordDuration: w.End - w.Start,
		}
		if i < len(words)-1 {
			rec.Pause = words[i+1].Start - w.End
		}
		if rec.Pause > MinPauseDuration {
			rec.Valid = true
			if strings.ContainsAny(w.Word, linguisticMarks) {
				rec.Linguistic = true
			} else {
				rec.Hesitation = true
			}
		}
		records = append(records, rec)
	}
	return records
}

// PauseStats aggregates pause records for rate calculations
type PauseStats struct {
	TotalPauseTime      float64
	PauseCount          int
	LinguisticCount     int
	HesitationCount     int
	LinguisticDuration  float64
	HesitationDuration  float64
	AvgHesitationLength float64
}

// SummarizePauses collapses pause records into aggregate statistics
func SummarizePauses(records []PauseRecord) PauseStats {
	var s PauseStats
	for _, rec := range records {
		if !rec.Valid {
			continue
		}
		s.TotalPauseTime += rec.Pause
		s.PauseCount++
		if rec.Linguistic {
			s.LinguisticCount++
			s.LinguisticDuration += rec.Pause
		} else {
			s.HesitationCount++
			s.HesitationDuration += rec.Pause
		}
	}
	if s.HesitationCount > 0 {
		s.AvgHesitationLength = s.HesitationDuration / float64(s.HesitationCount)
	}
	return s
}
