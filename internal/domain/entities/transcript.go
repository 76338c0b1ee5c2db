package entities

// WordTiming represents a single transcribed word with its time boundaries in
// seconds. Words are ordered by start time ascending.
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Transcript is the transcription output consumed by the scorers
type Transcript struct {
	Text  string       `json:"text"`
	Words []WordTiming `json:"words,omitempty"`
}

// Duration returns the full time scale of the transcript: the span from the
// first word's start to the last word's end. Zero for empty transcripts.
func (t *Transcript) Duration() float64 {
	if len(t.Words) == 0 {
		return 0
	}
	return t.Words[len(t.Words)-1].End - t.Words[0].Start
}

// WordCount returns the number of timed words
func (t *Transcript) WordCount() int {
	return len(t.Words)
}
