package analysis

// Scores holds the four sub-scores of a completed analysis
type Scores struct {
	Fluency    float64 `json:"fluency"`
	Vocabulary float64 `json:"vocabulary"`
	Grammar    float64 `json:"grammar"`
	Relevancy  float64 `json:"relevancy"`
}

// SubmitAudioResponse acknowledges an accepted submission
type SubmitAudioResponse struct {
	Message       string `json:"message"`
	UniqueID      string `json:"unique_id"`
	Transcription string `json:"transcription"`
}

// ResultResponse is the polling response. Scores is set only once the job
// completes; Transcription only while it is still in flight.
type ResultResponse struct {
	Message       string  `json:"message"`
	UniqueID      string  `json:"unique_id"`
	Status        string  `json:"status,omitempty"`
	Scores        *Scores `json:"scores,omitempty"`
	Transcription string  `json:"transcription,omitempty"`
	Error         string  `json:"error,omitempty"`
}
