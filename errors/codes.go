package errors

// ErrorCode identifies an application error category. Codes are stable and
// returned to clients in error responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Jobs
	ErrorCode_JOB_NOT_FOUND     ErrorCode = 2000
	ErrorCode_JOB_INVALID_STATE ErrorCode = 2001
	ErrorCode_JOB_STORE_FAILED  ErrorCode = 2002

	// Analysis
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_SCORER_DEGRADED      ErrorCode = 3001
	ErrorCode_COMPUTATION_FAILED   ErrorCode = 3002
	ErrorCode_MISSING_AUDIO_FILE   ErrorCode = 3003
	ErrorCode_MISSING_TOPIC        ErrorCode = 3004

	// Integrations
	ErrorCode_STORAGE_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "HTTP_OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_JOB_NOT_FOUND:        "JOB_NOT_FOUND",
	ErrorCode_JOB_INVALID_STATE:    "JOB_INVALID_STATE",
	ErrorCode_JOB_STORE_FAILED:     "JOB_STORE_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED: "TRANSCRIPTION_FAILED",
	ErrorCode_SCORER_DEGRADED:      "SCORER_DEGRADED",
	ErrorCode_COMPUTATION_FAILED:   "COMPUTATION_FAILED",
	ErrorCode_MISSING_AUDIO_FILE:   "MISSING_AUDIO_FILE",
	ErrorCode_MISSING_TOPIC:        "MISSING_TOPIC",
	ErrorCode_STORAGE_FAILED:       "STORAGE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
