package analysis

// SubmitAudioRequest carries the form fields of an audio submission. The
// audio file itself travels as the multipart part named audio_file.
type SubmitAudioRequest struct {
	Topic string `form:"topic" validate:"required"`
}
