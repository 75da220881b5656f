package entities

// Transcript is the raw meeting transcript fetched from the transcription
// provider. Immutable once fetched; the pipeline only reads it.
type Transcript struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}
