package webhook

// FirefliesEvent is the transcription-ready notification payload.
// Fireflies sends the meeting id and an event type; only
// "meeting.completed" (or an absent event type) triggers processing.
type FirefliesEvent struct {
	MeetingID string `json:"id" validate:"required"`
	EventType string `json:"event_type"`
}
