package meeting

import (
	"context"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

// TranscriptSource is the transcription provider the orchestrator fetches
// finished transcripts from (Fireflies in production).
type TranscriptSource interface {
	FetchTranscript(ctx context.Context, meetingID string) (*entities.Transcript, error)
}

// TaskTracker is the task-tracking system the pipeline publishes into
// (Asana in production).
type TaskTracker interface {
	FindProjectByName(ctx context.Context, name string) (string, error)
	CreateTaskWithAttachment(ctx context.Context, projectGID, taskName, transcriptText string) (string, error)
	PostComment(ctx context.Context, taskGID, commentHTML string) error
	CreateSubtask(ctx context.Context, parentGID, name, owner, dueOn string) error
}

// Pipeline is the multi-pass analysis the orchestrator runs over a fetched
// transcript. Satisfied by analysis.Service.
type Pipeline interface {
	Classify(ctx context.Context, transcript string) entities.Classification
	Clean(ctx context.Context, rawText string) string
	Extract(ctx context.Context, cleanedTranscript string) *entities.StructuredRecord
}
