package meeting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-brief/errors"
	"github.com/haiminhdev/meeting-brief/internal/usecase/analysis"
	"github.com/haiminhdev/meeting-brief/pkg/jobcontext"
)

// Webhook event the orchestrator consumes
const EventMeetingCompleted = "meeting.completed"

// Invocation status values returned to the webhook caller
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
)

// WebhookEvent is the parsed transcription-provider notification
type WebhookEvent struct {
	MeetingID string
	EventType string
}

// Result is the outcome of one webhook invocation
type Result struct {
	Status  string
	Message string
	TaskGID string
}

// Service defines the per-meeting orchestration
type Service interface {
	ProcessWebhook(ctx context.Context, event WebhookEvent) (*Result, error)
}

type meetingService struct {
	source   TranscriptSource
	tracker  TaskTracker
	pipeline Pipeline
	router   ProjectRouter
	logger   *zap.Logger
}

// NewService constructs the meeting orchestrator
func NewService(
	source TranscriptSource,
	tracker TaskTracker,
	pipeline Pipeline,
	router ProjectRouter,
	logger *zap.Logger,
) Service {
	return &meetingService{
		source:   source,
		tracker:  tracker,
		pipeline: pipeline,
		router:   router,
		logger:   logger,
	}
}

// ProcessWebhook runs the full workflow for one transcription notification:
// fetch transcript, create the tracker task with the raw transcript
// attached, run the analysis pipeline, post the brief as a comment and
// create one sub-task per action item. Transcript fetch and task creation
// failures are fatal; everything after the task exists degrades to logs.
func (s *meetingService) ProcessWebhook(parentCtx context.Context, event WebhookEvent) (*Result, error) {
	if event.MeetingID == "" {
		return nil, errors.ErrMissingMeetingID()
	}

	if event.EventType != "" && event.EventType != EventMeetingCompleted {
		if s.logger != nil {
			s.logger.Info("skipping unhandled event type",
				zap.String("event_type", event.EventType),
				zap.String("meeting_id", event.MeetingID),
			)
		}
		return &Result{
			Status:  StatusSkipped,
			Message: fmt.Sprintf("Event type '%s' not processed", event.EventType),
		}, nil
	}

	ctx, cancel := jobcontext.InvocationBegin(parentCtx, event.MeetingID)
	defer cancel()

	if s.logger != nil {
		meta := jobcontext.GetInvocationMetadata(ctx)
		s.logger.Info("processing meeting",
			zap.String("invocation_id", meta.InvocationID.String()),
			zap.String("meeting_id", event.MeetingID),
		)
	}

	// Step 1: fetch the transcript from the transcription provider
	transcript, err := s.source.FetchTranscript(ctx, event.MeetingID)
	if err != nil || transcript == nil || transcript.Text == "" {
		if err == nil {
			err = fmt.Errorf("empty transcript")
		}
		if s.logger != nil {
			s.logger.Error("failed to fetch transcript",
				zap.String("meeting_id", event.MeetingID),
				zap.Error(err),
			)
		}
		return nil, errors.ErrTranscriptFetchFailed(event.MeetingID, err)
	}

	// Step 2: resolve the destination project
	projectGID := s.router.Route(ctx, transcript)

	// Step 3: create the placeholder task and attach the raw transcript
	taskName := fmt.Sprintf("Meeting Summary: %s", transcript.Title)
	taskGID, err := s.tracker.CreateTaskWithAttachment(ctx, projectGID, taskName, transcript.Text)
	if err != nil || taskGID == "" {
		if err == nil {
			err = fmt.Errorf("empty task gid")
		}
		if s.logger != nil {
			s.logger.Error("failed to create tracker task", zap.Error(err))
		}
		return nil, errors.ErrTrackerTaskFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("created tracker task with transcript attachment",
			zap.String("task_gid", taskGID),
			zap.String("project_gid", projectGID),
		)
	}

	// Step 4: analysis pipeline — clean, then extract
	cleaned := s.pipeline.Clean(ctx, transcript.Text)
	record := s.pipeline.Extract(ctx, cleaned)

	// Step 5: decide which branch of output to publish. An invalid or
	// empty record is replaced by the generic no-data brief and produces
	// no sub-tasks.
	if record == nil || record.EmptyData {
		if s.logger != nil {
			s.logger.Info("no extractable data, publishing generic brief",
				zap.String("meeting_id", event.MeetingID),
			)
		}
		record = nil
	}

	// Step 6: render the brief and post it as a comment. The task and
	// attachment already exist, so a comment failure is non-fatal.
	brief := analysis.RenderBrief(record)
	if err := s.tracker.PostComment(ctx, taskGID, brief); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to post brief comment",
				zap.String("task_gid", taskGID),
				zap.Error(err),
			)
		}
	}

	// Step 7: create one sub-task per action item
	if record != nil && len(record.ActionItems) > 0 {
		if s.logger != nil {
			s.logger.Info("creating sub-tasks", zap.Int("count", len(record.ActionItems)))
		}
		for _, item := range record.ActionItems {
			if item.Task == "" {
				if s.logger != nil {
					s.logger.Warn("skipping sub-task with missing task name",
						zap.String("owner", item.Owner),
					)
				}
				continue
			}
			if err := s.tracker.CreateSubtask(ctx, taskGID, item.Task, item.Owner, item.DueDate); err != nil {
				// Each sub-task failure is independent
				if s.logger != nil {
					s.logger.Error("failed to create sub-task",
						zap.String("task", item.Task),
						zap.Error(err),
					)
				}
				continue
			}
			if s.logger != nil {
				s.logger.Info("created sub-task", zap.String("task", item.Task))
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("workflow completed",
			zap.String("meeting_id", event.MeetingID),
			zap.String("task_gid", taskGID),
		)
	}

	return &Result{
		Status:  StatusSuccess,
		Message: "Workflow completed",
		TaskGID: taskGID,
	}, nil
}
