package meeting

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/haiminhdev/meeting-brief/errors"
	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

type fakeSource struct {
	transcript *entities.Transcript
	err        error
	calls      int
}

func (f *fakeSource) FetchTranscript(ctx context.Context, meetingID string) (*entities.Transcript, error) {
	f.calls++
	return f.transcript, f.err
}

type createdSubtask struct {
	parentGID string
	name      string
	owner     string
	dueOn     string
}

type fakeTracker struct {
	taskGID    string
	taskErr    error
	commentErr error
	subtaskErr error

	createCalls  int
	taskName     string
	projectGID   string
	attachedText string
	comments     []string
	subtasks     []createdSubtask
}

func (f *fakeTracker) FindProjectByName(ctx context.Context, name string) (string, error) {
	return "", nil
}

func (f *fakeTracker) CreateTaskWithAttachment(ctx context.Context, projectGID, taskName, transcriptText string) (string, error) {
	f.createCalls++
	f.projectGID = projectGID
	f.taskName = taskName
	f.attachedText = transcriptText
	return f.taskGID, f.taskErr
}

func (f *fakeTracker) PostComment(ctx context.Context, taskGID, commentHTML string) error {
	f.comments = append(f.comments, commentHTML)
	return f.commentErr
}

func (f *fakeTracker) CreateSubtask(ctx context.Context, parentGID, name, owner, dueOn string) error {
	if f.subtaskErr != nil {
		return f.subtaskErr
	}
	f.subtasks = append(f.subtasks, createdSubtask{parentGID, name, owner, dueOn})
	return nil
}

type fakePipeline struct {
	classification entities.Classification
	cleaned        string
	record         *entities.StructuredRecord
}

func (f *fakePipeline) Classify(ctx context.Context, transcript string) entities.Classification {
	return f.classification
}

func (f *fakePipeline) Clean(ctx context.Context, rawText string) string {
	if f.cleaned != "" {
		return f.cleaned
	}
	return rawText
}

func (f *fakePipeline) Extract(ctx context.Context, cleanedTranscript string) *entities.StructuredRecord {
	return f.record
}

func newTestService(source *fakeSource, tracker *fakeTracker, pipeline *fakePipeline) Service {
	return NewService(source, tracker, pipeline, FixedProjectRouter{ProjectGID: "proj-default"}, nil)
}

func TestProcessWebhook_FullWorkflow(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{
		Title: "Q3 Planning",
		Text:  "Alice: We decided to launch on June 1. Bob: Who owns QA?",
	}}
	tracker := &fakeTracker{taskGID: "task-123"}
	record := &entities.StructuredRecord{
		ClientName:   "Acme Corp",
		KeyDecisions: []string{"Launch on June 1"},
		ActionItems: []entities.ActionItem{
			{Owner: "Sam", Task: "Send proposal", DueDate: "2025-08-01"},
		},
		UnansweredQuestions: []string{"Who owns QA?"},
	}
	record.Normalize()
	pipeline := &fakePipeline{record: record}

	svc := newTestService(source, tracker, pipeline)
	result, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123", EventType: EventMeetingCompleted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != StatusSuccess || result.TaskGID != "task-123" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if tracker.taskName != "Meeting Summary: Q3 Planning" {
		t.Fatalf("unexpected task name: %q", tracker.taskName)
	}
	if tracker.projectGID != "proj-default" {
		t.Fatalf("unexpected project: %q", tracker.projectGID)
	}
	if tracker.attachedText != source.transcript.Text {
		t.Fatalf("raw transcript must be attached, got %q", tracker.attachedText)
	}
	if len(tracker.comments) != 1 || !strings.Contains(tracker.comments[0], "Project Brief: Acme Corp") {
		t.Fatalf("unexpected comments: %v", tracker.comments)
	}
	if len(tracker.subtasks) != 1 {
		t.Fatalf("expected 1 sub-task, got %d", len(tracker.subtasks))
	}
	st := tracker.subtasks[0]
	if st.parentGID != "task-123" || st.name != "Send proposal" || st.owner != "Sam" || st.dueOn != "2025-08-01" {
		t.Fatalf("unexpected sub-task: %+v", st)
	}
}

func TestProcessWebhook_MissingMeetingID(t *testing.T) {
	source := &fakeSource{}
	tracker := &fakeTracker{}
	svc := newTestService(source, tracker, &fakePipeline{})

	_, err := svc.ProcessWebhook(context.Background(), WebhookEvent{})
	if err == nil {
		t.Fatalf("expected error for missing meeting id")
	}
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 400 {
		t.Fatalf("expected 400, got %d", appErr.HTTPCode)
	}
	if source.calls != 0 {
		t.Fatalf("must not touch the transcript source")
	}
}

func TestProcessWebhook_SkipsOtherEventTypes(t *testing.T) {
	source := &fakeSource{}
	tracker := &fakeTracker{}
	svc := newTestService(source, tracker, &fakePipeline{})

	result, err := svc.ProcessWebhook(context.Background(), WebhookEvent{
		MeetingID: "abc123",
		EventType: "meeting.deleted",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusSkipped {
		t.Fatalf("expected skipped status, got %q", result.Status)
	}
	if source.calls != 0 || tracker.createCalls != 0 {
		t.Fatalf("skipped events must not reach collaborators")
	}
}

func TestProcessWebhook_TranscriptFetchFailureIsFatal(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("provider down")}
	tracker := &fakeTracker{}
	svc := newTestService(source, tracker, &fakePipeline{})

	_, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"})
	if err == nil {
		t.Fatalf("expected fatal error")
	}
	if tracker.createCalls != 0 {
		t.Fatalf("must not create a task without a transcript")
	}
}

func TestProcessWebhook_EmptyTranscriptIsFatal(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "Empty", Text: ""}}
	tracker := &fakeTracker{}
	svc := newTestService(source, tracker, &fakePipeline{})

	if _, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"}); err == nil {
		t.Fatalf("expected fatal error for empty transcript")
	}
}

func TestProcessWebhook_TaskCreationFailureIsFatal(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskErr: fmt.Errorf("forbidden")}
	svc := newTestService(source, tracker, &fakePipeline{})

	_, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"})
	if err == nil {
		t.Fatalf("expected fatal error")
	}
	if len(tracker.comments) != 0 || len(tracker.subtasks) != 0 {
		t.Fatalf("must not publish anything without a task")
	}
}

func TestProcessWebhook_EmptyRecordPublishesGenericBrief(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskGID: "task-123"}
	pipeline := &fakePipeline{record: entities.NewEmptyRecord(nil)}
	svc := newTestService(source, tracker, pipeline)

	result, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Fatalf("empty record still completes the workflow, got %q", result.Status)
	}
	if len(tracker.comments) != 1 || !strings.Contains(tracker.comments[0], "Meeting Summary") {
		t.Fatalf("expected generic no-data brief, got %v", tracker.comments)
	}
	if len(tracker.subtasks) != 0 {
		t.Fatalf("empty record must not create sub-tasks")
	}
}

func TestProcessWebhook_NilRecordPublishesGenericBrief(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskGID: "task-123"}
	svc := newTestService(source, tracker, &fakePipeline{record: nil})

	if _, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracker.comments) != 1 || !strings.Contains(tracker.comments[0], "Meeting Summary") {
		t.Fatalf("expected generic no-data brief, got %v", tracker.comments)
	}
}

func TestProcessWebhook_CommentFailureIsNonFatal(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskGID: "task-123", commentErr: fmt.Errorf("stories endpoint down")}
	record := &entities.StructuredRecord{
		ActionItems: []entities.ActionItem{{Task: "Send proposal", Owner: "Sam"}},
	}
	record.Normalize()
	svc := newTestService(source, tracker, &fakePipeline{record: record})

	result, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"})
	if err != nil {
		t.Fatalf("comment failure must not fail the workflow: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Fatalf("unexpected status: %q", result.Status)
	}
	if len(tracker.subtasks) != 1 {
		t.Fatalf("sub-tasks must still be created after a comment failure")
	}
}

func TestProcessWebhook_SkipsSubtasksWithoutTaskName(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskGID: "task-123"}
	record := &entities.StructuredRecord{
		ActionItems: []entities.ActionItem{
			{Owner: "Sam"},
			{Task: "Send proposal", Owner: "Sam", DueDate: "2025-08-01"},
		},
	}
	record.Normalize()
	svc := newTestService(source, tracker, &fakePipeline{record: record})

	if _, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracker.subtasks) != 1 || tracker.subtasks[0].name != "Send proposal" {
		t.Fatalf("expected only the named action item as sub-task, got %+v", tracker.subtasks)
	}
}

func TestProcessWebhook_SubtaskFailuresAreIndependent(t *testing.T) {
	source := &fakeSource{transcript: &entities.Transcript{Title: "T", Text: "hello"}}
	tracker := &fakeTracker{taskGID: "task-123", subtaskErr: fmt.Errorf("quota exceeded")}
	record := &entities.StructuredRecord{
		ActionItems: []entities.ActionItem{
			{Task: "Send proposal"},
			{Task: "Schedule demo"},
		},
	}
	record.Normalize()
	svc := newTestService(source, tracker, &fakePipeline{record: record})

	result, err := svc.ProcessWebhook(context.Background(), WebhookEvent{MeetingID: "abc123"})
	if err != nil {
		t.Fatalf("sub-task failures must not fail the workflow: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Fatalf("unexpected status: %q", result.Status)
	}
}
