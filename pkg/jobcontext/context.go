package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyInvocationID KeyContext = "invocation_id"
	keyMeetingID    KeyContext = "meeting_id"
	keyStartTime    KeyContext = "start_time"
)

// invocationTimeout bounds one webhook invocation end to end, covering
// every external call it makes
const invocationTimeout = 5 * time.Minute

// InvocationMetadata holds metadata for one webhook invocation
type InvocationMetadata struct {
	InvocationID uuid.UUID
	MeetingID    string
	StartTime    time.Time
}

// InvocationBegin initializes an invocation context with metadata and a
// bounded timeout so a stalled external call cannot hang the worker
func InvocationBegin(parentCtx context.Context, meetingID string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, invocationTimeout)

	ctx = context.WithValue(ctx, keyInvocationID, uuid.New())
	ctx = context.WithValue(ctx, keyMeetingID, meetingID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// GetInvocationID extracts the invocation ID from context
func GetInvocationID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyInvocationID).(uuid.UUID)
	return id, ok
}

// GetMeetingID extracts the meeting ID from context
func GetMeetingID(ctx context.Context) (string, bool) {
	meetingID, ok := ctx.Value(keyMeetingID).(string)
	return meetingID, ok
}

// GetStartTime extracts the invocation start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetInvocationMetadata extracts all invocation metadata from context
func GetInvocationMetadata(ctx context.Context) *InvocationMetadata {
	id, _ := GetInvocationID(ctx)
	meetingID, _ := GetMeetingID(ctx)
	startTime, _ := GetStartTime(ctx)

	return &InvocationMetadata{
		InvocationID: id,
		MeetingID:    meetingID,
		StartTime:    startTime,
	}
}
