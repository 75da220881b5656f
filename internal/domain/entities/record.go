package entities

import "strings"

// ActionItem is a task assignment extracted from the meeting
type ActionItem struct {
	Owner   string `json:"owner"`
	Task    string `json:"task"`
	DueDate string `json:"due_date"` // YYYY-MM-DD or empty
}

// StructuredRecord represents the structured output of the extraction pass:
// decisions, action items and open questions pulled from one meeting.
// Created per webhook invocation, never persisted.
type StructuredRecord struct {
	ClientName          string       `json:"client_name"`
	KeyDecisions        []string     `json:"key_decisions"`
	ActionItems         []ActionItem `json:"action_items"`
	UnansweredQuestions []string     `json:"unanswered_questions"`
	EmptyData           bool         `json:"empty_data"`

	// Err carries the extraction failure that produced a forced-empty
	// record; informational only, never serialized.
	Err error `json:"-"`
}

// NewEmptyRecord returns a record flagged as containing no extractable data
func NewEmptyRecord(err error) *StructuredRecord {
	r := &StructuredRecord{EmptyData: true, Err: err}
	r.Normalize()
	return r
}

// Normalize backfills nil slices and recomputes the EmptyData flag.
//
// The recomputation is authoritative: the flag the extraction model
// returned is advisory only, since the model cannot be trusted to apply
// the emptiness rule consistently. EmptyData is true iff all three lists
// are empty and no real client name was resolved.
func (r *StructuredRecord) Normalize() {
	if r.KeyDecisions == nil {
		r.KeyDecisions = make([]string, 0)
	}
	if r.ActionItems == nil {
		r.ActionItems = make([]ActionItem, 0)
	}
	if r.UnansweredQuestions == nil {
		r.UnansweredQuestions = make([]string, 0)
	}
	if r.ClientName == "" {
		r.ClientName = "Unknown"
	}

	r.EmptyData = len(r.KeyDecisions) == 0 &&
		len(r.ActionItems) == 0 &&
		len(r.UnansweredQuestions) == 0 &&
		isUnresolvedClient(r.ClientName)
}

func isUnresolvedClient(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UNKNOWN", "N/A":
		return true
	}
	return false
}
