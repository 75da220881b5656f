package analysis

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"key": "value"}`, `{"key": "value"}`},
		{"json fence", "```json\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"bare fence", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"surrounding whitespace", "  \n{\"key\": \"value\"}\n  ", `{"key": "value"}`},
	}

	for _, tc := range cases {
		if got := extractJSON(tc.input); got != tc.expected {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.expected)
		}
	}
}

func TestParseClassification(t *testing.T) {
	p := NewParser()

	c, err := p.ParseClassification("```json\n{\"meeting_type\": \"external\", \"client_name\": \"Acme Corp\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MeetingType != "external" || c.ClientName != "Acme Corp" {
		t.Fatalf("unexpected classification: %+v", c)
	}
}

func TestParseClassification_InternalForcesNA(t *testing.T) {
	p := NewParser()

	c, err := p.ParseClassification(`{"meeting_type": "internal", "client_name": "Acme Corp"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ClientName != "N/A" {
		t.Fatalf("internal meeting must have client N/A, got %q", c.ClientName)
	}
}

func TestParseClassification_InvalidJSON(t *testing.T) {
	p := NewParser()

	if _, err := p.ParseClassification("not json at all"); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestParseStructuredRecord(t *testing.T) {
	p := NewParser()

	record, coerced, err := p.ParseStructuredRecord(`{
		"client_name": "Acme Corp",
		"key_decisions": ["Launch on June 1"],
		"action_items": [{"owner": "Sam", "task": "Send proposal", "due_date": "2025-08-01"}],
		"unanswered_questions": ["Who owns QA?"]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coerced) != 0 {
		t.Fatalf("expected no coerced fields, got %v", coerced)
	}
	if record.ClientName != "Acme Corp" {
		t.Fatalf("unexpected client name: %q", record.ClientName)
	}
	if len(record.KeyDecisions) != 1 || record.KeyDecisions[0] != "Launch on June 1" {
		t.Fatalf("unexpected key decisions: %v", record.KeyDecisions)
	}
	if len(record.ActionItems) != 1 || record.ActionItems[0].Task != "Send proposal" {
		t.Fatalf("unexpected action items: %v", record.ActionItems)
	}
	if record.EmptyData {
		t.Fatalf("expected EmptyData=false")
	}
}

func TestParseStructuredRecord_CoercesMisShapedFields(t *testing.T) {
	p := NewParser()

	record, coerced, err := p.ParseStructuredRecord(`{
		"client_name": "Acme Corp",
		"key_decisions": ["Launch on June 1"],
		"action_items": "I could not find any action items",
		"unanswered_questions": 42
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coerced) != 2 {
		t.Fatalf("expected 2 coerced fields, got %v", coerced)
	}
	if record.ActionItems == nil || len(record.ActionItems) != 0 {
		t.Fatalf("expected action items coerced to empty list, got %v", record.ActionItems)
	}
	if record.UnansweredQuestions == nil || len(record.UnansweredQuestions) != 0 {
		t.Fatalf("expected questions coerced to empty list, got %v", record.UnansweredQuestions)
	}
	// The surviving fields still count as data
	if record.EmptyData {
		t.Fatalf("expected EmptyData=false with a key decision present")
	}
}

func TestParseStructuredRecord_TopLevelNotObject(t *testing.T) {
	p := NewParser()

	if _, _, err := p.ParseStructuredRecord(`["just", "a", "list"]`); err == nil {
		t.Fatalf("expected error when top level is not an object")
	}
}

func TestParseStructuredRecord_IgnoresUpstreamEmptyDataFlag(t *testing.T) {
	p := NewParser()

	record, _, err := p.ParseStructuredRecord(`{
		"client_name": "N/A",
		"key_decisions": [],
		"action_items": [],
		"unanswered_questions": [],
		"empty_data": false
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.EmptyData {
		t.Fatalf("expected recomputed EmptyData=true regardless of upstream flag")
	}
}
