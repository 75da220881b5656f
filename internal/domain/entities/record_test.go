package entities

import (
	"fmt"
	"testing"
)

func TestNormalize_ForcesEmptyDataWhenNothingExtracted(t *testing.T) {
	cases := []struct {
		name   string
		record StructuredRecord
	}{
		{"all nil fields", StructuredRecord{}},
		{"empty lists unknown client", StructuredRecord{ClientName: "Unknown", KeyDecisions: []string{}, ActionItems: []ActionItem{}, UnansweredQuestions: []string{}}},
		{"na client", StructuredRecord{ClientName: "N/A"}},
		{"lowercase na client", StructuredRecord{ClientName: "n/a"}},
		{"upstream flag says false", StructuredRecord{ClientName: "Unknown", EmptyData: false}},
	}

	for _, tc := range cases {
		rec := tc.record
		rec.Normalize()
		if !rec.EmptyData {
			t.Fatalf("%s: expected EmptyData=true", tc.name)
		}
		if rec.KeyDecisions == nil || rec.ActionItems == nil || rec.UnansweredQuestions == nil {
			t.Fatalf("%s: expected slices backfilled", tc.name)
		}
	}
}

func TestNormalize_ForcesEmptyDataFalseWhenDataPresent(t *testing.T) {
	cases := []struct {
		name   string
		record StructuredRecord
	}{
		{"decision present", StructuredRecord{KeyDecisions: []string{"ship it"}, EmptyData: true}},
		{"action item present", StructuredRecord{ActionItems: []ActionItem{{Task: "write docs"}}, EmptyData: true}},
		{"question present", StructuredRecord{UnansweredQuestions: []string{"who owns QA?"}, EmptyData: true}},
		{"resolved client only", StructuredRecord{ClientName: "Acme Corp", EmptyData: true}},
	}

	for _, tc := range cases {
		rec := tc.record
		rec.Normalize()
		if rec.EmptyData {
			t.Fatalf("%s: expected EmptyData=false", tc.name)
		}
	}
}

func TestNormalize_DefaultsClientName(t *testing.T) {
	rec := StructuredRecord{}
	rec.Normalize()
	if rec.ClientName != "Unknown" {
		t.Fatalf("expected default client name Unknown, got %q", rec.ClientName)
	}
}

func TestNewEmptyRecord(t *testing.T) {
	cause := fmt.Errorf("backend exploded")
	rec := NewEmptyRecord(cause)
	if !rec.EmptyData {
		t.Fatalf("expected EmptyData=true")
	}
	if rec.Err != cause {
		t.Fatalf("expected cause to be carried")
	}
}

func TestClassificationNormalize_InternalForcesNA(t *testing.T) {
	c := Classification{MeetingType: MeetingTypeInternal, ClientName: "Acme Corp"}
	c.Normalize()
	if c.ClientName != "N/A" {
		t.Fatalf("internal meeting must have client N/A, got %q", c.ClientName)
	}
}

func TestClassificationIsExternal(t *testing.T) {
	c := Classification{MeetingType: MeetingTypeExternal, ClientName: "Acme Corp"}
	if !c.IsExternal() {
		t.Fatalf("expected external")
	}

	for _, c := range []Classification{
		{MeetingType: MeetingTypeExternal, ClientName: "N/A"},
		{MeetingType: MeetingTypeInternal, ClientName: "Acme Corp"},
		{},
	} {
		if c.IsExternal() {
			t.Fatalf("expected not external: %+v", c)
		}
	}
}
