package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseClassification parses the classifier pass output
func (p *Parser) ParseClassification(jsonString string) (*entities.Classification, error) {
	jsonString = extractJSON(jsonString)

	var c entities.Classification
	if err := json.Unmarshal([]byte(jsonString), &c); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	c.Normalize()
	return &c, nil
}

// rawRecord holds the extractor output with every field still raw, so a
// single mis-shaped field can be coerced instead of failing the record.
type rawRecord struct {
	ClientName          json.RawMessage `json:"client_name"`
	KeyDecisions        json.RawMessage `json:"key_decisions"`
	ActionItems         json.RawMessage `json:"action_items"`
	UnansweredQuestions json.RawMessage `json:"unanswered_questions"`
}

// ParseStructuredRecord parses the extractor pass output into a
// StructuredRecord. The top level must be a JSON object; individual
// fields that don't match their expected shape are coerced to safe
// defaults and reported in the returned list. Any empty_data flag in the
// response is ignored: Normalize recomputes it.
func (p *Parser) ParseStructuredRecord(jsonString string) (*entities.StructuredRecord, []string, error) {
	jsonString = extractJSON(jsonString)

	var raw rawRecord
	if err := json.Unmarshal([]byte(jsonString), &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	record := &entities.StructuredRecord{}
	var coerced []string

	if raw.ClientName != nil {
		if err := json.Unmarshal(raw.ClientName, &record.ClientName); err != nil {
			coerced = append(coerced, "client_name")
		}
	}
	if raw.KeyDecisions != nil {
		if err := json.Unmarshal(raw.KeyDecisions, &record.KeyDecisions); err != nil {
			record.KeyDecisions = nil
			coerced = append(coerced, "key_decisions")
		}
	}
	if raw.ActionItems != nil {
		if err := json.Unmarshal(raw.ActionItems, &record.ActionItems); err != nil {
			record.ActionItems = nil
			coerced = append(coerced, "action_items")
		}
	}
	if raw.UnansweredQuestions != nil {
		if err := json.Unmarshal(raw.UnansweredQuestions, &record.UnansweredQuestions); err != nil {
			record.UnansweredQuestions = nil
			coerced = append(coerced, "unanswered_questions")
		}
	}

	record.Normalize()
	return record, coerced, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
