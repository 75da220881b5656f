package analysis

import (
	"fmt"
	"strings"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

// noDataBrief is the fixed artifact posted when nothing could be
// extracted. Byte-identical regardless of which record fields were
// missing versus empty.
const noDataBrief = `
<h2><strong>Meeting Summary</strong></h2>

This meeting did not contain explicit key decisions, action items, or unanswered questions that could be automatically extracted.

Please review the full transcript for context or if you were expecting specific outcomes.
`

// RenderBrief renders a StructuredRecord into the HTML comment body posted
// to the tracker task. Pure function: a nil, empty-flagged or partial
// record never causes an error, only the generic "no data" brief or
// defaulted fields.
func RenderBrief(record *entities.StructuredRecord) string {
	if record == nil || record.EmptyData {
		return noDataBrief
	}

	clientName := record.ClientName
	if clientName == "" {
		clientName = "Unknown Project"
	}
	parts := []string{fmt.Sprintf("<h2><strong>Project Brief: %s</strong></h2>", clientName)}

	if len(record.KeyDecisions) > 0 {
		parts = append(parts, "<strong>Key Decisions:</strong>", "<ul>")
		for _, decision := range record.KeyDecisions {
			parts = append(parts, fmt.Sprintf("<li>%s</li>", decision))
		}
		parts = append(parts, "</ul>")
	}

	if len(record.ActionItems) > 0 {
		parts = append(parts, "<strong>Action Items (Sub-tasks to be created automatically):</strong>", "<ul>")
		for _, item := range record.ActionItems {
			parts = append(parts, fmt.Sprintf("<li><strong>%s</strong> (Owner: %s, Due: %s)</li>",
				orNA(item.Task), orNA(item.Owner), orNA(item.DueDate)))
		}
		parts = append(parts, "</ul>")
	}

	if len(record.UnansweredQuestions) > 0 {
		parts = append(parts, "<strong>Open Questions:</strong>", "<ul>")
		for _, question := range record.UnansweredQuestions {
			parts = append(parts, fmt.Sprintf("<li>%s</li>", question))
		}
		parts = append(parts, "</ul>")
	}

	return strings.Join(parts, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
