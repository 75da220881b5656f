package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

// Service runs the multi-pass transcript analysis pipeline.
// Every pass degrades gracefully: classification failures yield a neutral
// classification, cleaning failures return the input unchanged, and
// extraction failures yield a forced-empty record. No pass ever aborts
// the invocation.
type Service struct {
	backend Backend
	parser  *Parser
	logger  *zap.Logger
}

// NewService constructs the analysis pipeline on top of a Backend
func NewService(backend Backend, logger *zap.Logger) *Service {
	return &Service{
		backend: backend,
		parser:  NewParser(),
		logger:  logger,
	}
}

// Classify determines the meeting type and client name from the opening of
// the transcript. On any backend or parse failure it returns the neutral
// zero classification rather than an error: classification must never
// abort the pipeline.
func (s *Service) Classify(ctx context.Context, transcript string) entities.Classification {
	prefix := transcript
	if len(prefix) > classifyPrefixLimit {
		prefix = prefix[:classifyPrefixLimit]
	}

	raw, err := s.backend.CompleteJSON(ctx, classifyPrompt(prefix))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("meeting classification failed", zap.Error(err))
		}
		return entities.Classification{}
	}

	classification, err := s.parser.ParseClassification(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse classification", zap.Error(err))
		}
		return entities.Classification{}
	}

	if s.logger != nil {
		s.logger.Info("meeting classified",
			zap.String("meeting_type", classification.MeetingType),
			zap.String("client_name", classification.ClientName),
		)
	}
	return *classification
}

// Clean removes filler words and fixes typos without altering meaning.
// Fail-open: on any failure the raw transcript is returned unchanged so
// downstream passes always receive some text.
func (s *Service) Clean(ctx context.Context, rawText string) string {
	cleaned, err := s.backend.Complete(ctx, cleanPrompt(rawText))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("transcript cleaning failed, using raw transcript", zap.Error(err))
		}
		return rawText
	}
	if cleaned == "" {
		if s.logger != nil {
			s.logger.Warn("cleaner returned empty output, using raw transcript")
		}
		return rawText
	}
	return cleaned
}

// Extract pulls key decisions, action items and open questions out of the
// cleaned transcript. On any failure it returns a forced-empty record
// carrying the error; it never returns an error itself.
func (s *Service) Extract(ctx context.Context, cleanedTranscript string) *entities.StructuredRecord {
	raw, err := s.backend.CompleteJSON(ctx, extractPrompt(cleanedTranscript))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("structured extraction failed", zap.Error(err))
		}
		return entities.NewEmptyRecord(err)
	}

	record, coerced, err := s.parser.ParseStructuredRecord(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse extraction response", zap.Error(err))
		}
		return entities.NewEmptyRecord(err)
	}

	if len(coerced) > 0 && s.logger != nil {
		s.logger.Warn("coerced mis-shaped extraction fields to defaults",
			zap.Strings("fields", coerced),
		)
	}

	if s.logger != nil {
		s.logger.Info("structured extraction complete",
			zap.Int("key_decisions", len(record.KeyDecisions)),
			zap.Int("action_items", len(record.ActionItems)),
			zap.Int("unanswered_questions", len(record.UnansweredQuestions)),
			zap.Bool("empty_data", record.EmptyData),
		)
	}
	return record
}
