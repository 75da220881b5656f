package meeting

import (
	"context"

	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
)

// ProjectRouter decides which tracker project a meeting's task lands in
type ProjectRouter interface {
	Route(ctx context.Context, transcript *entities.Transcript) string
}

// FixedProjectRouter always routes to the configured default project
type FixedProjectRouter struct {
	ProjectGID string
}

// Route returns the configured default project
func (r FixedProjectRouter) Route(ctx context.Context, transcript *entities.Transcript) string {
	return r.ProjectGID
}

// classifier is the single analysis pass the router needs
type classifier interface {
	Classify(ctx context.Context, transcript string) entities.Classification
}

// projectFinder is the single tracker lookup the router needs
type projectFinder interface {
	FindProjectByName(ctx context.Context, name string) (string, error)
}

// ClassifierRouter classifies the meeting and, for external meetings with
// a resolved client, routes to that client's project. Falls back to the
// default project whenever classification is neutral or the lookup misses.
type ClassifierRouter struct {
	Classifier        classifier
	Finder            projectFinder
	DefaultProjectGID string
	Logger            *zap.Logger
}

// NewClassifierRouter wires the classification-driven routing strategy
func NewClassifierRouter(cls classifier, finder projectFinder, defaultGID string, logger *zap.Logger) *ClassifierRouter {
	return &ClassifierRouter{
		Classifier:        cls,
		Finder:            finder,
		DefaultProjectGID: defaultGID,
		Logger:            logger,
	}
}

// Route resolves the destination project for a transcript
func (r *ClassifierRouter) Route(ctx context.Context, transcript *entities.Transcript) string {
	classification := r.Classifier.Classify(ctx, transcript.Text)
	if !classification.IsExternal() {
		return r.DefaultProjectGID
	}

	if r.Logger != nil {
		r.Logger.Info("external meeting identified, searching for client project",
			zap.String("client_name", classification.ClientName),
		)
	}

	projectGID, err := r.Finder.FindProjectByName(ctx, classification.ClientName)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Warn("client project lookup failed, using default project",
				zap.String("client_name", classification.ClientName),
				zap.Error(err),
			)
		}
		return r.DefaultProjectGID
	}
	if projectGID == "" {
		if r.Logger != nil {
			r.Logger.Warn("client project not found, using default project",
				zap.String("client_name", classification.ClientName),
			)
		}
		return r.DefaultProjectGID
	}
	return projectGID
}
