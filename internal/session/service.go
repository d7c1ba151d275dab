package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajay-constructions/estimator/internal/models"
)

// Estimator produces a cost and material breakdown for a project.
type Estimator interface {
	Estimate(ctx context.Context, category models.Category, inputs map[string]any) (*models.EstimateResult, error)
}

// ImageResolver returns the path of an illustrative image for a category, or
// an error when none is available.
type ImageResolver interface {
	Resolve(ctx context.Context, categoryID, descriptivePrompt string) (string, error)
}

// QuoteSink receives every successful quote for durable record keeping.
type QuoteSink interface {
	Append(quote models.Quote) error
}

// Service sequences the two external calls of a submission: estimation
// first, then image resolution keyed on the returned visual prompt.
type Service struct {
	estimator Estimator
	images    ImageResolver
	log       QuoteSink
	now       func() time.Time
}

// NewService creates a submission service. images and log may be nil, in
// which case quotes carry no image and are not durably recorded.
func NewService(estimator Estimator, images ImageResolver, log QuoteSink) *Service {
	return &Service{
		estimator: estimator,
		images:    images,
		log:       log,
		now:       time.Now,
	}
}

// Submit runs one submission for sess. On estimation failure the session is
// left untouched and the error is returned for display. Image resolution
// failures are absorbed: the quote is recorded with no image. The completed
// quote is returned.
func (svc *Service) Submit(ctx context.Context, sess *Session, req models.ProjectRequest) (*models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project request: %w", err)
	}

	result, err := svc.estimator.Estimate(ctx, req.Category, req.Inputs())
	if err != nil {
		return nil, err
	}

	imagePath := ""
	if svc.images != nil {
		path, err := svc.images.Resolve(ctx, string(req.Category), result.VisualPrompt)
		if err != nil {
			slog.Warn("No illustrative image for quote", "category", req.Category, "error", err)
		} else {
			imagePath = path
		}
	}

	quote := models.Quote{
		Request:   req,
		Estimate:  *result,
		ImagePath: imagePath,
		CreatedAt: svc.now(),
	}
	sess.Record(quote)

	if svc.log != nil {
		if err := svc.log.Append(quote); err != nil {
			slog.Warn("Failed to append quote to durable log", "error", err)
		}
	}

	return &quote, nil
}
