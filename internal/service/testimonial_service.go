package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/events"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/pkg/util"
)

// TestimonialService handles quote submission and moderation.
type TestimonialService struct {
	testimonials repository.TestimonialRepository
	dispatcher   events.Dispatcher
}

// NewTestimonialService constructs the service.
func NewTestimonialService(testimonials repository.TestimonialRepository, dispatcher events.Dispatcher) *TestimonialService {
	return &TestimonialService{testimonials: testimonials, dispatcher: dispatcher}
}

// TestimonialCreateInput describes a submission.
type TestimonialCreateInput struct {
	AuthorName  string
	AuthorTitle string
	Quote       string
	Rating      int
	ProjectID   *string
}

// Create stores an unapproved testimonial awaiting moderation.
func (s *TestimonialService) Create(ctx context.Context, input TestimonialCreateInput) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		AuthorName:  input.AuthorName,
		AuthorTitle: input.AuthorTitle,
		Quote:       input.Quote,
		Rating:      input.Rating,
		ProjectID:   input.ProjectID,
		IsApproved:  false,
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTestimonialSubmitted,
			ResourceID: t.ID,
			Timestamp:  time.Now(),
			Payload: events.TestimonialSubmittedPayload{
				AuthorName: t.AuthorName,
				Rating:     t.Rating,
			},
		})
	}
	return t, nil
}

// Approve marks a testimonial as publishable. Approving an already-approved
// entry is a no-op that still succeeds.
func (s *TestimonialService) Approve(ctx context.Context, actorID, id string) (*domain.Testimonial, error) {
	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("testimonial")
		}
		return nil, err
	}
	if t.IsApproved {
		return t, nil
	}

	t.IsApproved = true
	if err := s.testimonials.Update(ctx, t); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTestimonialApproved,
			ResourceID: t.ID,
			ActorID:    &actorID,
			Timestamp:  time.Now(),
			Payload:    events.TestimonialApprovedPayload{AuthorName: t.AuthorName},
		})
	}
	return t, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return util.NewNotFound("testimonial")
		}
		return err
	}
	return nil
}

// List returns testimonials. Anonymous callers and callers below editor see
// approved entries only, whatever filter they ask for.
func (s *TestimonialService) List(ctx context.Context, moderator bool, filter repository.TestimonialFilter) ([]domain.Testimonial, int, error) {
	if !moderator {
		approved := true
		filter.Approved = &approved
	}
	return s.testimonials.List(ctx, filter)
}
