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

// LeadService handles public enquiry intake and admin follow-up.
type LeadService struct {
	leads      repository.LeadRepository
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
}

// NewLeadService constructs the service.
func NewLeadService(leads repository.LeadRepository, projects repository.ProjectRepository, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{leads: leads, projects: projects, dispatcher: dispatcher}
}

// LeadCreateInput describes a public form submission.
type LeadCreateInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Source    domain.LeadSource
	ProjectID *string
}

// Create stores an enquiry and dispatches a notification event.
func (s *LeadService) Create(ctx context.Context, input LeadCreateInput) (*domain.Lead, error) {
	if input.ProjectID != nil {
		if _, err := s.projects.GetByID(ctx, *input.ProjectID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, util.NewValidationError("project_id references an unknown project")
			}
			return nil, err
		}
	}

	lead := &domain.Lead{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Source:    input.Source,
		ProjectID: input.ProjectID,
		Status:    domain.LeadStatusNew,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLeadCreated,
			ResourceID: lead.ID,
			Timestamp:  time.Now(),
			Payload: events.LeadCreatedPayload{
				Name:      lead.Name,
				Email:     lead.Email,
				Source:    lead.Source,
				ProjectID: lead.ProjectID,
			},
		})
	}
	return lead, nil
}

// UpdateStatus moves a lead through the follow-up pipeline.
func (s *LeadService) UpdateStatus(ctx context.Context, actorID, id string, status domain.LeadStatus) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("lead")
		}
		return nil, err
	}

	oldStatus := lead.Status
	lead.Status = status
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	if s.dispatcher != nil && oldStatus != status {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLeadStatusChanged,
			ResourceID: lead.ID,
			ActorID:    &actorID,
			Timestamp:  time.Now(),
			Payload: events.LeadStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: status,
			},
		})
	}
	return lead, nil
}

// Get returns one lead.
func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("lead")
		}
		return nil, err
	}
	return lead, nil
}

// List returns leads matching the filter plus total count.
func (s *LeadService) List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, int, error) {
	return s.leads.List(ctx, filter)
}
