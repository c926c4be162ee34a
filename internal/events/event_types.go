package events

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadCreated          EventType = "lead_created"
	EventLeadStatusChanged    EventType = "lead_status_changed"
	EventTestimonialApproved  EventType = "testimonial_approved"
	EventTestimonialSubmitted EventType = "testimonial_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	ActorID    *string     `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// LeadCreatedPayload payload.
type LeadCreatedPayload struct {
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Source    domain.LeadSource `json:"source"`
	ProjectID *string           `json:"project_id,omitempty"`
}

// LeadStatusChangedPayload payload.
type LeadStatusChangedPayload struct {
	OldStatus domain.LeadStatus `json:"old_status"`
	NewStatus domain.LeadStatus `json:"new_status"`
}

// TestimonialApprovedPayload payload.
type TestimonialApprovedPayload struct {
	AuthorName string `json:"author_name"`
}

// TestimonialSubmittedPayload payload.
type TestimonialSubmittedPayload struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
}
