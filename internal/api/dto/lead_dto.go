package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// LeadCreateRequest is the public enquiry payload.
type LeadCreateRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Message   string  `json:"message"`
	Source    string  `json:"source"`
	ProjectID *string `json:"project_id"`
}

// LeadStatusRequest moves a lead through the pipeline.
type LeadStatusRequest struct {
	Status string `json:"status"`
}

// LeadResponse is the wire shape of a lead.
type LeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	ProjectID *string   `json:"project_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromLead maps the domain model.
func FromLead(l *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Message:   l.Message,
		Source:    string(l.Source),
		ProjectID: l.ProjectID,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

var leadSources = []string{
	string(domain.LeadSourceContact),
	string(domain.LeadSourceBrochure),
	string(domain.LeadSourceProjectEnquiry),
}

var leadStatuses = []string{
	string(domain.LeadStatusNew),
	string(domain.LeadStatusContacted),
	string(domain.LeadStatusQualified),
	string(domain.LeadStatusClosed),
}

// LeadCreateSchema validates public submissions.
var LeadCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 120},
		{Name: "email", Kind: validation.KindString, Required: true, Format: validation.FormatEmail, MaxLen: 254},
		{Name: "phone", Kind: validation.KindString, Required: true, Format: validation.FormatPhone},
		{Name: "message", Kind: validation.KindString, MaxLen: 2000, Default: ""},
		{Name: "source", Kind: validation.KindString, Enum: leadSources, Default: string(domain.LeadSourceContact)},
		{Name: "project_id", Kind: validation.KindString},
	},
}

// LeadStatusSchema validates status transitions.
var LeadStatusSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "status", Kind: validation.KindString, Required: true, Enum: leadStatuses},
	},
}
