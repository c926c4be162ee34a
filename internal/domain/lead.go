package domain

import "time"

// LeadSource identifies which public form produced a lead.
type LeadSource string

const (
	LeadSourceContact        LeadSource = "contact"
	LeadSourceBrochure       LeadSource = "brochure"
	LeadSourceProjectEnquiry LeadSource = "project_enquiry"
)

// LeadStatus enumerates follow-up states.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead captures an inbound sales enquiry from a public form.
type Lead struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Source    LeadSource
	ProjectID *string
	Status    LeadStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
