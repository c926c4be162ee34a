package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/api/dto"
	"github.com/spec-kit/estate-cms/internal/auth"
	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/internal/service"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// LeadsHandler manages enquiry endpoints. Creation is public and sits
// behind the rate limiter; everything else is admin-side.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// Create handles POST /leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadCreateRequest
	if err := dto.LeadCreateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	lead, err := h.service.Create(c.UserContext(), service.LeadCreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Source:    domain.LeadSource(req.Source),
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.FromLead(lead),
		"message": "thank you, we will be in touch shortly",
	})
}

// List handles GET /admin/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePageLimit(c)
	filter := repository.LeadFilter{
		SearchTerm: searchTerm(c),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.LeadStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("source"); raw != "" {
		source := domain.LeadSource(raw)
		filter.Source = &source
	}
	if raw := c.Query("project_id"); raw != "" {
		filter.ProjectID = &raw
	}

	leads, total, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, dto.FromLead(&leads[i]))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

// Get handles GET /admin/leads/:id.
func (h *LeadsHandler) Get(c *fiber.Ctx) error {
	lead, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromLead(lead),
	})
}

// UpdateStatus handles PATCH /admin/leads/:id/status.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LeadStatusRequest
	if err := dto.LeadStatusSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	lead, err := h.service.UpdateStatus(c.UserContext(), identity.UserID, c.Params("id"), domain.LeadStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromLead(lead),
	})
}
