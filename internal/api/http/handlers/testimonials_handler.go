package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/api/dto"
	"github.com/spec-kit/estate-cms/internal/auth"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/internal/service"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// TestimonialsHandler manages testimonial endpoints.
type TestimonialsHandler struct {
	service *service.TestimonialService
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(testimonialService *service.TestimonialService) *TestimonialsHandler {
	return &TestimonialsHandler{service: testimonialService}
}

// List handles GET /testimonials. The route carries optional auth: anonymous
// callers always get approved entries; editors may request pending or all.
func (h *TestimonialsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePageLimit(c)
	filter := repository.TestimonialFilter{
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("project_id"); raw != "" {
		filter.ProjectID = &raw
	}

	moderator := isEditor(c)
	if moderator {
		switch c.Query("status") {
		case "pending":
			pending := false
			filter.Approved = &pending
		case "all", "":
		case "approved":
			approved := true
			filter.Approved = &approved
		}
	}

	testimonials, total, err := h.service.List(c.UserContext(), moderator, filter)
	if err != nil {
		return err
	}

	items := make([]dto.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		items = append(items, dto.FromTestimonial(&testimonials[i]))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

// Create handles POST /testimonials.
func (h *TestimonialsHandler) Create(c *fiber.Ctx) error {
	var req dto.TestimonialCreateRequest
	if err := dto.TestimonialCreateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	testimonial, err := h.service.Create(c.UserContext(), service.TestimonialCreateInput{
		AuthorName:  req.AuthorName,
		AuthorTitle: req.AuthorTitle,
		Quote:       req.Quote,
		Rating:      req.Rating,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.FromTestimonial(testimonial),
		"message": "testimonial submitted for review",
	})
}

// Approve handles PATCH /admin/testimonials/:id/approve. Approving twice is
// a no-op that still returns 200.
func (h *TestimonialsHandler) Approve(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	testimonial, err := h.service.Approve(c.UserContext(), identity.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromTestimonial(testimonial),
	})
}

// Delete handles DELETE /admin/testimonials/:id.
func (h *TestimonialsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "testimonial deleted",
	})
}
