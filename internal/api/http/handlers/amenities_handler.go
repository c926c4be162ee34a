package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/api/dto"
	"github.com/spec-kit/estate-cms/internal/service"
)

// AmenitiesHandler manages the amenity catalog.
type AmenitiesHandler struct {
	service *service.AmenityService
}

// NewAmenitiesHandler constructs handler.
func NewAmenitiesHandler(amenityService *service.AmenityService) *AmenitiesHandler {
	return &AmenitiesHandler{service: amenityService}
}

// List handles GET /amenities.
func (h *AmenitiesHandler) List(c *fiber.Ctx) error {
	amenities, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.AmenityResponse, 0, len(amenities))
	for i := range amenities {
		items = append(items, dto.FromAmenity(&amenities[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// Create handles POST /admin/amenities.
func (h *AmenitiesHandler) Create(c *fiber.Ctx) error {
	var req dto.AmenityRequest
	if err := dto.AmenityCreateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	amenity, err := h.service.Create(c.UserContext(), service.AmenityInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.FromAmenity(amenity),
	})
}

// Update handles PUT /admin/amenities/:id.
func (h *AmenitiesHandler) Update(c *fiber.Ctx) error {
	var req dto.AmenityRequest
	if err := dto.AmenityUpdateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	amenity, err := h.service.Update(c.UserContext(), c.Params("id"), service.AmenityInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromAmenity(amenity),
	})
}

// Delete handles DELETE /admin/amenities/:id.
func (h *AmenitiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "amenity deleted",
	})
}
