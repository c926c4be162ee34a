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

// ProjectsHandler manages development listing endpoints.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// List handles GET /projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePageLimit(c)
	filter := repository.ProjectFilter{
		SearchTerm: searchTerm(c),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ProjectStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		projectType := domain.ProjectType(raw)
		filter.Type = &projectType
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	projects, total, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.FromProject(&projects[i]))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

// Get handles GET /projects/:slug.
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromProject(project),
	})
}

// Create handles POST /admin/projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProjectCreateRequest
	if err := dto.ProjectCreateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	input := service.ProjectCreateInput{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        domain.ProjectType(req.Type),
		Status:      domain.ProjectStatus(req.Status),
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		AmenityIDs:  req.AmenityIDs,
	}
	if req.Featured != nil {
		input.Featured = *req.Featured
	}

	project, err := h.service.Create(c.UserContext(), identity.UserID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.FromProject(project),
	})
}

// Update handles PUT /admin/projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProjectUpdateRequest
	if err := dto.ProjectUpdateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	input := service.ProjectUpdateInput{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		AmenityIDs:  req.AmenityIDs,
		Featured:    req.Featured,
	}
	if req.Type != nil {
		projectType := domain.ProjectType(*req.Type)
		input.Type = &projectType
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromProject(project),
	})
}

// Delete handles DELETE /admin/projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "project deleted",
	})
}
