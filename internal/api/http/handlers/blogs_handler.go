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

// BlogsHandler manages blog endpoints.
type BlogsHandler struct {
	service *service.BlogService
}

// NewBlogsHandler constructs handler.
func NewBlogsHandler(blogService *service.BlogService) *BlogsHandler {
	return &BlogsHandler{service: blogService}
}

// List handles GET /blogs. Anonymous callers see published posts only;
// editors and above may filter by status.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePageLimit(c)
	filter := repository.BlogFilter{
		SearchTerm: searchTerm(c),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("category"); raw != "" {
		filter.Category = &raw
	}

	if isEditor(c) {
		if raw := c.Query("status"); raw != "" && raw != "all" {
			status := domain.BlogStatus(raw)
			filter.Status = &status
		}
	} else {
		published := domain.BlogStatusPublished
		filter.Status = &published
	}

	posts, total, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.BlogResponse, 0, len(posts))
	for i := range posts {
		items = append(items, dto.FromBlogPost(&posts[i], false))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

// Get handles GET /blogs/:slug.
func (h *BlogsHandler) Get(c *fiber.Ctx) error {
	post, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"), isEditor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromBlogPost(post, true),
	})
}

// Create handles POST /admin/blogs.
func (h *BlogsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.BlogCreateRequest
	if err := dto.BlogCreateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.UserContext(), identity.UserID, service.BlogCreateInput{
		Slug:     req.Slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
		Status:   domain.BlogStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.FromBlogPost(post, true),
	})
}

// Update handles PUT /admin/blogs/:id.
func (h *BlogsHandler) Update(c *fiber.Ctx) error {
	var req dto.BlogUpdateRequest
	if err := dto.BlogUpdateSchema.Bind(c.Body(), &req); err != nil {
		return err
	}

	input := service.BlogUpdateInput{
		Slug:     req.Slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	}
	if req.Status != nil {
		status := domain.BlogStatus(*req.Status)
		input.Status = &status
	}

	post, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.FromBlogPost(post, true),
	})
}

// Delete handles DELETE /admin/blogs/:id.
func (h *BlogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "blog post deleted",
	})
}

// isEditor reports whether the optional-auth identity is editor or above.
func isEditor(c *fiber.Ctx) bool {
	identity, ok := auth.IdentityFromContext(c)
	return ok && identity.Role.AtLeast(domain.RoleEditor)
}
