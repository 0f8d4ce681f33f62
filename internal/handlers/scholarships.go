package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// ScholarshipsHandler handles scholarship routes.
type ScholarshipsHandler struct {
	Scholarships *repository.Repository[models.Scholarship, *models.Scholarship]
}

// Create handles POST /api/admin/scholarships
func (h *ScholarshipsHandler) Create(c *fiber.Ctx) error {
	scholarship := models.NewScholarship()
	if err := c.BodyParser(&scholarship); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Scholarships.Create(c.Context(), &scholarship); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Scholarship created", scholarship)
}

// List handles GET /api/admin/scholarships
func (h *ScholarshipsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/scholarships, restricted to active
// listings.
func (h *ScholarshipsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *ScholarshipsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "scholarship_type", "scholarship_type")
	eqFilter(c, &q, "education_level", "education_level")
	eqFilter(c, &q, "country", "country")
	regexFilter(c, &q, "field_of_study", "field_of_study")
	regexFilter(c, &q, "provider", "provider")
	return q
}

func (h *ScholarshipsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Scholarships.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/scholarships/:id
func (h *ScholarshipsHandler) Get(c *fiber.Ctx) error {
	scholarship, err := h.Scholarships.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, scholarship)
}

// PublicGet handles GET /api/user/scholarships/:id, restricted to active
// listings.
func (h *ScholarshipsHandler) PublicGet(c *fiber.Ctx) error {
	scholarship, err := h.Scholarships.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !scholarship.IsActive {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	return utils.Success(c, fiber.StatusOK, scholarship)
}

// Update handles PUT /api/admin/scholarships/:id
func (h *ScholarshipsHandler) Update(c *fiber.Ctx) error {
	var upd models.ScholarshipUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	scholarship, err := h.Scholarships.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Scholarship updated", scholarship)
}

// Delete handles DELETE /api/admin/scholarships/:id
func (h *ScholarshipsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Scholarships.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Scholarship deleted", nil)
}
