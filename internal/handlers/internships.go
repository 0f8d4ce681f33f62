package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// InternshipsHandler handles internship posting routes.
type InternshipsHandler struct {
	Internships *repository.Repository[models.Internship, *models.Internship]
}

// Create handles POST /api/admin/internships
func (h *InternshipsHandler) Create(c *fiber.Ctx) error {
	internship := models.NewInternship()
	if err := c.BodyParser(&internship); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Internships.Create(c.Context(), &internship); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Internship created", internship)
}

// List handles GET /api/admin/internships
func (h *InternshipsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/internships, restricted to active
// postings.
func (h *InternshipsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *InternshipsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "internship_type", "internship_type")
	eqFilter(c, &q, "category", "category")
	eqFilter(c, &q, "duration", "duration")
	regexFilter(c, &q, "location", "location")
	regexFilter(c, &q, "company", "company")
	return q
}

func (h *InternshipsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Internships.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/internships/:id
func (h *InternshipsHandler) Get(c *fiber.Ctx) error {
	internship, err := h.Internships.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, internship)
}

// PublicGet handles GET /api/user/internships/:id, restricted to active
// postings.
func (h *InternshipsHandler) PublicGet(c *fiber.Ctx) error {
	internship, err := h.Internships.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !internship.IsActive {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	return utils.Success(c, fiber.StatusOK, internship)
}

// Update handles PUT /api/admin/internships/:id
func (h *InternshipsHandler) Update(c *fiber.Ctx) error {
	var upd models.InternshipUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	internship, err := h.Internships.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Internship updated", internship)
}

// Delete handles DELETE /api/admin/internships/:id
func (h *InternshipsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Internships.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Internship deleted", nil)
}
