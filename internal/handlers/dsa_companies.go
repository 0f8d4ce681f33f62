package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// CompaniesHandler handles DSA company routes.
type CompaniesHandler struct {
	Companies *repository.Repository[models.Company, *models.Company]
	DSA       *services.DSAService
}

// Create handles POST /api/admin/dsa/companies
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	company := models.NewCompany()
	if err := c.BodyParser(&company); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	company.ProblemCount = 0
	company.JobCount = 0
	if err := h.Companies.Create(c.Context(), &company); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Company created", company)
}

// List handles GET /api/admin/dsa/companies. Companies sort by name unless
// the caller asks otherwise.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/dsa/companies, restricted to active
// companies.
func (h *CompaniesHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *CompaniesHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "industry", "industry")
	if q.Sort == "" {
		q.Sort = "name"
		q.Order = 1
	}
	return q
}

func (h *CompaniesHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Companies.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/dsa/companies/:id
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.Companies.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, company)
}

// Update handles PUT /api/admin/dsa/companies/:id
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	var upd models.CompanyUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	company, err := h.Companies.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Company updated", company)
}

// AdjustCounter handles PATCH /api/admin/dsa/companies/:id/counters,
// moving one of the explicitly maintained counters.
func (h *CompaniesHandler) AdjustCounter(c *fiber.Ctx) error {
	var body struct {
		Field string `json:"field"`
		Delta int64  `json:"delta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Delta == 0 {
		body.Delta = 1
	}
	company, err := h.DSA.AdjustCompanyCounter(c.Context(), c.Params("id"), body.Field, body.Delta)
	if err != nil {
		if err == services.ErrUnknownCounter {
			return utils.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Counter updated", company)
}

// Stats handles GET /api/admin/dsa/companies/stats
func (h *CompaniesHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.DSA.CompanyStatistics(c.Context(), int64(c.QueryInt("top", 5)))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}

// Delete handles DELETE /api/admin/dsa/companies/:id
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	if err := h.Companies.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Company deleted", nil)
}
