package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// JobsHandler handles job posting routes.
type JobsHandler struct {
	Jobs *repository.Repository[models.Job, *models.Job]
}

// Create handles POST /api/admin/jobs
// @Summary Create a job posting
// @Tags Jobs
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	job := models.NewJob()
	if err := c.BodyParser(&job); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Jobs.Create(c.Context(), &job); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Job created", job)
}

// List handles GET /api/admin/jobs
// @Summary List job postings with filters and pagination
// @Tags Jobs
func (h *JobsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/jobs, restricted to active postings.
func (h *JobsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *JobsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "job_type", "job_type")
	eqFilter(c, &q, "category", "category")
	eqFilter(c, &q, "experience_level", "experience_level")
	regexFilter(c, &q, "location", "location")
	regexFilter(c, &q, "company", "company")
	return q
}

func (h *JobsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Jobs.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/jobs/:id
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.Jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, job)
}

// PublicGet handles GET /api/user/jobs/:id, restricted to active postings.
func (h *JobsHandler) PublicGet(c *fiber.Ctx) error {
	job, err := h.Jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !job.IsActive {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	return utils.Success(c, fiber.StatusOK, job)
}

// Update handles PUT /api/admin/jobs/:id
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	var upd models.JobUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	job, err := h.Jobs.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Job updated", job)
}

// Delete handles DELETE /api/admin/jobs/:id
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Jobs.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Job deleted", nil)
}
