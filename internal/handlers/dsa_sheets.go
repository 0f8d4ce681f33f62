package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// SheetsHandler handles DSA practice sheet routes.
type SheetsHandler struct {
	Sheets *repository.Repository[models.Sheet, *models.Sheet]
	DSA    *services.DSAService
}

// Create handles POST /api/admin/dsa/sheets. total_questions always
// reflects the submitted question list.
func (h *SheetsHandler) Create(c *fiber.Ctx) error {
	var sheet models.Sheet
	if err := c.BodyParser(&sheet); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	sheet.TotalQuestions = len(sheet.Questions)
	if err := h.Sheets.Create(c.Context(), &sheet); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Sheet created", sheet)
}

// List handles GET /api/admin/dsa/sheets
func (h *SheetsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_published", "is_published")
	boolFilter(c, &q, "is_featured", "is_featured")
	return h.list(c, q)
}

// PublicList handles GET /api/user/dsa/sheets, restricted to published
// sheets.
func (h *SheetsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_published"] = true
	return h.list(c, q)
}

func (h *SheetsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "level", "level")
	eqFilter(c, &q, "tag", "tags")
	boolFilter(c, &q, "is_premium", "is_premium")
	return q
}

func (h *SheetsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Sheets.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/dsa/sheets/:id
func (h *SheetsHandler) Get(c *fiber.Ctx) error {
	sheet, err := h.Sheets.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, sheet)
}

// PublicGet handles GET /api/user/dsa/sheets/:id, restricted to published
// sheets.
func (h *SheetsHandler) PublicGet(c *fiber.Ctx) error {
	sheet, err := h.Sheets.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !sheet.IsPublished {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	return utils.Success(c, fiber.StatusOK, sheet)
}

// Update handles PUT /api/admin/dsa/sheets/:id. When the question list is
// replaced wholesale, total_questions follows it.
func (h *SheetsHandler) Update(c *fiber.Ctx) error {
	var upd models.SheetUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	fields := repository.SetFields(upd)
	if upd.Questions != nil {
		fields["total_questions"] = len(upd.Questions)
	}
	sheet, err := h.Sheets.Update(c.Context(), c.Params("id"), fields)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sheet updated", sheet)
}

// TogglePublish handles PATCH /api/admin/dsa/sheets/:id/toggle-publish
func (h *SheetsHandler) TogglePublish(c *fiber.Ctx) error {
	sheet, err := h.Sheets.Toggle(c.Context(), c.Params("id"), "is_published")
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sheet publish state toggled", sheet)
}

// AddQuestion handles POST /api/admin/dsa/sheets/:id/questions
func (h *SheetsHandler) AddQuestion(c *fiber.Ctx) error {
	var entry models.SheetQuestion
	if err := c.BodyParser(&entry); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if entry.QuestionID == "" {
		return utils.Error(c, fiber.StatusBadRequest, "question_id is required")
	}
	sheet, err := h.DSA.AddSheetQuestion(c.Context(), c.Params("id"), entry)
	if err != nil {
		if err == services.ErrQuestionInSheet {
			return utils.Error(c, fiber.StatusConflict, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Question added to sheet", sheet)
}

// RemoveQuestion handles DELETE /api/admin/dsa/sheets/:id/questions/:questionId
func (h *SheetsHandler) RemoveQuestion(c *fiber.Ctx) error {
	sheet, err := h.DSA.RemoveSheetQuestion(c.Context(), c.Params("id"), c.Params("questionId"))
	if err != nil {
		if err == services.ErrQuestionNotInSheet {
			return utils.Error(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Question removed from sheet", sheet)
}

// Delete handles DELETE /api/admin/dsa/sheets/:id
func (h *SheetsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Sheets.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sheet deleted", nil)
}
