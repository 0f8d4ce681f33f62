package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// QuestionsHandler handles DSA question routes.
type QuestionsHandler struct {
	Questions *repository.Repository[models.Question, *models.Question]
	DSA       *services.DSAService
}

// Create handles POST /api/admin/dsa/questions
func (h *QuestionsHandler) Create(c *fiber.Ctx) error {
	question := models.NewQuestion()
	if err := c.BodyParser(&question); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	question.TotalSubmissions = 0
	question.TotalAccepted = 0
	question.AcceptanceRate = nil
	if err := h.Questions.Create(c.Context(), &question); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Question created", question)
}

// List handles GET /api/admin/dsa/questions
func (h *QuestionsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	boolFilter(c, &q, "is_premium", "is_premium")
	return h.list(c, q)
}

// PublicList handles GET /api/user/dsa/questions, restricted to active
// questions.
func (h *QuestionsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *QuestionsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "difficulty", "difficulty")
	eqFilter(c, &q, "topic", "topics")
	regexFilter(c, &q, "company", "companies")
	if topics := c.Query("topics"); topics != "" {
		q.In = map[string][]string{"topics": strings.Split(topics, ",")}
	}
	return q
}

func (h *QuestionsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Questions.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/dsa/questions/:id
func (h *QuestionsHandler) Get(c *fiber.Ctx) error {
	question, err := h.Questions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, question)
}

// PublicGet handles GET /api/user/dsa/questions/:id, restricted to active
// questions.
func (h *QuestionsHandler) PublicGet(c *fiber.Ctx) error {
	question, err := h.Questions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !question.IsActive {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	return utils.Success(c, fiber.StatusOK, question)
}

// Update handles PUT /api/admin/dsa/questions/:id
func (h *QuestionsHandler) Update(c *fiber.Ctx) error {
	var upd models.QuestionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	question, err := h.Questions.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Question updated", question)
}

// Delete handles DELETE /api/admin/dsa/questions/:id
func (h *QuestionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Questions.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Question deleted", nil)
}

// Submit handles POST /api/user/dsa/questions/:id/submit, recording one
// submission result against the question.
func (h *QuestionsHandler) Submit(c *fiber.Ctx) error {
	var body struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	question, err := h.DSA.RecordSubmission(c.Context(), c.Params("id"), body.Accepted)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Submission recorded", question)
}

// Stats handles GET /api/admin/dsa/questions/stats
func (h *QuestionsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.DSA.QuestionStatistics(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}
