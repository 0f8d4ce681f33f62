package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/middleware"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// SubmissionsHandler handles the content submission review workflow.
type SubmissionsHandler struct {
	Submissions *services.SubmissionsService
}

// Submit handles POST /api/user/submissions
func (h *SubmissionsHandler) Submit(c *fiber.Ctx) error {
	var body struct {
		ContentType string `json:"content_type"`
		ContentData bson.M `json:"content_data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(body.ContentData) == 0 {
		return utils.Error(c, fiber.StatusBadRequest, "content_data is required")
	}

	claims := middleware.ClaimsFrom(c)
	submission, err := h.Submissions.Submit(c.Context(), body.ContentType, body.ContentData, claims.Subject)
	if err != nil {
		if err == services.ErrUnknownContentType {
			return utils.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Submission received", submission)
}

// List handles GET /api/admin/submissions
func (h *SubmissionsHandler) List(c *fiber.Ctx) error {
	q := parseListQuery(c)
	eqFilter(c, &q, "status", "status")
	eqFilter(c, &q, "content_type", "content_type")
	page, err := h.Submissions.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/submissions/:id
func (h *SubmissionsHandler) Get(c *fiber.Ctx) error {
	submission, err := h.Submissions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, submission)
}

// Review handles POST /api/admin/submissions/:id/review
func (h *SubmissionsHandler) Review(c *fiber.Ctx) error {
	var body struct {
		Action string `json:"action"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.ClaimsFrom(c)
	submission, err := h.Submissions.Review(c.Context(), c.Params("id"), claims.Subject, body.Action, body.Notes)
	if err != nil {
		switch err {
		case services.ErrInvalidReviewAction, services.ErrUnknownContentType:
			return utils.Error(c, fiber.StatusBadRequest, err.Error())
		case services.ErrAlreadyReviewed:
			return utils.Error(c, fiber.StatusConflict, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Submission reviewed", submission)
}

// Stats handles GET /api/admin/submissions/stats
func (h *SubmissionsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Submissions.Statistics(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}
