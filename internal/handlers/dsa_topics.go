package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// TopicsHandler handles DSA topic routes.
type TopicsHandler struct {
	Topics *repository.Repository[models.Topic, *models.Topic]
	DSA    *services.DSAService
}

// Create handles POST /api/admin/dsa/topics
func (h *TopicsHandler) Create(c *fiber.Ctx) error {
	topic := models.NewTopic()
	if err := c.BodyParser(&topic); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Topics.Create(c.Context(), &topic); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Topic created", topic)
}

// List handles GET /api/admin/dsa/topics. Topics sort by name unless the
// caller asks otherwise, and each carries its computed question count.
func (h *TopicsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/dsa/topics, restricted to active
// topics.
func (h *TopicsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *TopicsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "parent_topic", "parent_topic")
	if q.Sort == "" {
		q.Sort = "name"
		q.Order = 1
	}
	return q
}

func (h *TopicsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Topics.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	if err := h.DSA.AttachQuestionCounts(c.Context(), page.Items); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/dsa/topics/:id
func (h *TopicsHandler) Get(c *fiber.Ctx) error {
	topic, err := h.Topics.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	count, err := h.DSA.QuestionCount(c.Context(), topic.ID.Hex())
	if err != nil {
		return utils.RepoError(c, err)
	}
	topic.QuestionCount = count
	return utils.Success(c, fiber.StatusOK, topic)
}

// Update handles PUT /api/admin/dsa/topics/:id
func (h *TopicsHandler) Update(c *fiber.Ctx) error {
	var upd models.TopicUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	topic, err := h.Topics.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Topic updated", topic)
}

// Delete handles DELETE /api/admin/dsa/topics/:id. Questions referencing
// the topic keep their dangling reference.
func (h *TopicsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Topics.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Topic deleted", nil)
}
