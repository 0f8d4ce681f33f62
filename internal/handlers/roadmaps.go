package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// RoadmapsHandler handles roadmap routes.
type RoadmapsHandler struct {
	Roadmaps *repository.Repository[models.Roadmap, *models.Roadmap]
	Service  *services.RoadmapService
}

// Create handles POST /api/admin/roadmaps
func (h *RoadmapsHandler) Create(c *fiber.Ctx) error {
	roadmap := models.NewRoadmap()
	if err := c.BodyParser(&roadmap); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	roadmap.ViewsCount = 0
	roadmap.FollowersCount = 0
	if err := h.Service.Create(c.Context(), &roadmap); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Roadmap created", roadmap)
}

// List handles GET /api/admin/roadmaps
func (h *RoadmapsHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_published", "is_published")
	boolFilter(c, &q, "is_active", "is_active")
	return h.list(c, q)
}

// PublicList handles GET /api/user/roadmaps, restricted to active,
// published roadmaps.
func (h *RoadmapsHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_published"] = true
	q.Eq["is_active"] = true
	return h.list(c, q)
}

func (h *RoadmapsHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "category", "category")
	eqFilter(c, &q, "subcategory", "subcategory")
	eqFilter(c, &q, "difficulty_level", "difficulty_level")
	eqFilter(c, &q, "tag", "tags")
	return q
}

func (h *RoadmapsHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Roadmaps.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/roadmaps/:id
func (h *RoadmapsHandler) Get(c *fiber.Ctx) error {
	roadmap, err := h.Roadmaps.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, roadmap)
}

// PublicGet handles GET /api/user/roadmaps/:id. Each read of a published
// roadmap bumps its view counter.
func (h *RoadmapsHandler) PublicGet(c *fiber.Ctx) error {
	roadmap, err := h.Roadmaps.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !roadmap.IsPublished || !roadmap.IsActive {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	if err := h.Service.RecordView(c.Context(), roadmap); err != nil {
		return utils.RepoError(c, err)
	}
	roadmap.ViewsCount++
	return utils.Success(c, fiber.StatusOK, roadmap)
}

// Update handles PUT /api/admin/roadmaps/:id
func (h *RoadmapsHandler) Update(c *fiber.Ctx) error {
	var upd models.RoadmapUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	roadmap, err := h.Service.Update(c.Context(), c.Params("id"), upd)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Roadmap updated", roadmap)
}

// TogglePublish handles PATCH /api/admin/roadmaps/:id/toggle-publish
func (h *RoadmapsHandler) TogglePublish(c *fiber.Ctx) error {
	roadmap, err := h.Roadmaps.Toggle(c.Context(), c.Params("id"), "is_published")
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Roadmap publish state toggled", roadmap)
}

// AddNode handles POST /api/admin/roadmaps/:id/nodes
func (h *RoadmapsHandler) AddNode(c *fiber.Ctx) error {
	var node models.RoadmapNode
	if err := c.BodyParser(&node); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	roadmap, err := h.Service.AddNode(c.Context(), c.Params("id"), node)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Node added", roadmap)
}

// UpdateNode handles PUT /api/admin/roadmaps/:id/nodes/:nodeId
func (h *RoadmapsHandler) UpdateNode(c *fiber.Ctx) error {
	var node models.RoadmapNode
	if err := c.BodyParser(&node); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	roadmap, err := h.Service.UpdateNode(c.Context(), c.Params("id"), c.Params("nodeId"), node)
	if err != nil {
		if err == services.ErrNodeNotFound {
			return utils.Error(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Node updated", roadmap)
}

// DeleteNode handles DELETE /api/admin/roadmaps/:id/nodes/:nodeId
func (h *RoadmapsHandler) DeleteNode(c *fiber.Ctx) error {
	roadmap, err := h.Service.DeleteNode(c.Context(), c.Params("id"), c.Params("nodeId"))
	if err != nil {
		if err == services.ErrNodeNotFound {
			return utils.Error(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Node deleted", roadmap)
}

// Follow handles POST /api/user/roadmaps/:id/follow
func (h *RoadmapsHandler) Follow(c *fiber.Ctx) error {
	roadmap, err := h.Service.Follow(c.Context(), c.Params("id"), 1)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Roadmap followed", roadmap)
}

// Unfollow handles POST /api/user/roadmaps/:id/unfollow
func (h *RoadmapsHandler) Unfollow(c *fiber.Ctx) error {
	roadmap, err := h.Service.Follow(c.Context(), c.Params("id"), -1)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Roadmap unfollowed", roadmap)
}

// Stats handles GET /api/admin/roadmaps/stats
func (h *RoadmapsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Service.Statistics(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}

// Delete handles DELETE /api/admin/roadmaps/:id
func (h *RoadmapsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Roadmaps.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Roadmap deleted", nil)
}
