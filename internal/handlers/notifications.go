package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// NotificationsHandler handles push notification routes.
type NotificationsHandler struct {
	Notifications *services.NotificationsService
}

// Create handles POST /api/admin/notifications
func (h *NotificationsHandler) Create(c *fiber.Ctx) error {
	var n models.PushNotification
	if err := c.BodyParser(&n); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if n.Title == "" || n.Message == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title and message are required")
	}
	if err := h.Notifications.Create(c.Context(), &n); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Notification created", n)
}

// List handles GET /api/admin/notifications
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	q := parseListQuery(c)
	eqFilter(c, &q, "status", "status")
	eqFilter(c, &q, "target", "target")
	page, err := h.Notifications.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/notifications/:id
func (h *NotificationsHandler) Get(c *fiber.Ctx) error {
	n, err := h.Notifications.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, n)
}

// Send handles POST /api/admin/notifications/:id/send
func (h *NotificationsHandler) Send(c *fiber.Ctx) error {
	n, err := h.Notifications.Send(c.Context(), c.Params("id"))
	if err != nil {
		if err == services.ErrAlreadySent {
			return utils.Error(c, fiber.StatusConflict, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Notification sent", n)
}

// Stats handles GET /api/admin/notifications/stats
func (h *NotificationsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Notifications.Statistics(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}

// Delete handles DELETE /api/admin/notifications/:id
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.Notifications.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Notification deleted", nil)
}
