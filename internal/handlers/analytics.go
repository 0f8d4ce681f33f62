package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// AnalyticsHandler handles the admin dashboard analytics route.
type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

// Dashboard handles GET /api/admin/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.Analytics.Dashboard(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, data)
}
