package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerguide/careerguide-api/internal/config"
	"github.com/careerguide/careerguide-api/internal/services"
)

// HealthHandler handles the health probe route.
type HealthHandler struct {
	Config *config.Config
	Client *mongo.Client
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.Client)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
