package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/middleware"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// CareerToolsHandler handles the AI career tool routes.
type CareerToolsHandler struct {
	Tools *services.CareerToolsService
}

// Run handles POST /api/career-tools/:tool. The body is a flat map of
// template inputs; the tool name selects the prompt template.
func (h *CareerToolsHandler) Run(c *fiber.Ctx) error {
	inputs := map[string]string{}
	if err := c.BodyParser(&inputs); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.ClaimsFrom(c)
	output, err := h.Tools.Run(c.Context(), claims.Subject, c.Params("tool"), inputs)
	if err != nil {
		if err == services.ErrUnknownTool {
			return utils.Error(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"output": output})
}

// Usage handles GET /api/career-tools/usage, listing the caller's history.
func (h *CareerToolsHandler) Usage(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	page, err := h.Tools.UserUsage(c.Context(), claims.Subject, parseListQuery(c))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// ListTemplates handles GET /api/admin/career-tools/templates
func (h *CareerToolsHandler) ListTemplates(c *fiber.Ctx) error {
	page, err := h.Tools.ListTemplates(c.Context(), parseListQuery(c))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// SetTemplate handles PUT /api/admin/career-tools/templates/:tool
func (h *CareerToolsHandler) SetTemplate(c *fiber.Ctx) error {
	var body struct {
		PromptTemplate string `json:"prompt_template"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.PromptTemplate == "" {
		return utils.Error(c, fiber.StatusBadRequest, "prompt_template is required")
	}
	template, err := h.Tools.SetTemplate(c.Context(), c.Params("tool"), body.PromptTemplate)
	if err != nil {
		if err == services.ErrUnknownTool {
			return utils.Error(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Template saved", template)
}

// UsageStats handles GET /api/admin/career-tools/stats
func (h *CareerToolsHandler) UsageStats(c *fiber.Ctx) error {
	stats, err := h.Tools.UsageStatistics(c.Context())
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}
