package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/ai"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// GenerateHandler handles the admin generate-then-persist AI endpoints.
// When generated output cannot be parsed, a minimal entity built from the
// request inputs is stored instead; generation failures surface as errors
// but never crash the endpoint.
type GenerateHandler struct {
	Generator   ai.Generator
	Jobs        *repository.Repository[models.Job, *models.Job]
	Internships *repository.Repository[models.Internship, *models.Internship]
	Scholars    *repository.Repository[models.Scholarship, *models.Scholarship]
	Questions   *repository.Repository[models.Question, *models.Question]
}

// GenerateJob handles POST /api/admin/jobs/generate-ai
func (h *GenerateHandler) GenerateJob(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.Company == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title and company are required")
	}

	raw, err := h.Generator.Generate(c.Context(), ai.JobPrompt(req.Title, req.Company, req.Location))
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Generation failed: "+err.Error())
	}

	job := models.NewJob()
	if err := ai.DecodeJSON(raw, &job); err != nil {
		job = ai.FallbackJob(req.Title, req.Company, req.Location)
	}
	job.IsActive = true
	if err := h.Jobs.Create(c.Context(), &job); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Job generated", job)
}

// GenerateInternship handles POST /api/admin/internships/generate-ai
func (h *GenerateHandler) GenerateInternship(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.Company == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title and company are required")
	}

	raw, err := h.Generator.Generate(c.Context(), ai.InternshipPrompt(req.Title, req.Company, req.Location))
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Generation failed: "+err.Error())
	}

	internship := models.NewInternship()
	if err := ai.DecodeJSON(raw, &internship); err != nil {
		internship = ai.FallbackInternship(req.Title, req.Company, req.Location)
	}
	internship.IsActive = true
	if err := h.Internships.Create(c.Context(), &internship); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Internship generated", internship)
}

// GenerateScholarship handles POST /api/admin/scholarships/generate-ai
func (h *GenerateHandler) GenerateScholarship(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Provider string `json:"provider"`
		Country  string `json:"country"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.Provider == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title and provider are required")
	}

	raw, err := h.Generator.Generate(c.Context(), ai.ScholarshipPrompt(req.Title, req.Provider, req.Country))
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Generation failed: "+err.Error())
	}

	scholarship := models.NewScholarship()
	if err := ai.DecodeJSON(raw, &scholarship); err != nil {
		scholarship = ai.FallbackScholarship(req.Title, req.Provider, req.Country)
	}
	scholarship.IsActive = true
	if err := h.Scholars.Create(c.Context(), &scholarship); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Scholarship generated", scholarship)
}

// GenerateQuestion handles POST /api/admin/dsa/questions/generate-ai
func (h *GenerateHandler) GenerateQuestion(c *fiber.Ctx) error {
	var req struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Topic == "" {
		return utils.Error(c, fiber.StatusBadRequest, "topic is required")
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	raw, err := h.Generator.Generate(c.Context(), ai.QuestionPrompt(req.Topic, req.Difficulty))
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Generation failed: "+err.Error())
	}

	question := models.NewQuestion()
	if err := ai.DecodeJSON(raw, &question); err != nil {
		question = ai.FallbackQuestion(req.Topic, req.Difficulty)
	}
	question.IsActive = true
	question.TotalSubmissions = 0
	question.TotalAccepted = 0
	question.AcceptanceRate = nil
	if err := h.Questions.Create(c.Context(), &question); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Question generated", question)
}
