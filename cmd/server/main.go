package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/careerguide/careerguide-api/internal/ai"
	"github.com/careerguide/careerguide-api/internal/auth"
	"github.com/careerguide/careerguide-api/internal/config"
	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/handlers"
	"github.com/careerguide/careerguide-api/internal/middleware"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/types"
	"github.com/careerguide/careerguide-api/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(client)

	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		generator, err = ai.NewGoogleAI(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		if err != nil {
			log.Fatalf("Failed to initialize AI client: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, AI endpoints disabled")
		generator = ai.Disabled{}
	}

	// Collections and repositories
	jobs := repository.New[models.Job](database.Wrap(db.Collection("jobs")), "title", "company", "description")
	internships := repository.New[models.Internship](database.Wrap(db.Collection("internships")), "title", "company", "description")
	scholarships := repository.New[models.Scholarship](database.Wrap(db.Collection("scholarships")), "title", "provider", "description")
	articles := repository.New[models.Article](database.Wrap(db.Collection("articles")), "title", "content", "author")
	questions := repository.New[models.Question](database.Wrap(db.Collection("dsa_questions")), "title", "description")
	topics := repository.New[models.Topic](database.Wrap(db.Collection("dsa_topics")), "name", "description")
	sheets := repository.New[models.Sheet](database.Wrap(db.Collection("dsa_sheets")), "name", "description")
	companies := repository.New[models.Company](database.Wrap(db.Collection("dsa_companies")), "name", "description", "industry")
	roadmaps := repository.New[models.Roadmap](database.Wrap(db.Collection("roadmaps")), "title", "description")
	adminUsers := repository.New[models.AdminUser](database.Wrap(db.Collection("admin_users")), "email", "username", "full_name")
	appUsers := repository.New[models.AppUser](database.Wrap(db.Collection("app_users")), "email", "full_name")
	submissions := repository.New[models.ContentSubmission](database.Wrap(db.Collection("content_submissions")))
	notifications := repository.New[models.PushNotification](database.Wrap(db.Collection("push_notifications")), "title", "message")
	toolTemplates := repository.New[models.CareerToolTemplate](database.Wrap(db.Collection("career_tool_templates")))
	toolUsage := repository.New[models.CareerToolUsage](database.Wrap(db.Collection("career_tool_usage")))

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(adminUsers, appUsers, tokens)
	dsaService := services.NewDSAService(questions, topics, sheets, companies)
	roadmapService := services.NewRoadmapService(roadmaps)
	toolsService := services.NewCareerToolsService(generator, toolTemplates, toolUsage, appUsers)
	submissionsService := services.NewSubmissionsService(submissions, map[string]database.Collection{
		"job":         jobs.Collection(),
		"internship":  internships.Collection(),
		"scholarship": scholarships.Collection(),
		"article":     articles.Collection(),
		"question":    questions.Collection(),
		"roadmap":     roadmaps.Collection(),
	})
	notificationsService := services.NewNotificationsService(notifications, appUsers, adminUsers)
	analyticsService := services.NewAnalyticsService(appUsers, adminUsers, map[string]database.Collection{
		"jobs":          jobs.Collection(),
		"internships":   internships.Collection(),
		"scholarships":  scholarships.Collection(),
		"articles":      articles.Collection(),
		"dsa_questions": questions.Collection(),
		"roadmaps":      roadmaps.Collection(),
	}, submissionsService, notificationsService, toolsService)

	// Handlers
	authHandler := &handlers.AuthHandler{Auth: authService}
	jobsHandler := &handlers.JobsHandler{Jobs: jobs}
	internshipsHandler := &handlers.InternshipsHandler{Internships: internships}
	scholarshipsHandler := &handlers.ScholarshipsHandler{Scholarships: scholarships}
	articlesHandler := &handlers.ArticlesHandler{Articles: articles}
	questionsHandler := &handlers.QuestionsHandler{Questions: questions, DSA: dsaService}
	topicsHandler := &handlers.TopicsHandler{Topics: topics, DSA: dsaService}
	sheetsHandler := &handlers.SheetsHandler{Sheets: sheets, DSA: dsaService}
	companiesHandler := &handlers.CompaniesHandler{Companies: companies, DSA: dsaService}
	roadmapsHandler := &handlers.RoadmapsHandler{Roadmaps: roadmaps, Service: roadmapService}
	toolsHandler := &handlers.CareerToolsHandler{Tools: toolsService}
	submissionsHandler := &handlers.SubmissionsHandler{Submissions: submissionsService}
	notificationsHandler := &handlers.NotificationsHandler{Notifications: notificationsService}
	generateHandler := &handlers.GenerateHandler{
		Generator:   generator,
		Jobs:        jobs,
		Internships: internships,
		Scholars:    scholarships,
		Questions:   questions,
	}
	analyticsHandler := &handlers.AnalyticsHandler{Analytics: analyticsService}
	healthHandler := &handlers.HealthHandler{Config: cfg, Client: client}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("careerguide-api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	api.Get("/health", healthHandler.Check)

	authUser := middleware.AuthUser(tokens)
	authAdmin := middleware.AuthAdmin(tokens)
	authSuper := middleware.AuthSuperAdmin(tokens)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.RegisterUser)
	authGroup.Post("/login", authHandler.LoginUser)
	authGroup.Get("/me", authUser, authHandler.MeUser)
	authGroup.Put("/profile", authUser, authHandler.UpdateProfile)
	authGroup.Post("/change-password", authUser, authHandler.ChangePasswordUser)
	authGroup.Post("/admin/register", authHandler.RegisterAdmin)
	authGroup.Post("/admin/login", authHandler.LoginAdmin)
	authGroup.Get("/admin/me", authAdmin, authHandler.MeAdmin)
	authGroup.Post("/admin/change-password", authAdmin, authHandler.ChangePasswordAdmin)
	authGroup.Post("/admin/sub-admins", authSuper, authHandler.CreateSubAdmin)
	authGroup.Get("/admin/sub-admins", authSuper, authHandler.ListSubAdmins)
	authGroup.Put("/admin/sub-admins/:id", authSuper, authHandler.UpdateSubAdmin)
	authGroup.Patch("/admin/sub-admins/:id/toggle-status", authSuper, authHandler.ToggleSubAdminStatus)
	authGroup.Delete("/admin/sub-admins/:id", authSuper, authHandler.DeleteSubAdmin)

	// Admin content management
	admin := api.Group("/admin", authAdmin)

	admin.Post("/jobs", jobsHandler.Create)
	admin.Post("/jobs/generate-ai", generateHandler.GenerateJob)
	admin.Get("/jobs", jobsHandler.List)
	admin.Get("/jobs/:id", jobsHandler.Get)
	admin.Put("/jobs/:id", jobsHandler.Update)
	admin.Delete("/jobs/:id", jobsHandler.Delete)

	admin.Post("/internships", internshipsHandler.Create)
	admin.Post("/internships/generate-ai", generateHandler.GenerateInternship)
	admin.Get("/internships", internshipsHandler.List)
	admin.Get("/internships/:id", internshipsHandler.Get)
	admin.Put("/internships/:id", internshipsHandler.Update)
	admin.Delete("/internships/:id", internshipsHandler.Delete)

	admin.Post("/scholarships", scholarshipsHandler.Create)
	admin.Post("/scholarships/generate-ai", generateHandler.GenerateScholarship)
	admin.Get("/scholarships", scholarshipsHandler.List)
	admin.Get("/scholarships/:id", scholarshipsHandler.Get)
	admin.Put("/scholarships/:id", scholarshipsHandler.Update)
	admin.Delete("/scholarships/:id", scholarshipsHandler.Delete)

	admin.Post("/articles", articlesHandler.Create)
	admin.Get("/articles", articlesHandler.List)
	admin.Get("/articles/:id", articlesHandler.Get)
	admin.Put("/articles/:id", articlesHandler.Update)
	admin.Patch("/articles/:id/toggle-publish", articlesHandler.TogglePublish)
	admin.Delete("/articles/:id", articlesHandler.Delete)

	admin.Post("/dsa/questions", questionsHandler.Create)
	admin.Post("/dsa/questions/generate-ai", generateHandler.GenerateQuestion)
	admin.Get("/dsa/questions/stats", questionsHandler.Stats)
	admin.Get("/dsa/questions", questionsHandler.List)
	admin.Get("/dsa/questions/:id", questionsHandler.Get)
	admin.Put("/dsa/questions/:id", questionsHandler.Update)
	admin.Delete("/dsa/questions/:id", questionsHandler.Delete)

	admin.Post("/dsa/topics", topicsHandler.Create)
	admin.Get("/dsa/topics", topicsHandler.List)
	admin.Get("/dsa/topics/:id", topicsHandler.Get)
	admin.Put("/dsa/topics/:id", topicsHandler.Update)
	admin.Delete("/dsa/topics/:id", topicsHandler.Delete)

	admin.Post("/dsa/sheets", sheetsHandler.Create)
	admin.Get("/dsa/sheets", sheetsHandler.List)
	admin.Get("/dsa/sheets/:id", sheetsHandler.Get)
	admin.Put("/dsa/sheets/:id", sheetsHandler.Update)
	admin.Patch("/dsa/sheets/:id/toggle-publish", sheetsHandler.TogglePublish)
	admin.Post("/dsa/sheets/:id/questions", sheetsHandler.AddQuestion)
	admin.Delete("/dsa/sheets/:id/questions/:questionId", sheetsHandler.RemoveQuestion)
	admin.Delete("/dsa/sheets/:id", sheetsHandler.Delete)

	admin.Post("/dsa/companies", companiesHandler.Create)
	admin.Get("/dsa/companies/stats", companiesHandler.Stats)
	admin.Get("/dsa/companies", companiesHandler.List)
	admin.Get("/dsa/companies/:id", companiesHandler.Get)
	admin.Put("/dsa/companies/:id", companiesHandler.Update)
	admin.Patch("/dsa/companies/:id/counters", companiesHandler.AdjustCounter)
	admin.Delete("/dsa/companies/:id", companiesHandler.Delete)

	admin.Post("/roadmaps", roadmapsHandler.Create)
	admin.Get("/roadmaps/stats", roadmapsHandler.Stats)
	admin.Get("/roadmaps", roadmapsHandler.List)
	admin.Get("/roadmaps/:id", roadmapsHandler.Get)
	admin.Put("/roadmaps/:id", roadmapsHandler.Update)
	admin.Patch("/roadmaps/:id/toggle-publish", roadmapsHandler.TogglePublish)
	admin.Post("/roadmaps/:id/nodes", roadmapsHandler.AddNode)
	admin.Put("/roadmaps/:id/nodes/:nodeId", roadmapsHandler.UpdateNode)
	admin.Delete("/roadmaps/:id/nodes/:nodeId", roadmapsHandler.DeleteNode)
	admin.Delete("/roadmaps/:id", roadmapsHandler.Delete)

	admin.Get("/submissions/stats", submissionsHandler.Stats)
	admin.Get("/submissions", submissionsHandler.List)
	admin.Get("/submissions/:id", submissionsHandler.Get)
	admin.Post("/submissions/:id/review", submissionsHandler.Review)

	admin.Post("/notifications", notificationsHandler.Create)
	admin.Get("/notifications/stats", notificationsHandler.Stats)
	admin.Get("/notifications", notificationsHandler.List)
	admin.Get("/notifications/:id", notificationsHandler.Get)
	admin.Post("/notifications/:id/send", notificationsHandler.Send)
	admin.Delete("/notifications/:id", notificationsHandler.Delete)

	admin.Get("/analytics/dashboard", analyticsHandler.Dashboard)

	admin.Get("/career-tools/templates", toolsHandler.ListTemplates)
	admin.Put("/career-tools/templates/:tool", toolsHandler.SetTemplate)
	admin.Get("/career-tools/stats", toolsHandler.UsageStats)

	// Public read-only surface
	user := api.Group("/user")
	user.Get("/jobs", jobsHandler.PublicList)
	user.Get("/jobs/:id", jobsHandler.PublicGet)
	user.Get("/internships", internshipsHandler.PublicList)
	user.Get("/internships/:id", internshipsHandler.PublicGet)
	user.Get("/scholarships", scholarshipsHandler.PublicList)
	user.Get("/scholarships/:id", scholarshipsHandler.PublicGet)
	user.Get("/articles", articlesHandler.PublicList)
	user.Get("/articles/:id", articlesHandler.PublicGet)
	user.Get("/dsa/questions", questionsHandler.PublicList)
	user.Get("/dsa/questions/:id", questionsHandler.PublicGet)
	user.Post("/dsa/questions/:id/submit", authUser, questionsHandler.Submit)
	user.Get("/dsa/topics", topicsHandler.PublicList)
	user.Get("/dsa/sheets", sheetsHandler.PublicList)
	user.Get("/dsa/sheets/:id", sheetsHandler.PublicGet)
	user.Get("/dsa/companies", companiesHandler.PublicList)
	user.Get("/roadmaps", roadmapsHandler.PublicList)
	user.Get("/roadmaps/:id", roadmapsHandler.PublicGet)
	user.Post("/roadmaps/:id/follow", authUser, roadmapsHandler.Follow)
	user.Post("/roadmaps/:id/unfollow", authUser, roadmapsHandler.Unfollow)
	user.Post("/submissions", authUser, submissionsHandler.Submit)

	// Career tools (end-user auth)
	tools := api.Group("/career-tools", authUser)
	tools.Get("/usage", toolsHandler.Usage)
	tools.Post("/:tool", toolsHandler.Run)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.Error(c, fiber.StatusNotFound, "Resource not found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	switch e := err.(type) {
	case *types.CustomError:
		code = e.Code
		message = e.Message
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
