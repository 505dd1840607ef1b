package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"boltresume/resume-ai/internal/config"
	"boltresume/resume-ai/internal/handlers"
	"boltresume/resume-ai/internal/middleware"
	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Printf("✅ Config loaded successfully (mode: %s)", cfg.Flow.Mode)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	validator := services.NewRequestValidator(cfg.Validation)

	flowClient, err := services.NewFlowClientFromConfig(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize flow client: %v", err)
	}
	log.Println("✅ Flow client initialized")

	rankingService := services.NewRankingService(validator, flowClient)
	suggestionService := services.NewSuggestionService(validator, flowClient)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(storageService, pdfParser, cfg.Storage.MaxFileSize)
	rankHandler := handlers.NewRankHandler(rankingService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	sessionHandler := handlers.NewSessionHandler(validator, cfg.Session.CookieName, cfg.Session.MaxAge)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume AI API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		BodyLimit:    handlers.UploadBodyLimit(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Use(middleware.Session(cfg.Session.CookieName))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Mode:   string(cfg.Flow.Mode),
			Time:   time.Now(),
		})
	})

	// API endpoints
	api.Post("/parse-pdf", uploadHandler.HandleParsePDF)
	api.Post("/rank", rankHandler.HandleRank)
	api.Post("/suggestions", suggestionHandler.HandleSuggest)

	api.Get("/session", sessionHandler.HandleGetSession)
	api.Post("/session/login", sessionHandler.HandleLogin)
	api.Post("/session/logout", sessionHandler.HandleLogout)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume AI API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/parse-pdf",
				"POST /api/v1/rank",
				"POST /api/v1/suggestions",
				"GET /api/v1/session",
				"POST /api/v1/session/login",
				"POST /api/v1/session/logout",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
