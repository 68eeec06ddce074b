package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/contractdocs/docservice/internal/auth"
	"github.com/contractdocs/docservice/internal/config"
	"github.com/contractdocs/docservice/internal/database"
	"github.com/contractdocs/docservice/internal/handlers"
	"github.com/contractdocs/docservice/internal/middleware"
	"github.com/contractdocs/docservice/internal/utils"

	_ "github.com/contractdocs/docservice/docs/api" // Swagger docs
)

// @title DocService API
// @version 1.0.0
// @description Document and contract management service
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Auth primitives
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("docservice")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	authHandler := handlers.NewAuthHandler(db, hasher, tokens)
	docHandler := &handlers.DocumentHandler{DB: db}
	contractHandler := &handlers.ContractHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	requireBearer := middleware.RequireBearer(tokens)

	// Root and health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the club buddy!"})
	})
	app.Get("/health", healthHandler.Health)

	// Auth routes
	app.Post("/register/", authHandler.Register)
	app.Post("/token", authHandler.Token)
	app.Get("/protected/", requireBearer, authHandler.Protected)

	// API routes under /api/v1
	api := app.Group("/api/v1")
	api.Use(middleware.VersionMiddleware())

	// Document operations (DBO)
	dbo := api.Group("/DBO")
	dbo.Post("/upload/", requireBearer, docHandler.Upload)
	dbo.Get("/documents/:doc_id", docHandler.GetDocument)

	// Document access (ABS)
	abs := api.Group("/ABS")
	abs.Get("/all_documents", docHandler.AllDocuments)
	abs.Get("/documents/:doc_id", docHandler.GetDocumentDetail)
	abs.Get("/documents/:doc_id/download", docHandler.DownloadDocument)
	abs.Get("/client_documents/", requireBearer, docHandler.ClientDocuments)
	abs.Delete("/documents/:doc_id", docHandler.DeleteDocument)

	// Contract management (SM)
	sm := api.Group("/SM")
	sm.Post("/create_contract", contractHandler.CreateContract)
	sm.Get("/get_contract/:con_id", contractHandler.GetContract)
	sm.Get("/get_all_contract", contractHandler.GetAllContracts)
	sm.Delete("/delete_contract", contractHandler.DeleteContract)
	sm.Post("/connect_contract_document", contractHandler.ConnectContractDocument)
	sm.Get("/read_contract_document", contractHandler.ReadContractDocument)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
