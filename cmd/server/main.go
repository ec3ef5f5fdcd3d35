// @title         resume-editor API
// @version       1.0
// @description   Backend for the resume editor: import resumes from JSON or PDF/DOCX, edit sections, enhance them with an LLM, and export or archive the result.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/mkravets/resume-editor/docs"

	// internal imports
	"github.com/mkravets/resume-editor/api/http"
	"github.com/mkravets/resume-editor/api/http/handlers"
	"github.com/mkravets/resume-editor/pkg/archive"
	"github.com/mkravets/resume-editor/pkg/config"
	"github.com/mkravets/resume-editor/pkg/enhance"
	"github.com/mkravets/resume-editor/pkg/health"
	healthpg "github.com/mkravets/resume-editor/pkg/health/checkers"
	"github.com/mkravets/resume-editor/pkg/llm"
	"github.com/mkravets/resume-editor/pkg/llm/openrouter"
	filerepo "github.com/mkravets/resume-editor/pkg/repository/file"
	pgrepo "github.com/mkravets/resume-editor/pkg/repository/postgres"
	"github.com/mkravets/resume-editor/pkg/resume"
	"github.com/mkravets/resume-editor/pkg/storage/postgres"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Saved-resume archive: PostgreSQL when configured, JSON files otherwise.
	var archiveRepo archive.Repository
	var readinessChecks []health.Checker
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		repo, err := pgrepo.NewArchiveRepository(pool)
		if err != nil {
			log.Fatalf("init archive repo: %v", err)
		}
		archiveRepo = repo
		readinessChecks = append(readinessChecks, healthpg.NewPostgresChecker(pool))
	} else {
		repo, err := filerepo.NewArchiveRepository(cfg.DataDir)
		if err != nil {
			log.Fatalf("init archive dir: %v", err)
		}
		archiveRepo = repo
		log.Printf("DATABASE_URL not set, archiving resumes to %s/", cfg.DataDir)
	}

	// Enhancement gateway: LLM when a key is configured, canned content otherwise.
	var chatModel llm.ChatModel
	if cfg.OpenRouterAPIKey != "" {
		chatModel = openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
	} else {
		log.Print("OPENROUTER_API_KEY not set, serving canned enhancements")
	}

	store := resume.NewStore()

	healthHandler := handlers.NewHealthHandler(health.NewService(readinessChecks...))
	editorHandler := handlers.NewEditorHandler(store)
	uploadHandler := handlers.NewUploadHandler(store, int64(cfg.MaxUploadMB)<<20)
	archiveHandler := handlers.NewArchiveHandler(store, archiveRepo)
	enhanceHandler := handlers.NewEnhanceHandler(enhance.NewService(chatModel))

	// Register routes
	http.Register(app, healthHandler, editorHandler, uploadHandler, archiveHandler, enhanceHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
