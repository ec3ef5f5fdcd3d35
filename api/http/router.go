package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/resume-editor/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, editor *handlers.EditorHandler, upload *handlers.UploadHandler, arch *handlers.ArchiveHandler, enhance *handlers.EnhanceHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// The single editable resume aggregate
	r := v1.Group("/resume")
	r.Get("/", editor.Get)
	r.Post("/demo", editor.LoadDemo)
	r.Post("/reset", editor.Reset)
	r.Patch("/personal-info", editor.UpdatePersonalInfo)
	r.Put("/summary", editor.UpdateSummary)

	r.Post("/experience", editor.AddExperience)
	r.Patch("/experience/:id", editor.UpdateExperience)
	r.Delete("/experience/:id", editor.RemoveExperience)

	r.Post("/education", editor.AddEducation)
	r.Patch("/education/:id", editor.UpdateEducation)
	r.Delete("/education/:id", editor.RemoveEducation)

	r.Post("/skills", editor.AddSkill)
	r.Patch("/skills/:id", editor.UpdateSkill)
	r.Delete("/skills/:id", editor.RemoveSkill)

	r.Post("/projects", editor.AddProject)
	r.Patch("/projects/:id", editor.UpdateProject)
	r.Delete("/projects/:id", editor.RemoveProject)

	// Import / extraction
	r.Post("/import", upload.Import)
	r.Post("/parse", upload.Parse)

	// Export and the saved-resume archive
	r.Get("/export", arch.Export)
	r.Post("/save", arch.Save)
	v1.Get("/resumes", arch.List)
	v1.Get("/resumes/:id", arch.Get)

	// Section enhancement
	r.Post("/enhance", enhance.Enhance)
}
