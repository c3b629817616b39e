package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillscan/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// historyMW guards the extraction history; nil leaves it open.
func Register(app *fiber.App, kw *handlers.KeywordsHandler, history *handlers.ExtractionsHandler, health *handlers.HealthHandler, historyMW fiber.Handler) {
	app.Get("/", kw.Home)
	app.Post("/extract-keywords", kw.Extract)
	app.Post("/extract-keywords/file", kw.ExtractFile)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	v1 := app.Group("/api/v1")
	ex := v1.Group("/extractions")
	if historyMW != nil {
		ex.Use(historyMW)
	}
	ex.Get("/", history.List)
	ex.Get("/:id", history.Get)
}
