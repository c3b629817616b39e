package http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/artem13815/skillscan/pkg/metrics"
)

// Use installs the common middleware chain: panic recovery, request ids,
// access log and request metrics.
func Use(app *fiber.App, m *metrics.Metrics) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(accessLog(slog.Default().With("component", "http"), m))
}

// MountMetrics exposes the prometheus scrape endpoint at /metrics.
func MountMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(g)))
}

func accessLog(log *slog.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// отдаём ошибку стандартному обработчику, чтобы статус был выставлен
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		took := time.Since(start)
		status := c.Response().StatusCode()

		path := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			path = r.Path
		}
		m.ObserveHTTP(c.Method(), path, strconv.Itoa(status), took)

		log.Info("request",
			"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", took,
		)
		return nil
	}
}
