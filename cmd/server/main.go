// @title         skillscan API
// @version       1.0
// @description   Извлечение ключевых навыков и технологий из текста вакансий и резюме.
// @BasePath      /
// @schemes       http
// @host          localhost:5002
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен для истории извлечений. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artem13815/skillscan/docs"
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"

	// internal imports
	"github.com/artem13815/skillscan/api/http"
	"github.com/artem13815/skillscan/api/http/handlers"
	"github.com/artem13815/skillscan/pkg/config"
	"github.com/artem13815/skillscan/pkg/health"
	"github.com/artem13815/skillscan/pkg/health/checkers"
	"github.com/artem13815/skillscan/pkg/keywords"
	"github.com/artem13815/skillscan/pkg/logger"
	"github.com/artem13815/skillscan/pkg/metrics"
	"github.com/artem13815/skillscan/pkg/nlp"
	"github.com/artem13815/skillscan/pkg/nlp/prose"
	pgrepo "github.com/artem13815/skillscan/pkg/repository/postgres"
	"github.com/artem13815/skillscan/pkg/security/jwt"
	"github.com/artem13815/skillscan/pkg/storage/postgres"
	"github.com/artem13815/skillscan/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("main")

	if err := run(cfg, log, prometheus.DefaultRegisterer, prometheus.DefaultGatherer); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run wires the service and blocks until the listener stops.
// Every early return goes through the deferred closes.
func run(cfg config.Config, log *slog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) error {
	ctx := context.Background()
	m := metrics.New(reg)

	// NLP pipeline and matcher. A failure here leaves the service up but not ready.
	var pipeline nlp.Pipeline
	var matcher *keywords.Matcher
	if p, err := prose.New(); err != nil {
		log.Error("failed to load language pipeline", "error", err)
	} else {
		pipeline = p
		log.Info("language pipeline loaded")
		vocab, err := vocabulary(cfg.VocabularyFile)
		if err != nil {
			log.Error("failed to load vocabulary file", "path", cfg.VocabularyFile, "error", err)
		} else if matcher, err = keywords.NewMatcher(p, vocab); err != nil {
			log.Error("failed to initialize phrase matcher", "error", err)
		} else {
			log.Info("phrase matcher initialized", "patterns", matcher.Size())
		}
	}

	opts := []keywords.Option{keywords.WithMetrics(m)}
	readiness := []health.Checker{}

	// Extraction history (optional)
	if cfg.HistoryEnabled() {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{
			MaxConns:       int32(cfg.DBMaxConns),
			ConnectTimeout: cfg.DBConnectTimeout,
		})
		if err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer pool.Close()
		repo, err := pgrepo.NewExtractionRepository(ctx, pool)
		if err != nil {
			return fmt.Errorf("init extraction repo: %w", err)
		}
		opts = append(opts, keywords.WithRepository(repo))
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
		log.Info("extraction history enabled")
	}

	// Result cache (optional)
	if cfg.CacheEnabled() {
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		defer rdb.Close()
		opts = append(opts, keywords.WithCache(redis.NewCache(rdb, cfg.CacheTTL)))
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
		log.Info("result cache enabled", "ttl", cfg.CacheTTL)
	}

	svc := keywords.NewService(pipeline, matcher, opts...)
	readiness = append([]health.Checker{checkers.NewNLPChecker(svc)}, readiness...)

	// JWT auth middleware for the history routes
	var historyMW fiber.Handler
	if cfg.JWTSecret != "" {
		historyMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := fiber.New(fiber.Config{
		AppName:   "skillscan",
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	http.Use(app, m)
	http.Register(app,
		handlers.NewKeywordsHandler(svc, cfg.MaxUploadBytes),
		handlers.NewExtractionsHandler(svc),
		handlers.NewHealthHandler(health.NewService(readiness...)),
		historyMW,
	)
	http.MountMetrics(app, gatherer)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	// Start server
	log.Info("HTTP server listening", "port", cfg.Port)
	return app.Listen(":" + cfg.Port)
}

func vocabulary(path string) ([]string, error) {
	if path == "" {
		return keywords.Vocabulary(), nil
	}
	extra, err := keywords.LoadVocabularyFile(path)
	if err != nil {
		return nil, err
	}
	return keywords.Vocabulary(extra...), nil
}

