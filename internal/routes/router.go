package routes

import (
	"net/http"
	"time"

	"skyward/aerodesk/internal/api"
	"skyward/aerodesk/internal/db"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"
	"skyward/aerodesk/internal/middleware"
	"skyward/aerodesk/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes builds the full HTTP handler: global middleware, the
// public booking surface, the session-gated cabinet and the
// group-laddered staff console.
func RegisterRoutes(upSince time.Time, redisClient *redis.Client) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg, redisClient)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Session resolution is global; route groups decide what they require.
	r.Use(middleware.SessionMiddleware(deps.Services.Session))

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, redisClient, upSince))

	// Mail delivery workers drain the outbound stream.
	workers.InitWorkers(deps.Services.MailQueue, metricsReg)

	RegisterAPIRoutes(r, deps)

	return r
}
