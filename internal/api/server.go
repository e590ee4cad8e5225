package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	analysisapi "github.com/temenos/rfp-assistant/internal/api/analysis"
	"github.com/temenos/rfp-assistant/internal/api/docs"
	"github.com/temenos/rfp-assistant/internal/api/middleware"
	reportsapi "github.com/temenos/rfp-assistant/internal/api/reports"
	"github.com/temenos/rfp-assistant/internal/entity"
	"github.com/temenos/rfp-assistant/internal/pkg/response"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	analysisHandler *analysisapi.Handler,
	reportsHandler *reportsapi.Handler,
	version string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.Timeout(10 * time.Minute)) // batch runs are slow

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		// Health check endpoint
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, entity.HealthResponse{
				Status:    "healthy",
				Timestamp: time.Now().Format(time.RFC3339),
				Version:   version,
			})
		})

		analysisapi.RegisterRoutes(api, analysisHandler)
		reportsapi.RegisterRoutes(api, reportsHandler)
	})

	return r
}
