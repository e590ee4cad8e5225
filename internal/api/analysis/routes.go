package analysis

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers analysis routes on the /api sub-router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/test-connection", h.TestConnection)
	r.Get("/pillars", h.ListPillars)
	r.Get("/models", h.ListModels)
	r.Post("/analyze", h.Analyze)
	r.Post("/batch-analyze", h.BatchAnalyze)
	r.Post("/generate-word", h.GenerateWord)
	r.Post("/generate-combined-word", h.GenerateCombinedWord)
}
