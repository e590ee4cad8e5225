package reports

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers report and document routes on the /api sub-router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/download/{filename}", h.Download)
	r.Get("/reports", h.ListReports)
	r.Get("/reports/{filename}/export", h.ExportReport)
	r.Get("/word-documents", h.ListDocuments)
	r.Post("/clear-history", h.ClearHistory)
}
