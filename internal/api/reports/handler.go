package reports

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
	"github.com/temenos/rfp-assistant/internal/pkg/formatter"
	"github.com/temenos/rfp-assistant/internal/pkg/logger"
	"github.com/temenos/rfp-assistant/internal/pkg/response"
)

type Handler struct {
	store      ReportStore
	formatters *formatter.Factory
}

func NewHandler(store ReportStore, formatters *formatter.Factory) *Handler {
	return &Handler{
		store:      store,
		formatters: formatters,
	}
}

// Download handles GET /api/download/{filename}
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Download")
	filename := chi.URLParam(r, "filename")

	path, err := h.store.ResolveDownload(filename)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidFileType):
			ctxzap.Warn(ctx, "rejected download filename", zap.String("filename", filename))
			response.Error(w, http.StatusBadRequest, "invalid file type")
		case errors.Is(err, entity.ErrReportNotFound):
			response.Error(w, http.StatusNotFound, "file not found")
		default:
			ctxzap.Error(ctx, "failed to resolve download", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// ListReports handles GET /api/reports
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListReports")

	files, err := h.store.ListReports()
	if err != nil {
		ctxzap.Error(ctx, "failed to list reports", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, entity.ReportsResponse{Reports: files})
}

// ListDocuments handles GET /api/word-documents
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListDocuments")

	files, err := h.store.ListDocuments()
	if err != nil {
		ctxzap.Error(ctx, "failed to list word documents", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, entity.DocumentsResponse{Documents: files})
}

// ExportReport handles GET /api/reports/{filename}/export?format=md|pdf
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportReport")
	filename := chi.URLParam(r, "filename")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "md"
	}

	f, err := h.formatters.Create(format)
	if err != nil {
		ctxzap.Warn(ctx, "unsupported export format", zap.String("format", format))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := h.store.ReadReport(filename)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidFileType):
			response.Error(w, http.StatusBadRequest, "invalid file type")
		case errors.Is(err, entity.ErrReportNotFound):
			response.Error(w, http.StatusNotFound, "report not found")
		default:
			ctxzap.Error(ctx, "failed to read report", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	title, body, err := reportText(raw)
	if err != nil {
		ctxzap.Error(ctx, "failed to parse stored report", zap.String("filename", filename), zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := f.Format(title, body)
	if err != nil {
		ctxzap.Error(ctx, "failed to format report", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	exportName := strings.TrimSuffix(filename, ".json") + f.FileExtension()
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportName))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// ClearHistory handles POST /api/clear-history
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearHistory")

	cleared := h.store.ClearHistory(ctx)
	ctxzap.Info(ctx, "history cleared", zap.Int("files", len(cleared)))

	response.Success(w, entity.ClearHistoryResponse{
		Success:      true,
		ClearedFiles: cleared,
		Count:        len(cleared),
		Timestamp:    time.Now().Format(time.RFC3339),
	})
}
