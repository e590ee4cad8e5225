package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
	"github.com/temenos/rfp-assistant/internal/pkg/logger"
	"github.com/temenos/rfp-assistant/internal/pkg/response"
	"github.com/temenos/rfp-assistant/internal/pkg/validator"
)

const remoteUnavailableMessage = "RAG API is not available"

type Handler struct {
	usecase   AnalysisUsecase
	store     AnalysisStore
	generator DocumentGenerator
	validator *validator.Validator
}

func NewHandler(
	usecase AnalysisUsecase,
	store AnalysisStore,
	generator DocumentGenerator,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:   usecase,
		store:     store,
		generator: generator,
		validator: validator,
	}
}

// TestConnection handles GET /api/test-connection
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "TestConnection")

	connected := h.usecase.TestConnection(ctx)
	response.Success(w, entity.ConnectionResponse{
		Connected: connected,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ListPillars handles GET /api/pillars
func (h *Handler) ListPillars(w http.ResponseWriter, r *http.Request) {
	pillars := entity.PillarNames()
	response.Success(w, entity.PillarsResponse{
		Pillars: pillars,
		Count:   len(pillars),
	})
}

// ListModels handles GET /api/models
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	models := entity.AvailableModels()
	response.Success(w, entity.ModelsResponse{
		Models: models,
		Count:  len(models),
	})
}

// Analyze handles POST /api/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var req entity.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateAnalyze(&req); err != nil {
		ctxzap.Warn(ctx, "invalid analyze request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "starting analysis",
		zap.String("pillar", req.Pillar),
		zap.Strings("products", req.Products),
		zap.String("region", req.Region),
	)

	combined, err := h.usecase.AnalyzeCombined(ctx, req.Region, req.Products, req.Pillar)
	if err != nil {
		h.respondAnalysisError(ctx, w, err)
		return
	}

	path, err := h.store.SaveCombined(ctx, combined)
	if err != nil {
		ctxzap.Error(ctx, "failed to persist combined analysis", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Document rendering is best effort; the JSON report already exists.
	wordPath, err := h.generator.GenerateCombinedDocument(ctx, combined)
	if err != nil {
		ctxzap.Warn(ctx, "failed to generate combined word document", zap.Error(err))
		wordPath = ""
	}

	resp := entity.AnalyzeResponse{
		Success:          true,
		CombinedAnalysis: combined,
		Filepath:         path,
		WordFilepath:     wordPath,
		Timestamp:        time.Now().Format(time.RFC3339),
	}
	if wordPath != "" {
		resp.WordFilename = filepath.Base(wordPath)
	}
	response.Success(w, resp)
}

// BatchAnalyze handles POST /api/batch-analyze
func (h *Handler) BatchAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "BatchAnalyze")

	var req entity.BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateBatchAnalyze(&req); err != nil {
		ctxzap.Warn(ctx, "invalid batch-analyze request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]entity.BatchItemResult, 0, len(req.Products)*len(req.Pillars))
	summary := entity.BatchSummary{}

	for _, product := range req.Products {
		modelID := entity.ModelForProduct(product)

		for _, pillar := range req.Pillars {
			summary.Total++

			analysis, err := h.usecase.AnalyzePillar(ctx, req.Region, modelID, product, pillar)
			if err != nil {
				// Remote unavailability kills the whole batch; any other
				// failure is recorded per item and the batch continues.
				if errors.Is(err, entity.ErrRemoteUnavailable) {
					h.respondAnalysisError(ctx, w, err)
					return
				}
				summary.Failed++
				results = append(results, entity.BatchItemResult{
					Product: product,
					Pillar:  pillar,
					Success: false,
					Error:   err.Error(),
				})
				continue
			}

			// An analysis that cannot be persisted counts as a failed item.
			path, err := h.store.SaveAnalysis(ctx, analysis)
			if err != nil {
				ctxzap.Error(ctx, "failed to persist batch analysis",
					zap.String("product", product),
					zap.String("pillar", pillar),
					zap.Error(err),
				)
				summary.Failed++
				results = append(results, entity.BatchItemResult{
					Product: product,
					Pillar:  pillar,
					Success: false,
					Error:   err.Error(),
				})
				continue
			}

			item := entity.BatchItemResult{
				Product:  product,
				Pillar:   pillar,
				Success:  true,
				Filepath: path,
			}

			wordPath, err := h.generator.GenerateAnalysisDocument(ctx, documentMetadata(analysis), analysis)
			if err != nil {
				ctxzap.Warn(ctx, "failed to generate batch word document",
					zap.String("product", product),
					zap.String("pillar", pillar),
					zap.Error(err),
				)
			} else {
				item.WordFilepath = wordPath
				item.WordFilename = filepath.Base(wordPath)
			}

			summary.Successful++
			results = append(results, item)
		}
	}

	response.Success(w, entity.BatchAnalyzeResponse{
		Success:   true,
		Results:   results,
		Summary:   summary,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// GenerateWord handles POST /api/generate-word
func (h *Handler) GenerateWord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateWord")

	var req entity.GenerateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateGenerateWord(&req); err != nil {
		ctxzap.Warn(ctx, "invalid generate-word request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := h.generator.GenerateAnalysisDocument(ctx, *req.Metadata, req.Analysis)
	if err != nil {
		ctxzap.Error(ctx, "failed to generate word document", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to create Word document")
		return
	}

	response.Success(w, entity.GenerateWordResponse{
		Success:   true,
		Filepath:  path,
		Filename:  filepath.Base(path),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// GenerateCombinedWord handles POST /api/generate-combined-word
func (h *Handler) GenerateCombinedWord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateCombinedWord")

	var combined entity.CombinedAnalysis
	if err := json.NewDecoder(r.Body).Decode(&combined); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateCombinedAnalysis(&combined); err != nil {
		ctxzap.Warn(ctx, "invalid generate-combined-word request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := h.generator.GenerateCombinedDocument(ctx, &combined)
	if err != nil {
		ctxzap.Error(ctx, "failed to generate combined word document", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to create combined Word document")
		return
	}

	response.Success(w, entity.GenerateWordResponse{
		Success:   true,
		Filepath:  path,
		Filename:  filepath.Base(path),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// respondAnalysisError maps analyzer failures to HTTP statuses.
func (h *Handler) respondAnalysisError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnknownPillar):
		ctxzap.Warn(ctx, "unknown pillar requested", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrRemoteUnavailable):
		ctxzap.Error(ctx, "remote RAG service unavailable", zap.Error(err))
		response.JSON(w, http.StatusServiceUnavailable, entity.ServiceUnavailableResponse{
			Success: false,
			Error:   remoteUnavailableMessage,
			Details: err.Error(),
		})
	default:
		ctxzap.Error(ctx, "analysis failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func documentMetadata(a *entity.PillarAnalysis) entity.DocumentMetadata {
	return entity.DocumentMetadata{
		Pillar:       a.Pillar,
		Product:      a.Product,
		Region:       a.Region,
		Timestamp:    a.Timestamp,
		APICallsMade: a.APICallsMade,
	}
}
