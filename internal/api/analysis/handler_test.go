package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
	"github.com/temenos/rfp-assistant/internal/integration/rag"
	"github.com/temenos/rfp-assistant/internal/pkg/validator"
	"github.com/temenos/rfp-assistant/internal/storage"
	usecase "github.com/temenos/rfp-assistant/internal/usecase/analysis"
)

// stubGenerator avoids rendering real documents in handler tests.
type stubGenerator struct {
	dir string
}

func (g *stubGenerator) GenerateAnalysisDocument(ctx context.Context, meta entity.DocumentMetadata, a *entity.PillarAnalysis) (string, error) {
	return g.write(storage.SanitizeName(a.Pillar) + "_analysis.docx")
}

func (g *stubGenerator) GenerateCombinedDocument(ctx context.Context, c *entity.CombinedAnalysis) (string, error) {
	return g.write("combined_" + storage.SanitizeName(c.Pillar) + "_analysis.docx")
}

func (g *stubGenerator) write(name string) (string, error) {
	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, []byte("docx"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// failingStore simulates a persistence layer that cannot write.
type failingStore struct{}

func (s *failingStore) SaveAnalysis(ctx context.Context, a *entity.PillarAnalysis) (string, error) {
	return "", fmt.Errorf("disk full")
}

func (s *failingStore) SaveCombined(ctx context.Context, c *entity.CombinedAnalysis) (string, error) {
	return "", fmt.Errorf("disk full")
}

// unavailableUsecase simulates an unreachable remote service.
type unavailableUsecase struct{}

func (u *unavailableUsecase) TestConnection(ctx context.Context) bool { return false }

func (u *unavailableUsecase) AnalyzePillar(ctx context.Context, region, modelID, product, pillar string) (*entity.PillarAnalysis, error) {
	return nil, fmt.Errorf("%w: connection refused", entity.ErrRemoteUnavailable)
}

func (u *unavailableUsecase) AnalyzeCombined(ctx context.Context, region string, products []string, pillar string) (*entity.CombinedAnalysis, error) {
	return nil, fmt.Errorf("%w: connection refused", entity.ErrRemoteUnavailable)
}

func newDemoRouter(t *testing.T) http.Handler {
	t.Helper()
	base := t.TempDir()

	store := storage.NewStore(filepath.Join(base, "reports"), filepath.Join(base, "word_documents"), zap.NewNop())
	require.NoError(t, store.EnsureDirs())

	uc := usecase.NewUsecase(rag.NewDemoConnector(zap.NewNop()), zap.NewNop())
	h := NewHandler(uc, store, &stubGenerator{dir: filepath.Join(base, "word_documents")}, validator.NewValidator())

	return newRouter(h)
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		RegisterRoutes(api, h)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeDemoMode(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/analyze", entity.AnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillar:   "Security",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp entity.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.NotNil(t, resp.CombinedAnalysis)
	require.Len(t, resp.CombinedAnalysis.ProductAnalyses, 1)
	assert.Len(t, resp.CombinedAnalysis.ProductAnalyses[0].Analysis.Answers, 2)
	assert.Equal(t, 2, resp.CombinedAnalysis.TotalAPICalls)
	assert.True(t, strings.HasSuffix(resp.WordFilename, ".docx"), resp.WordFilename)

	_, err := os.Stat(resp.Filepath)
	assert.NoError(t, err)
}

func TestAnalyzeMissingField(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/analyze", entity.AnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pillar")
}

func TestAnalyzeUnknownPillar(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/analyze", entity.AnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillar:   "Blockchain",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRemoteUnavailable(t *testing.T) {
	h := NewHandler(&unavailableUsecase{}, nil, &stubGenerator{dir: t.TempDir()}, validator.NewValidator())
	router := newRouter(h)

	rec := postJSON(t, router, "/api/analyze", entity.AnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillar:   "Security",
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp entity.ServiceUnavailableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "RAG API is not available", resp.Error)
	assert.Contains(t, resp.Details, "connection refused")
}

func TestBatchAnalyzeDemoMode(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/batch-analyze", entity.BatchAnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact", "Payments"},
		Pillars:  []string{"Security", "Architecture"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp entity.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, entity.BatchSummary{Total: 4, Successful: 4, Failed: 0}, resp.Summary)
	require.Len(t, resp.Results, 4)

	// Products iterate in the outer loop.
	assert.Equal(t, "Transact", resp.Results[0].Product)
	assert.Equal(t, "Security", resp.Results[0].Pillar)
	assert.Equal(t, "Payments", resp.Results[2].Product)
	for _, item := range resp.Results {
		assert.True(t, item.Success)
		assert.NotEmpty(t, item.Filepath)
		assert.True(t, strings.HasSuffix(item.WordFilename, ".docx"))
	}
}

func TestBatchAnalyzeRecordsPerItemFailures(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/batch-analyze", entity.BatchAnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillars:  []string{"Security", "Bogus"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, entity.BatchSummary{Total: 2, Successful: 1, Failed: 1}, resp.Summary)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestBatchAnalyzeCountsPersistFailureAsFailed(t *testing.T) {
	uc := usecase.NewUsecase(rag.NewDemoConnector(zap.NewNop()), zap.NewNop())
	h := NewHandler(uc, &failingStore{}, &stubGenerator{dir: t.TempDir()}, validator.NewValidator())
	router := newRouter(h)

	rec := postJSON(t, router, "/api/batch-analyze", entity.BatchAnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillars:  []string{"Security"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, entity.BatchSummary{Total: 1, Successful: 0, Failed: 1}, resp.Summary)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Success)
	assert.Empty(t, resp.Results[0].Filepath)
	assert.Contains(t, resp.Results[0].Error, "disk full")
}

func TestBatchAnalyzeAbortsWhenRemoteUnavailable(t *testing.T) {
	h := NewHandler(&unavailableUsecase{}, nil, &stubGenerator{dir: t.TempDir()}, validator.NewValidator())
	router := newRouter(h)

	rec := postJSON(t, router, "/api/batch-analyze", entity.BatchAnalyzeRequest{
		Region:   "GLOBAL",
		ModelID:  "x",
		Products: []string{"Transact"},
		Pillars:  []string{"Security"},
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTestConnectionDemoMode(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test-connection", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ConnectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Connected)
}

func TestListPillarsAndModels(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pillars", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pillars entity.PillarsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pillars))
	assert.Equal(t, 6, pillars.Count)
	assert.Equal(t, "Architecture", pillars.Pillars[0])

	req = httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var models entity.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &models))
	assert.Equal(t, models.Count, len(models.Models))
	assert.Contains(t, models.Models, "TechnologyOverview")
}

func TestGenerateWordValidation(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/generate-word", entity.GenerateWordRequest{
		Metadata: &entity.DocumentMetadata{Pillar: "Security"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis")
}

func TestGenerateWordSuccess(t *testing.T) {
	router := newDemoRouter(t)

	rec := postJSON(t, router, "/api/generate-word", entity.GenerateWordRequest{
		Metadata: &entity.DocumentMetadata{Pillar: "Security", Product: "Transact", Region: "GLOBAL", APICallsMade: 2},
		Analysis: &entity.PillarAnalysis{Pillar: "Security", Product: "Transact", Answers: []string{"a"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp entity.GenerateWordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasSuffix(resp.Filename, ".docx"))
}
