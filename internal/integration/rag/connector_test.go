package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/config"
	"github.com/temenos/rfp-assistant/internal/entity"
)

func testConfig(baseURL string) config.RAGConnectorConfig {
	cfg := config.RAGConnectorConfig{
		HealthEndpoint: "/health",
		QueryEndpoint:  "/query",
		ProbeCacheTTL:  time.Minute,
	}
	cfg.Url = baseURL
	cfg.RequestTimeout = 5 * time.Second
	cfg.ConnTimeout = 5 * time.Second
	cfg.KeepAlive = time.Minute
	cfg.IdleConnTimeout = time.Minute
	cfg.ResponseHeaderTimeout = 5 * time.Second
	cfg.Token = "test-token"
	return cfg
}

func TestTestConnectionReachableStatuses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		conn := NewConnector(testConfig(srv.URL), zap.NewNop())
		assert.True(t, conn.TestConnection(context.Background()), "status %d", status)
		srv.Close()
	}
}

func TestTestConnectionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	assert.False(t, conn.TestConnection(context.Background()))
}

func TestTestConnectionCachesProbe(t *testing.T) {
	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	assert.True(t, conn.TestConnection(context.Background()))
	assert.True(t, conn.TestConnection(context.Background()))
	assert.Equal(t, 1, probes)
}

func TestQuerySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req entity.RAGQueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// Region is lowercased on the wire.
		assert.Equal(t, "global", req.Region)
		assert.Equal(t, "TechnologyOverview", req.ModelID)

		json.NewEncoder(w).Encode(entity.RAGResponse{
			Status: "success",
			Data: &entity.RAGResponseData{
				Question: req.Question,
				Answer:   "The platform is modular.",
			},
		})
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	resp, err := conn.Query(context.Background(), "What is the architecture?", "GLOBAL", "TechnologyOverview", "ctx")
	require.NoError(t, err)
	assert.Equal(t, "The platform is modular.", resp.Answer())
}

func TestQueryErrorStatusInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.RAGResponse{Status: "error", Message: "bad model"})
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	resp, err := conn.Query(context.Background(), "q", "global", "m", "")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestQueryRejectedButParseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(entity.RAGResponse{Status: "error", Message: "token expired"})
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	resp, err := conn.Query(context.Background(), "q", "global", "m", "")
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "", resp.Answer())
}

func TestQueryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	conn := NewConnector(testConfig(srv.URL), zap.NewNop())
	resp, err := conn.Query(context.Background(), "q", "global", "m", "")
	assert.Nil(t, resp)
	assert.Error(t, err)
}
