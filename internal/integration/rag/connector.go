package rag

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/config"
	"github.com/temenos/rfp-assistant/internal/entity"
	pkghttp "github.com/temenos/rfp-assistant/pkg/http"
)

const probeCacheKey = "connectivity"

// reachableStatuses are remote statuses that prove the endpoint is reachable
// even when the specific request is rejected.
var reachableStatuses = map[int]bool{
	http.StatusOK:           true,
	http.StatusBadRequest:   true,
	http.StatusUnauthorized: true,
	http.StatusForbidden:    true,
}

// Connector talks to the remote RAG question-answering service. It holds no
// per-analysis state; callers count their own query attempts.
type Connector struct {
	config     config.RAGConnectorConfig
	connector  *pkghttp.Connector
	probeCache *gocache.Cache
	logger     *zap.Logger
}

func NewConnector(cfg config.RAGConnectorConfig, logger *zap.Logger) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	connector := pkghttp.NewConnector(
		connCfg,
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAuthToken(cfg.Token),
	)

	return &Connector{
		config:     cfg,
		connector:  connector,
		probeCache: gocache.New(cfg.ProbeCacheTTL, 2*cfg.ProbeCacheTTL),
		logger:     logger,
	}
}

// TestConnection probes the remote health endpoint. The result is cached for
// a short TTL so UI polling does not hammer the remote service. A rejected
// request (400/401/403) still counts as reachable.
func (c *Connector) TestConnection(ctx context.Context) bool {
	if cached, found := c.probeCache.Get(probeCacheKey); found {
		return cached.(bool)
	}

	reachable := c.probe(ctx)
	c.probeCache.Set(probeCacheKey, reachable, gocache.DefaultExpiration)
	return reachable
}

func (c *Connector) probe(ctx context.Context) bool {
	err := c.connector.DoRequest(ctx, http.MethodGet, c.config.HealthEndpoint, nil, nil)
	if err == nil {
		return true
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) && reachableStatuses[httpErr.StatusCode] {
		return true
	}

	ctxzap.Warn(ctx, "RAG health probe failed", zap.Error(err))
	return false
}

// Query posts a question to the remote query endpoint. A usable answer
// requires HTTP 200 with status "success" and a data object; a rejected
// request (400/401/403) with a parseable body is returned as an informative
// error response. Everything else fails.
func (c *Connector) Query(ctx context.Context, question, region, modelID, pillarContext string) (*entity.RAGResponse, error) {
	payload := &entity.RAGQueryRequest{
		Question: question,
		Region:   strings.ToLower(region),
		ModelID:  modelID,
		Context:  pillarContext,
	}

	var resp entity.RAGResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.QueryEndpoint, payload, &resp)
	if err == nil {
		if resp.Status == "success" && resp.Data != nil {
			return &resp, nil
		}
		ctxzap.Warn(ctx, "RAG API returned error response", zap.String("status", resp.Status))
		return nil, fmt.Errorf("RAG API returned error response: %s", resp.Status)
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) && reachableStatuses[httpErr.StatusCode] {
		// API is reachable but rejected the request; the body may still
		// carry an informative response.
		var rejected entity.RAGResponse
		if decodeErr := httpErr.DecodeBody(&rejected); decodeErr == nil {
			return &rejected, nil
		}
		ctxzap.Warn(ctx, "RAG query rejected",
			zap.Int("status_code", httpErr.StatusCode),
		)
		return nil, err
	}

	ctxzap.Error(ctx, "RAG query failed", zap.Error(err))
	return nil, err
}
