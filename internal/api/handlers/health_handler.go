package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/services"
)

// UpstreamChecker verifica a API de operações
type UpstreamChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// IndexChecker verifica o Typesense
type IndexChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	upstream   UpstreamChecker
	index      IndexChecker
	cacheStats func() services.CacheStats
}

// NewHealthHandler cria um novo handler de health check.
// index pode ser nil quando o Typesense não está configurado.
func NewHealthHandler(upstream UpstreamChecker, index IndexChecker, cacheStats func() services.CacheStats) *HealthHandler {
	return &HealthHandler{
		upstream:   upstream,
		index:      index,
		cacheStats: cacheStats,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida a API de operações)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	// Sem a API de operações nenhum relatório pode ser servido
	if err := h.upstream.Ping(ctx); err != nil {
		response.Checks["operations_api"] = "failed"
		response.Status = "not_ready"
		response.Error = "API de operações indisponível"
	} else {
		response.Checks["operations_api"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação: API de operações, circuit breaker, Typesense e cache
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.upstream.Ping(ctx); err != nil {
		response.Checks["operations_api"] = "failed"
		response.Status = "unhealthy"
		response.Error = "API de operações indisponível"
	} else {
		response.Checks["operations_api"] = "ok"
	}
	response.Checks["circuit_breaker"] = h.upstream.BreakerState()

	// Typesense só atende a busca de ocorrências; falha degrada, não derruba
	if h.index != nil {
		if err := h.index.Health(ctx); err != nil {
			response.Checks["typesense"] = "failed"
			if response.Status == "healthy" {
				response.Status = "degraded"
			}
		} else {
			response.Checks["typesense"] = "ok"
		}
	}

	if h.cacheStats != nil {
		stats := h.cacheStats()
		response.Checks["cache_size"] = strconv.Itoa(stats.Size)
		response.Checks["cache_hits"] = strconv.FormatUint(stats.Hits, 10)
		response.Checks["cache_misses"] = strconv.FormatUint(stats.Misses, 10)
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
