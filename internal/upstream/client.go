// Package upstream é o cliente HTTP da API de operações.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/coverage"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// CoveragePath é o endpoint de cobertura da API de operações
const CoveragePath = "/occurrences/dashboard/coverage"

const (
	maxPayloadBytes = 32 << 20
	maxErrorBody    = 512
)

// Client consulta a API de operações protegido por um circuit breaker
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient cria o cliente a partir da configuração
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.OperationsAPITimeout}, logger)
}

// NewClientWithHTTP permite injetar o http.Client (usado em testes)
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client, logger *zap.Logger) *Client {
	maxFailures := cfg.BreakerMaxFailures

	settings := gobreaker.Settings{
		Name:        "operations-api",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// 4xx é erro do chamador, não derruba o circuito
			var statusErr *StatusError
			return errors.As(err, &statusErr) && statusErr.IsClientError()
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker mudou de estado",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Client{
		baseURL:    cfg.OperationsAPIURL,
		token:      cfg.OperationsAPIToken,
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// FetchCoverage busca o payload de cobertura e o normaliza.
// authorization é o header Authorization da requisição original (pode ser vazio).
func (c *Client) FetchCoverage(ctx context.Context, query models.CoverageQuery, authorization string) (*models.CoveragePayload, error) {
	ctx, span := otel.Tracer("upstream").Start(ctx, "upstream.fetch_coverage")
	defer span.End()

	span.SetAttributes(
		attribute.String("coverage.window", string(query.Window)),
		attribute.String("coverage.anchor_date", query.AnchorDate),
		attribute.String("coverage.sector_id", query.SectorID),
	)

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doFetch(ctx, query, authorization)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch coverage failed")
		c.logger.Warn("Erro ao buscar cobertura",
			zap.Error(err),
			zap.String("window", string(query.Window)),
			zap.String("sector_id", query.SectorID),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	raw := result.(*models.RawCoveragePayload)
	span.SetAttributes(attribute.Int("coverage.total", raw.TotalOccurrences))
	span.SetStatus(codes.Ok, "")

	c.logger.Debug("Cobertura recebida",
		zap.Int("total", raw.TotalOccurrences),
		zap.String("window", string(query.Window)),
		zap.Duration("duration", time.Since(start)),
	)

	return coverage.NormalizePayload(raw), nil
}

func (c *Client) doFetch(ctx context.Context, query models.CoverageQuery, authorization string) (*models.RawCoveragePayload, error) {
	endpoint := c.baseURL + CoveragePath
	if values := query.Values(); len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if auth := c.authorizationHeader(authorization); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var raw models.RawCoveragePayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return &raw, nil
}

// Ping verifica se a API de operações responde
func (c *Client) Ping(ctx context.Context) error {
	if c.breaker.State() == gobreaker.StateOpen {
		return ErrUpstreamUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// BreakerState retorna o estado atual do circuito (closed, half-open, open)
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

func (c *Client) authorizationHeader(authorization string) string {
	if authorization != "" {
		return authorization
	}
	if c.token != "" {
		return "Bearer " + c.token
	}
	return ""
}
