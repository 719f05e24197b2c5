package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/coverage"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CoverageFetcher busca o payload de cobertura na API de operações
type CoverageFetcher interface {
	FetchCoverage(ctx context.Context, query models.CoverageQuery, authorization string) (*models.CoveragePayload, error)
}

// ReportService monta os relatórios de cobertura a partir da API de operações
type ReportService struct {
	fetcher CoverageFetcher
	cache   *CoverageCache
	cfg     config.ReportsConfig
	logger  *zap.Logger
}

// NewReportService cria o serviço de relatórios
func NewReportService(fetcher CoverageFetcher, cache *CoverageCache, cfg config.ReportsConfig, logger *zap.Logger) *ReportService {
	return &ReportService{
		fetcher: fetcher,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
	}
}

// Payload retorna o payload normalizado, usando o cache quando possível.
// A chave inclui o Authorization: usuários diferentes podem enxergar setores diferentes.
func (s *ReportService) Payload(ctx context.Context, query models.CoverageQuery, authorization string) (*models.CoveragePayload, error) {
	key := cacheKey(query, authorization)

	if cached := s.cache.Get(key); cached != nil {
		return cached, nil
	}

	payload, err := s.fetcher.FetchCoverage(ctx, query, authorization)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, payload)
	return payload, nil
}

// Coverage monta o relatório de cobertura de uma janela
func (s *ReportService) Coverage(ctx context.Context, req *models.CoverageRequest, authorization string) (*models.CoverageReport, error) {
	query := req.Query()

	payload, err := s.Payload(ctx, query, authorization)
	if err != nil {
		return nil, err
	}

	report := coverage.BuildReport(payload, query, req.Filters())
	return &report, nil
}

// BySector consulta a cobertura de cada setor em paralelo e monta uma linha por setor.
// Falhas individuais ficam registradas na linha; só retorna erro se todos falharem.
func (s *ReportService) BySector(ctx context.Context, req *models.CoverageRequest, sectorIDs []string, authorization string) (*models.SectorCoverageReport, error) {
	if len(sectorIDs) == 0 {
		return nil, models.ErrSectorsRequired
	}
	if len(sectorIDs) > s.cfg.MaxSectors {
		return nil, fmt.Errorf("%w: %d (máximo %d)", models.ErrTooManySectors, len(sectorIDs), s.cfg.MaxSectors)
	}

	query := req.Query()
	filters := req.Filters()
	rows := make([]models.SectorCoverageRow, len(sectorIDs))
	errs := make([]error, len(sectorIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.SectorConcurrency)

	for i, sectorID := range sectorIDs {
		i, sectorID := i, sectorID
		g.Go(func() error {
			row := models.SectorCoverageRow{SectorID: sectorID}

			payload, err := s.Payload(gctx, query.WithSector(sectorID), authorization)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Warn("Erro ao buscar cobertura do setor", zap.String("sector_id", sectorID), zap.Error(err))
				row.Error = err.Error()
				rows[i] = row
				errs[i] = err
				return nil
			}

			occurrences := coverage.FilterAndSortOccurrences(payload, query.Window, filters)
			row.TotalOccurrences = payload.TotalOccurrences
			row.WindowCount = coverage.WindowCount(payload, query.Window)
			row.Summary = coverage.Summarize(occurrences)
			row.TopNeighborhoods = coverage.TopNeighborhoods(coverage.NeighborhoodCounts(payload, query.Window), s.cfg.TopNeighborhoods)
			rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	summaries := make([]models.StatusSummary, 0, len(rows))
	for i, row := range rows {
		if errs[i] != nil {
			failed++
			continue
		}
		summaries = append(summaries, row.Summary)
	}
	if failed == len(rows) {
		return nil, errs[0]
	}

	return &models.SectorCoverageReport{
		Window:     query.Window,
		AnchorDate: query.AnchorDate,
		Label:      coverage.ResolveAnchorLabel(query.AnchorDate, query.Window),
		Sectors:    rows,
		Totals:     coverage.MergeSummaries(summaries...),
	}, nil
}

// CacheStats expõe as estatísticas do cache de payloads
func (s *ReportService) CacheStats() CacheStats {
	return s.cache.Stats()
}

func cacheKey(query models.CoverageQuery, authorization string) string {
	if authorization == "" {
		return query.CacheKey()
	}
	hash := sha256.Sum256([]byte(authorization))
	return query.CacheKey() + ":" + hex.EncodeToString(hash[:8])
}
