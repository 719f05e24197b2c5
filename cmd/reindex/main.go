package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/logger"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/typesense"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/upstream"
	"go.uber.org/zap"
)

type ReindexConfig struct {
	AnchorDate string
	Window     models.Window
	SectorIDs  []string
	Workers    int
	DryRun     bool
}

type ReindexStats struct {
	Sectors   int64
	Fetched   int64
	Indexed   int64
	Errors    int64
	StartTime time.Time
}

// Reindexer busca a cobertura na API de operações e indexa as ocorrências no Typesense
type Reindexer struct {
	config   *ReindexConfig
	upstream *upstream.Client
	index    *typesense.Client
	logger   *zap.Logger
	stats    *ReindexStats
}

func main() {
	anchor := flag.String("anchor", time.Now().Format(models.AnchorDateLayout), "Data âncora (YYYY-MM-DD)")
	window := flag.String("window", string(models.WindowMonth), "Janela: day, week, month")
	sectors := flag.String("sectors", "", "Setores separados por vírgula (vazio: todos)")
	workers := flag.Int("workers", 3, "Setores consultados em paralelo")
	dryRun := flag.Bool("dry-run", false, "Simular sem indexar")

	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro de configuração: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao criar logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	reindexCfg := &ReindexConfig{
		AnchorDate: *anchor,
		Window:     models.Window(*window),
		SectorIDs:  models.ParseSectorIDs(*sectors),
		Workers:    *workers,
		DryRun:     *dryRun,
	}
	if err := reindexCfg.Validate(); err != nil {
		log.Fatal("Parâmetros inválidos", zap.Error(err))
	}

	reindexer := NewReindexer(reindexCfg, cfg, log)

	if err := reindexer.Run(context.Background()); err != nil {
		log.Fatal("Erro na reindexação", zap.Error(err))
	}
}

// Validate confere janela e data âncora
func (c *ReindexConfig) Validate() error {
	if !c.Window.IsValid() {
		return models.ErrInvalidWindow
	}
	if _, err := time.Parse(models.AnchorDateLayout, c.AnchorDate); err != nil {
		return models.ErrInvalidAnchorDate
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

func NewReindexer(cfg *ReindexConfig, appCfg *config.Config, log *zap.Logger) *Reindexer {
	return &Reindexer{
		config:   cfg,
		upstream: upstream.NewClient(appCfg, log),
		index:    typesense.NewClient(appCfg, log),
		logger:   log,
		stats:    &ReindexStats{StartTime: time.Now()},
	}
}

func (r *Reindexer) Run(ctx context.Context) error {
	r.logger.Info("Iniciando reindexação",
		zap.String("anchor_date", r.config.AnchorDate),
		zap.String("window", string(r.config.Window)),
		zap.Strings("sectors", r.config.SectorIDs),
		zap.Int("workers", r.config.Workers),
		zap.Bool("dry_run", r.config.DryRun),
	)

	if !r.config.DryRun {
		if err := r.index.EnsureCollection(ctx); err != nil {
			return fmt.Errorf("erro ao preparar collection: %w", err)
		}
	}

	query := models.CoverageQuery{Window: r.config.Window, AnchorDate: r.config.AnchorDate}

	// sem setores: uma única consulta com todos
	sectorIDs := r.config.SectorIDs
	if len(sectorIDs) == 0 {
		sectorIDs = []string{""}
	}

	var wg sync.WaitGroup
	sectorChan := make(chan string, len(sectorIDs))

	for i := 0; i < r.config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for sectorID := range sectorChan {
				if err := r.processSector(ctx, query.WithSector(sectorID)); err != nil {
					r.logger.Error("Erro ao reindexar setor",
						zap.Int("worker", workerID),
						zap.String("sector_id", sectorID),
						zap.Error(err),
					)
					atomic.AddInt64(&r.stats.Errors, 1)
				}
			}
		}(i)
	}

	for _, sectorID := range sectorIDs {
		sectorChan <- sectorID
	}
	close(sectorChan)
	wg.Wait()

	r.printStats()

	if errs := atomic.LoadInt64(&r.stats.Errors); errs > 0 && errs == int64(len(sectorIDs)) {
		return fmt.Errorf("nenhum setor reindexado")
	}
	return nil
}

func (r *Reindexer) processSector(ctx context.Context, query models.CoverageQuery) error {
	payload, err := r.upstream.FetchCoverage(ctx, query, "")
	if err != nil {
		return err
	}
	atomic.AddInt64(&r.stats.Sectors, 1)

	occurrences := payload.OccurrencesByWindow.Get(query.Window)
	atomic.AddInt64(&r.stats.Fetched, int64(len(occurrences)))

	if r.config.DryRun {
		r.logger.Info("[DRY-RUN] Indexaria ocorrências",
			zap.String("sector_id", query.SectorID),
			zap.Int("count", len(occurrences)),
		)
		return nil
	}

	indexed, err := r.index.IndexOccurrences(ctx, occurrences)
	atomic.AddInt64(&r.stats.Indexed, int64(indexed))
	if err != nil {
		return err
	}

	r.logger.Info("Setor reindexado",
		zap.String("sector_id", query.SectorID),
		zap.Int("indexed", indexed),
	)
	return nil
}

func (r *Reindexer) printStats() {
	r.logger.Info("Reindexação concluída",
		zap.Int64("sectors", atomic.LoadInt64(&r.stats.Sectors)),
		zap.Int64("fetched", atomic.LoadInt64(&r.stats.Fetched)),
		zap.Int64("indexed", atomic.LoadInt64(&r.stats.Indexed)),
		zap.Int64("errors", atomic.LoadInt64(&r.stats.Errors)),
		zap.Duration("duration", time.Since(r.stats.StartTime)),
	)
}
