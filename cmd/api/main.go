package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prefeitura-rio/app-relatorio-cobertura/docs"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/api/routes"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/logger"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/observability"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/services"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/typesense"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/upstream"
	"go.uber.org/zap"
)

// @title           Relatório de Cobertura API
// @version         1.0
// @description     API de relatórios de cobertura de ocorrências por janela (dia, semana, mês) para o painel de operações
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-relatorio-cobertura

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "erro fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return fmt.Errorf("erro ao criar logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error("Erro ao configurar tracing, seguindo sem exportar spans", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Erro ao encerrar tracing", zap.Error(err))
		}
	}()

	cache := services.NewCoverageCache(cfg.Reports.CacheMaxSize, cfg.Reports.CacheTTL)
	if cache.Enabled() {
		cache.StartCleanupRoutine(ctx, cfg.Reports.CacheTTL, log)
	}

	upstreamClient := upstream.NewClient(cfg, log)
	reportService := services.NewReportService(upstreamClient, cache, cfg.Reports, log)

	var summary services.SummaryGenerator
	if gemini := services.NewGeminiSummaryService(cfg.GeminiAPIKey, cfg.GeminiChatModel, log); gemini != nil {
		summary = gemini
	} else {
		log.Info("GEMINI_API_KEY não configurada, relatório para impressão sem resumo executivo")
	}
	printableService := services.NewPrintableService(reportService, summary, log)

	deps := routes.Dependencies{
		Upstream:  upstreamClient,
		Reports:   reportService,
		Printable: printableService,
	}

	if cfg.TypesenseAPIKey != "" {
		typesenseClient := typesense.NewClient(cfg, log)
		ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := typesenseClient.EnsureCollection(ensureCtx); err != nil {
			log.Warn("Não foi possível preparar a collection de ocorrências", zap.Error(err))
		}
		cancel()
		deps.Typesense = typesenseClient
	} else {
		log.Info("TYPESENSE_API_KEY não configurada, busca de ocorrências desativada")
	}

	r, err := routes.SetupRouter(cfg, log, deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Servidor iniciado", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
	case <-ctx.Done():
		log.Info("Encerrando servidor")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
