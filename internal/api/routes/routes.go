package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/api/handlers"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	middlewares "github.com/prefeitura-rio/app-relatorio-cobertura/internal/middleware"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/services"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/typesense"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/upstream"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies são os serviços já construídos que o router expõe
type Dependencies struct {
	Upstream  *upstream.Client
	Reports   *services.ReportService
	Printable *services.PrintableService
	// Typesense é opcional: sem ele a busca de ocorrências não é registrada
	Typesense *typesense.Client
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, deps Dependencies) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.ExtractUserContext())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTracing())
	}
	r.Use(middlewares.AccessLog(logger))

	var index handlers.IndexChecker
	if deps.Typesense != nil {
		index = deps.Typesense
	}
	healthHandler := handlers.NewHealthHandler(deps.Upstream, index, deps.Reports.CacheStats)
	coverageHandler := handlers.NewCoverageHandler(deps.Reports, deps.Printable)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/coverage", coverageHandler.Coverage)
		api.GET("/coverage/label", coverageHandler.Label)
		api.GET("/coverage/sectors", coverageHandler.BySector)
		api.GET("/coverage/printable", coverageHandler.Printable)

		if deps.Typesense != nil {
			occurrenceHandler := handlers.NewOccurrenceHandler(deps.Typesense)
			api.GET("/occurrences/search", occurrenceHandler.Search)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator do gin não é go-playground/validator")
	}
	return models.RegisterValidators(v)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
