package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// ServiceName identifica o serviço nos spans
	ServiceName      = "app-relatorio-cobertura"
	serviceNamespace = "prefeitura-rio"
	exportTimeout    = 5 * time.Second
)

// Version é sobrescrita no build com -ldflags "-X ...observability.Version=..."
var Version = "dev"

// ShutdownFunc descarrega os spans pendentes e encerra o exportador
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup registra o provider global de traces e o propagador W3C usado nas
// chamadas à API de operações. Com tracing desligado, o provider no-op do otel
// continua valendo e o shutdown devolvido não faz nada.
func Setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.TracingEnabled {
		logger.Info("Tracing desabilitado")
		return noopShutdown, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("erro ao criar exportador OTLP: %w", err)
	}

	provider, err := NewProvider(ctx, exporter, cfg.TracingSampleRatio)
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return noopShutdown, err
	}
	otel.SetTracerProvider(provider)

	logger.Info("Tracing habilitado",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.Float64("sample_ratio", cfg.TracingSampleRatio),
		zap.String("version", Version),
	)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, exportTimeout)
		defer cancel()
		return provider.Shutdown(ctx)
	}, nil
}

// NewProvider monta o provider com exportação em lote. A amostragem é decidida
// na raiz e herdada pelos spans filhos, incluindo os das consultas por setor.
func NewProvider(ctx context.Context, exporter sdktrace.SpanExporter, sampleRatio float64) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceNamespaceKey.String(serviceNamespace),
			semconv.ServiceVersionKey.String(Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	), nil
}
