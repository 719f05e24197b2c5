// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_DEVELOPMENT: Logs em formato console (default: false)
//
// ## API de operações
//   - OPERATIONS_API_URL: URL base da API de operações (obrigatória)
//   - OPERATIONS_API_TOKEN: Token de serviço usado quando a requisição não traz Authorization
//   - OPERATIONS_API_TIMEOUT_SECONDS: Timeout das chamadas (default: 15)
//   - BREAKER_MAX_FAILURES: Falhas consecutivas para abrir o circuito (default: 5)
//   - BREAKER_OPEN_SECONDS: Tempo com o circuito aberto (default: 30)
//
// ## Relatórios
//   - COVERAGE_CACHE_TTL_SECONDS: TTL do cache de payloads de cobertura (default: 60)
//   - COVERAGE_CACHE_MAX_SIZE: Tamanho máximo do cache (default: 500)
//   - SECTOR_REPORT_CONCURRENCY: Consultas simultâneas no relatório por setor (default: 4)
//   - SECTOR_REPORT_MAX_SECTORS: Setores por relatório (default: 30)
//   - SECTOR_REPORT_TOP_NEIGHBORHOODS: Bairros por setor (default: 5)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_COLLECTION: Collection de ocorrências (default: ocorrencias_cobertura)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini (vazia desativa o resumo do relatório)
//   - GEMINI_CHAT_MODEL: Modelo para o resumo executivo (default: gemini-2.0-flash)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados na raiz, entre 0 e 1 (default: 1)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	LogLevel       string
	LogDevelopment bool

	// API de operações
	OperationsAPIURL     string
	OperationsAPIToken   string
	OperationsAPITimeout time.Duration
	BreakerMaxFailures   uint32
	BreakerOpenTimeout   time.Duration

	Reports ReportsConfig

	TypesenseHost       string
	TypesensePort       string
	TypesenseAPIKey     string
	TypesenseProtocol   string
	TypesenseCollection string

	// Gemini configuration
	GeminiAPIKey    string
	GeminiChatModel string

	// Tracing configuration
	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

// ReportsConfig contém a configuração dos relatórios de cobertura
type ReportsConfig struct {
	// TTL do cache de payloads (default 60s)
	CacheTTL time.Duration

	// Tamanho máximo do cache (default 500)
	CacheMaxSize int

	// Consultas simultâneas à API no relatório por setor (default 4)
	SectorConcurrency int

	// Quantidade máxima de setores por relatório (default 30)
	MaxSectors int

	// Bairros listados por setor (default 5)
	TopNeighborhoods int
}

// LoadConfig lê .env (se existir) e as variáveis de ambiente
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogDevelopment: getEnvBool("LOG_DEVELOPMENT", false),

		OperationsAPIURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("OPERATIONS_API_URL")), "/"),
		OperationsAPIToken:   getEnv("OPERATIONS_API_TOKEN", ""),
		OperationsAPITimeout: getEnvSeconds("OPERATIONS_API_TIMEOUT_SECONDS", 15),
		BreakerMaxFailures:   uint32(getEnvInt("BREAKER_MAX_FAILURES", 5)),
		BreakerOpenTimeout:   getEnvSeconds("BREAKER_OPEN_SECONDS", 30),

		Reports: ReportsConfig{
			CacheTTL:          getEnvSeconds("COVERAGE_CACHE_TTL_SECONDS", 60),
			CacheMaxSize:      getEnvInt("COVERAGE_CACHE_MAX_SIZE", 500),
			SectorConcurrency: getEnvInt("SECTOR_REPORT_CONCURRENCY", 4),
			MaxSectors:        getEnvInt("SECTOR_REPORT_MAX_SECTORS", 30),
			TopNeighborhoods:  getEnvInt("SECTOR_REPORT_TOP_NEIGHBORHOODS", 5),
		},

		TypesenseHost:       getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", "ocorrencias_cobertura"),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),

		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica os campos obrigatórios e corrige valores fora da faixa
func (c *Config) Validate() error {
	if c.OperationsAPIURL == "" {
		return fmt.Errorf("OPERATIONS_API_URL environment variable is required but not set")
	}
	if !strings.HasPrefix(c.OperationsAPIURL, "http://") && !strings.HasPrefix(c.OperationsAPIURL, "https://") {
		return fmt.Errorf("OPERATIONS_API_URL must start with http:// or https://, got %q", c.OperationsAPIURL)
	}

	if c.BreakerMaxFailures == 0 {
		c.BreakerMaxFailures = 5
	}
	if c.Reports.SectorConcurrency < 1 {
		c.Reports.SectorConcurrency = 1
	}
	if c.Reports.MaxSectors < 1 {
		c.Reports.MaxSectors = 30
	}
	if c.Reports.CacheMaxSize < 1 {
		c.Reports.CacheMaxSize = 500
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		c.TracingSampleRatio = 1
	}
	return nil
}

// TypesenseURL monta a URL do servidor Typesense
func (c *Config) TypesenseURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Second
}
