package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPERATIONS_API_URL", "https://api.operacoes.rio/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.operacoes.rio", cfg.OperationsAPIURL)
	assert.Equal(t, 15*time.Second, cfg.OperationsAPITimeout)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.Equal(t, time.Minute, cfg.Reports.CacheTTL)
	assert.Equal(t, 4, cfg.Reports.SectorConcurrency)
	assert.Equal(t, "ocorrencias_cobertura", cfg.TypesenseCollection)
	assert.Equal(t, "http://localhost:8108", cfg.TypesenseURL())
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, 1.0, cfg.TracingSampleRatio)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("OPERATIONS_API_URL", "http://localhost:3000")
	t.Setenv("COVERAGE_CACHE_TTL_SECONDS", "5")
	t.Setenv("SECTOR_REPORT_CONCURRENCY", "0")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATIO", "1.5")
	t.Setenv("BREAKER_MAX_FAILURES", "abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Reports.CacheTTL)
	assert.Equal(t, 1, cfg.Reports.SectorConcurrency, "concorrência mínima é 1")
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, 1.0, cfg.TracingSampleRatio, "fração fora de [0, 1] volta para 1")
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures, "valor inválido usa o default")
}

func TestLoadConfig_MissingOperationsURL(t *testing.T) {
	t.Setenv("OPERATIONS_API_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidOperationsURL(t *testing.T) {
	t.Setenv("OPERATIONS_API_URL", "api.operacoes.rio")

	_, err := LoadConfig()
	assert.Error(t, err)
}
