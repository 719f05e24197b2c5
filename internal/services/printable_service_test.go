package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSummary struct {
	text string
	err  error
}

func (f fakeSummary) Summarize(context.Context, *models.CoverageReport) (string, error) {
	return f.text, f.err
}

func sampleReport() *models.CoverageReport {
	count := 2
	return &models.CoverageReport{
		Window:           models.WindowDay,
		Label:            "Dia 01 de Março de 2024",
		TotalOccurrences: 10,
		WindowCount:      2,
		Neighborhoods:    []models.NeighborhoodCount{{Name: "Centro", Count: &count}},
		StreetNames:      []string{"Rua da Carioca"},
		Occurrences: []models.Occurrence{
			{
				ID:               "1",
				Status:           models.StatusEmExecucao,
				IsEmergency:      true,
				NeighborhoodName: "Centro",
				Address:          models.Address{Street: "Rua da Carioca", Number: "10"},
				CreatedAt:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local),
			},
			{
				ID:               "2",
				Status:           models.StatusAprovada,
				NeighborhoodName: "Centro",
				Address:          models.Address{Street: "Beco <script>alert(1)</script> | 2"},
			},
		},
		Summary: models.StatusSummary{
			Total:       2,
			ByStatus:    map[string]int{models.StatusEmExecucao: 1, models.StatusAprovada: 1},
			Emergencies: 1,
		},
	}
}

func TestBuildPrintableMarkdown(t *testing.T) {
	md := BuildPrintableMarkdown(sampleReport(), "")

	assert.Contains(t, md, "**Período:** Dia 01 de Março de 2024")
	assert.Contains(t, md, "| Centro | 2 |")
	assert.Contains(t, md, "| Centro | Rua da Carioca, 10 | Em execução | Sim | Não | 01/03/2024 10:00 |")
	assert.Contains(t, md, `\|`, "pipe dentro da célula deve ser escapado")
	assert.NotContains(t, md, "## Resumo")
}

func TestRenderPrintableHTML(t *testing.T) {
	out := string(RenderPrintableHTML(sampleReport(), "Semana tranquila no Centro."))

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>")
	assert.Contains(t, out, "Dia 01 de Março de 2024")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Semana tranquila no Centro.")
	assert.NotContains(t, out, "<script>")
}

func TestRenderPrintableHTML_EmptyReport(t *testing.T) {
	report := &models.CoverageReport{Label: "Julho de 2025", Summary: models.StatusSummary{ByStatus: map[string]int{}}}
	out := string(RenderPrintableHTML(report, ""))

	assert.Contains(t, out, "Nenhum bairro no período.")
	assert.Contains(t, out, "Nenhuma ocorrência no período.")
}

func TestPrintableService_Render(t *testing.T) {
	f := &fakeFetcher{payloads: map[string]*models.CoveragePayload{"": payloadWith("Centro")}}
	reports := newReportService(f)
	req := &models.CoverageRequest{Window: models.WindowMonth, AnchorDate: "2024-04-01"}

	withSummary := NewPrintableService(reports, fakeSummary{text: "Resumo do mês."}, zap.NewNop())
	out, err := withSummary.Render(context.Background(), req, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Resumo do mês.")

	failingSummary := NewPrintableService(reports, fakeSummary{err: errors.New("quota")}, zap.NewNop())
	out, err = failingSummary.Render(context.Background(), req, "")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<h2 id=\"resumo\">")
	assert.Contains(t, string(out), "Março de 2024")
}

func TestRenderPrintableHTML_FilterWithLineBreaks(t *testing.T) {
	report := &models.CoverageReport{
		Label:   "Março de 2024",
		Filters: models.OccurrenceFilters{NeighborhoodName: "Centro\n- x\n---\n# Falso"},
		Summary: models.StatusSummary{ByStatus: map[string]int{}},
	}

	md := BuildPrintableMarkdown(report, "")
	assert.NotContains(t, md, "\n- x")
	assert.NotContains(t, md, "\n---\n")

	out := string(RenderPrintableHTML(report, ""))
	assert.NotContains(t, out, "<li>x</li>")
	assert.NotContains(t, out, "<hr")
	assert.NotContains(t, out, "<h1 id=\"falso\"")
}

func TestEscapeParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"linha única", "Semana tranquila.", "Semana tranquila."},
		{"dois parágrafos", "Primeiro.\n\nSegundo.", "Primeiro.\n\nSegundo."},
		{"lista vira texto", "Pontos:\n- Centro\n- Lapa", `Pontos: - Centro - Lapa`},
		{"título escapado", "# Alerta", `\# Alerta`},
		{"parágrafos vazios descartados", "A.\n\n\n\n\nB.", "A.\n\nB."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeParagraphs(tt.input))
		})
	}
}
