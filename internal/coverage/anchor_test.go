package coverage

import (
	"testing"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveAnchorLabel(t *testing.T) {
	now := time.Date(2025, 7, 15, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		anchorDate string
		window     models.Window
		expected   string
	}{
		{"dia volta um dia", "2024-03-02", models.WindowDay, "Dia 01 de Março de 2024"},
		{"dia na virada do mês", "2024-03-01", models.WindowDay, "Dia 29 de Fevereiro de 2024"},
		{"dia na virada do ano", "2024-01-01", models.WindowDay, "Dia 31 de Dezembro de 2023"},
		{"mês volta um mês", "2024-04-01", models.WindowMonth, "Março de 2024"},
		{"mês na virada do ano", "2024-01-01", models.WindowMonth, "Dezembro de 2023"},
		{"mês com dia diferente de 1", "2024-03-31", models.WindowMonth, "Fevereiro de 2024"},
		{"semana na virada do ano", "2024-01-01", models.WindowWeek, "Semana de referência em Dezembro de 2023"},
		{"semana no meio do mês", "2024-05-15", models.WindowWeek, "Semana de referência em Maio de 2024"},
		{"sem data usa o mês corrente", "", models.WindowDay, "Julho de 2025"},
		{"data inválida usa o mês corrente", "2024-13-45", models.WindowMonth, "Julho de 2025"},
		{"texto qualquer usa o mês corrente", "ontem", models.WindowWeek, "Julho de 2025"},
		{"timestamp ISO considera só a data", "2024-03-02T03:00:00.000Z", models.WindowDay, "Dia 01 de Março de 2024"},
		{"sem janela não desloca", "2024-04-01", "", "Abril de 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveAnchorLabel(tt.anchorDate, tt.window, now))
		})
	}
}

func TestResolveAnchorLabel_CurrentMonth(t *testing.T) {
	now := time.Now()
	expected := MonthName(now.Month()) + " de " + now.Format("2006")

	label := ResolveAnchorLabel("", models.WindowDay)
	if label != expected {
		// virada de mês entre as duas leituras do relógio
		now = time.Now()
		expected = MonthName(now.Month()) + " de " + now.Format("2006")
	}
	assert.Equal(t, expected, label)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(time.January))
	assert.Equal(t, "Março", MonthName(time.March))
	assert.Equal(t, "Dezembro", MonthName(time.December))
	assert.Equal(t, "", MonthName(time.Month(13)))
}

func TestParseAnchorDate(t *testing.T) {
	d, ok := ParseAnchorDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, 29, d.Day())

	_, ok = ParseAnchorDate("2023-02-29")
	assert.False(t, ok)

	_, ok = ParseAnchorDate("   ")
	assert.False(t, ok)
}
