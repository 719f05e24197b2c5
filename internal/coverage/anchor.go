package coverage

import (
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// ResolveAnchorLabel monta o rótulo do período efetivamente reportado.
//
// A API grava anchorDate como o dia seguinte (janelas day e week) ou o primeiro
// dia do mês seguinte (janela month) ao período do relatório; o rótulo desfaz
// esse deslocamento. Sem data âncora válida, usa o mês corrente.
func ResolveAnchorLabel(anchorDate string, window models.Window) string {
	return resolveAnchorLabel(anchorDate, window, time.Now())
}

func resolveAnchorLabel(anchorDate string, window models.Window, now time.Time) string {
	date, ok := ParseAnchorDate(anchorDate)
	if !ok {
		return monthYearLabel(now)
	}

	switch window {
	case models.WindowDay:
		d := date.AddDate(0, 0, -1)
		return fmt.Sprintf("Dia %02d de %s", d.Day(), monthYearLabel(d))
	case models.WindowWeek:
		// sem cálculo de início/fim da semana, apenas o mês de referência
		d := date.AddDate(0, 0, -1)
		return "Semana de referência em " + monthYearLabel(d)
	case models.WindowMonth:
		firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
		return monthYearLabel(firstOfMonth.AddDate(0, -1, 0))
	}

	return monthYearLabel(date)
}

// ParseAnchorDate interpreta YYYY-MM-DD como data local, sem conversão de fuso.
// Aceita também um timestamp ISO, do qual só a data é considerada.
func ParseAnchorDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) > len(models.AnchorDateLayout) && value[len(models.AnchorDateLayout)] == 'T' {
		value = value[:len(models.AnchorDateLayout)]
	}
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse(models.AnchorDateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), true
}

// MonthName retorna o nome do mês em português com inicial maiúscula
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return cases.Title(language.BrazilianPortuguese).String(monthNames[m-1])
}

func monthYearLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", MonthName(t.Month()), t.Year())
}
