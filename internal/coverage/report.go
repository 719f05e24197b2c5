package coverage

import "github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"

// BuildReport monta todas as visões derivadas de uma janela do payload
func BuildReport(payload *models.CoveragePayload, query models.CoverageQuery, filters models.OccurrenceFilters) models.CoverageReport {
	if payload == nil {
		payload = &models.CoveragePayload{}
	}

	window := query.Window
	occurrences := FilterAndSortOccurrences(payload, window, filters)

	return models.CoverageReport{
		Window:           window,
		AnchorDate:       query.AnchorDate,
		Label:            ResolveAnchorLabel(query.AnchorDate, window),
		TotalOccurrences: payload.TotalOccurrences,
		WindowCount:      WindowCount(payload, window),
		Filters:          filters,
		Neighborhoods:    NeighborhoodCounts(payload, window),
		StreetNames:      StreetNames(payload, window),
		Occurrences:      occurrences,
		Summary:          Summarize(occurrences),
	}
}

// WindowCount retorna a contagem pré-calculada da janela, ou o tamanho da
// lista quando a API não informou a contagem
func WindowCount(payload *models.CoveragePayload, window models.Window) int {
	if payload == nil {
		return 0
	}
	if count := payload.OccurrencesCountByWindow.Get(window); count > 0 {
		return count
	}
	return len(payload.OccurrencesByWindow.Get(window))
}
