// Package coverage deriva as visões do relatório de cobertura (bairros,
// logradouros, lista filtrada e rótulo da data âncora) a partir do payload
// retornado por /occurrences/dashboard/coverage.
//
// Todas as funções são puras: não fazem I/O, não alteram o payload recebido e
// degradam para listas vazias quando campos estão ausentes.
package coverage

import (
	"strings"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
)

// createdAtLayouts são os formatos de createdAt aceitos, em ordem de tentativa
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	models.AnchorDateLayout,
}

// ResolveNeighborhoodName aplica a precedência address.neighborhoodName,
// neighborhoodName e por fim o sentinela "-"
func ResolveNeighborhoodName(raw models.RawOccurrence) string {
	if raw.Address != nil {
		if name := strings.TrimSpace(raw.Address.NeighborhoodName); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(raw.NeighborhoodName); name != "" {
		return name
	}
	return models.NeighborhoodFallback
}

// NormalizeOccurrence converte a ocorrência bruta na forma usada pelos relatórios
func NormalizeOccurrence(raw models.RawOccurrence) models.Occurrence {
	occurrence := models.Occurrence{
		ID:               raw.ID,
		Status:           raw.Status,
		IsEmergency:      raw.IsEmergency != nil && *raw.IsEmergency,
		IsDelayed:        raw.IsDelayed != nil && *raw.IsDelayed,
		CreatedAt:        parseCreatedAt(raw.CreatedAt),
		Description:      raw.Description,
		SectorID:         raw.SectorID,
		SectorName:       raw.SectorName,
		NeighborhoodName: ResolveNeighborhoodName(raw),
		Photos:           make([]models.Photo, 0, len(raw.Photos)),
	}

	if raw.Address != nil {
		occurrence.Address = models.Address{
			Street: strings.TrimSpace(raw.Address.Street),
			Number: strings.TrimSpace(raw.Address.Number),
		}
	}
	occurrence.Address.NeighborhoodName = occurrence.NeighborhoodName

	occurrence.Photos = append(occurrence.Photos, raw.Photos...)

	return occurrence
}

// NormalizePayload normaliza todas as janelas do payload bruto
func NormalizePayload(raw *models.RawCoveragePayload) *models.CoveragePayload {
	if raw == nil {
		return &models.CoveragePayload{}
	}

	return &models.CoveragePayload{
		TotalOccurrences:         raw.TotalOccurrences,
		OccurrencesCountByWindow: raw.OccurrencesCountByWindow,
		OccurrencesByWindow: models.WindowOccurrences{
			Day:   normalizeList(raw.OccurrencesByWindow.Day),
			Week:  normalizeList(raw.OccurrencesByWindow.Week),
			Month: normalizeList(raw.OccurrencesByWindow.Month),
		},
		NeighborhoodNamesByWindow: raw.NeighborhoodNamesByWindow,
		StreetNamesByWindow:       raw.StreetNamesByWindow,
	}
}

func normalizeList(raw []models.RawOccurrence) []models.Occurrence {
	occurrences := make([]models.Occurrence, 0, len(raw))
	for _, r := range raw {
		occurrences = append(occurrences, NormalizeOccurrence(r))
	}
	return occurrences
}

// parseCreatedAt retorna o zero de time.Time quando a data não é reconhecida
func parseCreatedAt(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// normalizeKey é a forma usada na comparação de nomes de bairro
func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
