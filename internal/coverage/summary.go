package coverage

import "github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"

// Summarize conta as ocorrências por status e por flag. Ocorrências com o
// mesmo ID contam uma vez.
func Summarize(occurrences []models.Occurrence) models.StatusSummary {
	summary := models.StatusSummary{
		ByStatus: make(map[string]int, len(models.OccurrenceStatuses)),
	}
	for _, status := range models.OccurrenceStatuses {
		summary.ByStatus[status] = 0
	}

	seen := make(map[string]bool, len(occurrences))
	for _, o := range occurrences {
		if o.ID != "" {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
		}
		summary.Total++
		if o.Status != "" {
			summary.ByStatus[o.Status]++
		}
		if o.IsEmergency {
			summary.Emergencies++
		}
		if o.IsDelayed {
			summary.Delayed++
		}
		if o.HasPhoto(models.PhotoStageInitial) {
			summary.WithInitialPhoto++
		}
		if o.HasPhoto(models.PhotoStageFinal) {
			summary.WithFinalPhoto++
		}
	}

	return summary
}

// MergeSummaries soma resumos (usado no total do relatório por setor)
func MergeSummaries(summaries ...models.StatusSummary) models.StatusSummary {
	merged := Summarize(nil)
	for _, s := range summaries {
		merged.Total += s.Total
		merged.Emergencies += s.Emergencies
		merged.Delayed += s.Delayed
		merged.WithInitialPhoto += s.WithInitialPhoto
		merged.WithFinalPhoto += s.WithFinalPhoto
		for status, count := range s.ByStatus {
			merged.ByStatus[status] += count
		}
	}
	return merged
}
