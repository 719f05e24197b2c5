package coverage

import (
	"testing"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occurrence(id, neighborhood, status string, createdAt time.Time) models.RawOccurrence {
	return models.RawOccurrence{
		ID:        id,
		Status:    status,
		CreatedAt: createdAt.Format(time.RFC3339),
		Address:   &models.RawAddress{Street: "Rua " + id, NeighborhoodName: neighborhood},
	}
}

func samplePayload() *models.CoveragePayload {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return NormalizePayload(&models.RawCoveragePayload{
		TotalOccurrences:         7,
		OccurrencesCountByWindow: models.WindowCounts{Day: 0, Week: 0, Month: 6},
		OccurrencesByWindow: models.RawWindowOccurrences{
			Month: []models.RawOccurrence{
				occurrence("1", "Tijuca", models.StatusAprovada, base),
				occurrence("2", "Centro", models.StatusFinalizada, base.Add(time.Hour)),
				occurrence("3", "Centro Histórico", models.StatusEmAnalise, base.Add(2*time.Hour)),
				occurrence("4", "centro", models.StatusAprovada, base.Add(3*time.Hour)),
				occurrence("5", "Tijuca", models.StatusEmExecucao, base.Add(-time.Hour)),
				{ID: "6", Status: models.StatusAprovada, IsEmergency: boolPtr(true), CreatedAt: base.Format(time.RFC3339)},
			},
		},
		NeighborhoodNamesByWindow: models.WindowNames{
			Week: []string{"Penha", "Bangu", "Andaraí"},
		},
		StreetNamesByWindow: models.WindowNames{
			Day: []string{"Avenida Brasil"},
		},
	})
}

func TestNeighborhoodCounts_FromOccurrences(t *testing.T) {
	result := NeighborhoodCounts(samplePayload(), models.WindowMonth)

	require.Len(t, result, 5)
	assert.Equal(t, "Tijuca", result[0].Name)
	require.NotNil(t, result[0].Count)
	assert.Equal(t, 2, *result[0].Count)

	for i := 1; i < len(result); i++ {
		require.NotNil(t, result[i].Count)
		assert.LessOrEqual(t, *result[i].Count, *result[i-1].Count, "contagens devem ser não crescentes")
	}
}

func TestNeighborhoodCounts_NoDoubleCount(t *testing.T) {
	o := occurrence("1", "Centro", models.StatusAprovada, time.Now())
	payload := NormalizePayload(&models.RawCoveragePayload{
		OccurrencesByWindow: models.RawWindowOccurrences{Day: []models.RawOccurrence{o, o}},
	})

	result := NeighborhoodCounts(payload, models.WindowDay)
	require.Len(t, result, 1)
	assert.Equal(t, 1, *result[0].Count)
}

func TestNeighborhoodCounts_FallbackToNames(t *testing.T) {
	result := NeighborhoodCounts(samplePayload(), models.WindowWeek)

	require.Len(t, result, 3)
	assert.Equal(t, []string{"Andaraí", "Bangu", "Penha"}, []string{result[0].Name, result[1].Name, result[2].Name})
	for _, n := range result {
		assert.Nil(t, n.Count, "contagem desconhecida deve ser nula, não zero")
	}
}

func TestNeighborhoodCounts_Empty(t *testing.T) {
	assert.Empty(t, NeighborhoodCounts(samplePayload(), models.WindowDay))
	assert.Empty(t, NeighborhoodCounts(nil, models.WindowDay))
	assert.Empty(t, NeighborhoodCounts(samplePayload(), models.Window("year")))
}

func TestNeighborhoodCounts_Idempotent(t *testing.T) {
	payload := samplePayload()
	first := NeighborhoodCounts(payload, models.WindowMonth)
	second := NeighborhoodCounts(payload, models.WindowMonth)
	assert.Equal(t, first, second)
}

func TestNeighborhoodCounts_AlphabeticalPtBR(t *testing.T) {
	payload := &models.CoveragePayload{
		NeighborhoodNamesByWindow: models.WindowNames{
			Day: []string{"Íris", "Zumbi", "Abolição", "Irajá", "Água Santa"},
		},
	}

	result := NeighborhoodCounts(payload, models.WindowDay)
	names := make([]string, 0, len(result))
	for _, n := range result {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Abolição", "Água Santa", "Irajá", "Íris", "Zumbi"}, names)
}

func TestStreetNames(t *testing.T) {
	payload := samplePayload()

	t.Run("lista pré-calculada tem prioridade", func(t *testing.T) {
		assert.Equal(t, []string{"Avenida Brasil"}, StreetNames(payload, models.WindowDay))
	})

	t.Run("derivada das ocorrências sem repetição", func(t *testing.T) {
		dup := occurrence("9", "Centro", models.StatusAprovada, time.Now())
		dup.Address.Street = "Rua 1"
		p := NormalizePayload(&models.RawCoveragePayload{
			OccurrencesByWindow: models.RawWindowOccurrences{
				Week: []models.RawOccurrence{
					occurrence("1", "Centro", models.StatusAprovada, time.Now()),
					dup,
					{ID: "sem-endereco"},
				},
			},
		})
		assert.ElementsMatch(t, []string{"Rua 1"}, StreetNames(p, models.WindowWeek))
	})

	t.Run("sem dados", func(t *testing.T) {
		assert.Empty(t, StreetNames(&models.CoveragePayload{}, models.WindowMonth))
	})
}

func TestFilterAndSortOccurrences_Sort(t *testing.T) {
	result := FilterAndSortOccurrences(samplePayload(), models.WindowMonth, models.OccurrenceFilters{})

	ids := make([]string, 0, len(result))
	for _, o := range result {
		ids = append(ids, o.ID)
	}
	// "-" antes das letras; Tijuca por último, mais recente primeiro
	require.Len(t, ids, 6)
	assert.Equal(t, "6", ids[0])
	assert.Equal(t, []string{"1", "5"}, ids[4:])

	for i := 1; i < len(result); i++ {
		if result[i].NeighborhoodName == result[i-1].NeighborhoodName {
			assert.False(t, result[i].CreatedAt.After(result[i-1].CreatedAt), "createdAt deve ser decrescente no mesmo bairro")
		}
	}
}

func TestFilterAndSortOccurrences_NeighborhoodExactMatch(t *testing.T) {
	result := FilterAndSortOccurrences(samplePayload(), models.WindowMonth, models.OccurrenceFilters{NeighborhoodName: "  Centro "})

	require.Len(t, result, 2)
	for _, o := range result {
		assert.Equal(t, "centro", normalizeKey(o.NeighborhoodName))
		assert.NotEqual(t, "Centro Histórico", o.NeighborhoodName)
	}
}

func TestFilterAndSortOccurrences_Status(t *testing.T) {
	payload := samplePayload()

	result := FilterAndSortOccurrences(payload, models.WindowMonth, models.OccurrenceFilters{Status: models.StatusAprovada})
	require.Len(t, result, 3)
	for _, o := range result {
		assert.Equal(t, models.StatusAprovada, o.Status)
	}

	assert.Empty(t, FilterAndSortOccurrences(payload, models.WindowMonth, models.OccurrenceFilters{Status: "APROVADA"}))
}

func TestFilterAndSortOccurrences_Booleans(t *testing.T) {
	result := FilterAndSortOccurrences(samplePayload(), models.WindowMonth, models.OccurrenceFilters{})
	emergencies := 0
	for _, o := range result {
		if o.IsEmergency {
			emergencies++
		}
	}
	assert.Equal(t, 1, emergencies)
}

func TestFilterAndSortOccurrences_DoesNotMutate(t *testing.T) {
	payload := samplePayload()
	before := append([]models.Occurrence(nil), payload.OccurrencesByWindow.Month...)

	_ = FilterAndSortOccurrences(payload, models.WindowMonth, models.OccurrenceFilters{NeighborhoodName: "Tijuca"})

	assert.Equal(t, before, payload.OccurrencesByWindow.Month)
}

func TestEmptyPayload(t *testing.T) {
	payload := NormalizePayload(&models.RawCoveragePayload{TotalOccurrences: 0})

	assert.NotPanics(t, func() {
		assert.Empty(t, NeighborhoodCounts(payload, models.WindowDay))
		assert.Empty(t, FilterAndSortOccurrences(payload, models.WindowDay, models.OccurrenceFilters{}))
	})
}

func TestTopNeighborhoods(t *testing.T) {
	list := NeighborhoodCounts(samplePayload(), models.WindowMonth)
	assert.Len(t, TopNeighborhoods(list, 2), 2)
	assert.Len(t, TopNeighborhoods(list, 50), len(list))
	assert.Len(t, TopNeighborhoods(list, 0), len(list))
}

func TestFilterAndSortOccurrences_RepeatedIDs(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	a := occurrence("1", "Centro", models.StatusAprovada, base)
	b := occurrence("2", "Centro", models.StatusFinalizada, base.Add(time.Hour))
	semID := occurrence("", "Lapa", models.StatusAprovada, base)
	payload := NormalizePayload(&models.RawCoveragePayload{
		OccurrencesByWindow: models.RawWindowOccurrences{Day: []models.RawOccurrence{a, b, a, semID, semID}},
	})

	tests := []struct {
		name     string
		filters  models.OccurrenceFilters
		expected int
	}{
		{"sem filtro", models.OccurrenceFilters{}, 4},
		{"por bairro", models.OccurrenceFilters{NeighborhoodName: "Centro"}, 2},
		{"por status", models.OccurrenceFilters{Status: models.StatusAprovada}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterAndSortOccurrences(payload, models.WindowDay, tt.filters)
			assert.Len(t, result, tt.expected)
		})
	}

	// lista, resumo e contagem por bairro concordam
	report := BuildReport(payload, models.CoverageQuery{Window: models.WindowDay}, models.OccurrenceFilters{NeighborhoodName: "Centro"})
	assert.Len(t, report.Occurrences, 2)
	assert.Equal(t, 2, report.Summary.Total)
	for _, n := range report.Neighborhoods {
		if n.Name == "Centro" {
			require.NotNil(t, n.Count)
			assert.Equal(t, len(report.Occurrences), *n.Count)
		}
	}
}
