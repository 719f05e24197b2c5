package coverage

import (
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator cria um collator pt-BR. Collators guardam buffers internos e
// não podem ser compartilhados entre goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

// NeighborhoodCounts retorna os bairros da janela com suas contagens.
//
// Com a lista de ocorrências da janela disponível, agrupa pelo bairro resolvido
// e ordena por contagem decrescente. Sem ela, usa a lista pré-calculada de nomes
// com contagem nula, em ordem alfabética.
func NeighborhoodCounts(payload *models.CoveragePayload, window models.Window) []models.NeighborhoodCount {
	result := make([]models.NeighborhoodCount, 0)
	if payload == nil {
		return result
	}

	if occurrences := payload.OccurrencesByWindow.Get(window); len(occurrences) > 0 {
		counts := make(map[string]int)
		seen := make(map[string]map[string]bool)
		order := make([]string, 0)

		for _, o := range occurrences {
			name := o.NeighborhoodName
			if name == "" {
				name = models.NeighborhoodFallback
			}

			if _, ok := counts[name]; !ok {
				order = append(order, name)
				seen[name] = make(map[string]bool)
			}

			// a mesma ocorrência listada duas vezes conta uma vez só
			if o.ID != "" {
				if seen[name][o.ID] {
					continue
				}
				seen[name][o.ID] = true
			}
			counts[name]++
		}

		for _, name := range order {
			count := counts[name]
			result = append(result, models.NeighborhoodCount{Name: name, Count: &count})
		}
	} else if names := payload.NeighborhoodNamesByWindow.Get(window); len(names) > 0 {
		seen := make(map[string]bool)
		for _, n := range names {
			name := strings.TrimSpace(n)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			result = append(result, models.NeighborhoodCount{Name: name})
		}
	}

	sortNeighborhoodCounts(result)
	return result
}

func sortNeighborhoodCounts(list []models.NeighborhoodCount) {
	hasCount := false
	for _, n := range list {
		if n.Count != nil {
			hasCount = true
			break
		}
	}

	col := newCollator()
	sort.SliceStable(list, func(i, j int) bool {
		if hasCount {
			ci, cj := countOrMinus(list[i].Count), countOrMinus(list[j].Count)
			if ci != cj {
				return ci > cj
			}
		}
		return col.CompareString(list[i].Name, list[j].Name) < 0
	})
}

func countOrMinus(c *int) int {
	if c == nil {
		return -1
	}
	return *c
}

// TopNeighborhoods retorna os n primeiros bairros de uma lista já ordenada
func TopNeighborhoods(list []models.NeighborhoodCount, n int) []models.NeighborhoodCount {
	if n <= 0 || len(list) <= n {
		return append([]models.NeighborhoodCount(nil), list...)
	}
	return append([]models.NeighborhoodCount(nil), list[:n]...)
}

// StreetNames retorna os logradouros da janela. A lista pré-calculada tem
// prioridade; sem ela, os logradouros são extraídos das ocorrências sem repetição.
func StreetNames(payload *models.CoveragePayload, window models.Window) []string {
	result := make([]string, 0)
	if payload == nil {
		return result
	}

	if names := payload.StreetNamesByWindow.Get(window); len(names) > 0 {
		return append(result, names...)
	}

	seen := make(map[string]bool)
	for _, o := range payload.OccurrencesByWindow.Get(window) {
		street := o.Address.Street
		if street == "" || seen[street] {
			continue
		}
		seen[street] = true
		result = append(result, street)
	}
	return result
}

// FilterAndSortOccurrences aplica os filtros de bairro e status sobre a lista da
// janela e ordena por bairro (crescente) e createdAt (mais recente primeiro).
// Ocorrências repetidas na lista (mesmo ID) aparecem uma vez, como na contagem
// por bairro. O payload não é alterado.
func FilterAndSortOccurrences(payload *models.CoveragePayload, window models.Window, filters models.OccurrenceFilters) []models.Occurrence {
	result := make([]models.Occurrence, 0)
	if payload == nil {
		return result
	}

	neighborhood := normalizeKey(filters.NeighborhoodName)
	seen := make(map[string]bool)

	for _, o := range payload.OccurrencesByWindow.Get(window) {
		if o.ID != "" {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
		}
		if neighborhood != "" && normalizeKey(o.NeighborhoodName) != neighborhood {
			continue
		}
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		result = append(result, o)
	}

	col := newCollator()
	sort.SliceStable(result, func(i, j int) bool {
		if cmp := col.CompareString(result[i].NeighborhoodName, result[j].NeighborhoodName); cmp != 0 {
			return cmp < 0
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}
