package models

import "time"

// Window identifica a janela temporal do relatório de cobertura
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Windows lista as únicas janelas aceitas pela API de operações
var Windows = []Window{WindowDay, WindowWeek, WindowMonth}

// IsValid verifica se a janela é day, week ou month
func (w Window) IsValid() bool {
	switch w {
	case WindowDay, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// Status de uma ocorrência (vocabulário da API de operações)
const (
	StatusEmAnalise  = "em_analise"
	StatusAprovada   = "aprovada"
	StatusEmExecucao = "em_execucao"
	StatusFinalizada = "finalizada"
)

// OccurrenceStatuses lista os status conhecidos, na ordem do fluxo
var OccurrenceStatuses = []string{StatusEmAnalise, StatusAprovada, StatusEmExecucao, StatusFinalizada}

// Estágios de foto
const (
	PhotoStageInitial = "INITIAL"
	PhotoStageFinal   = "FINAL"
)

// NeighborhoodFallback é usado quando a ocorrência não informa bairro
const NeighborhoodFallback = "-"

// RawAddress é o endereço como chega da API (todos os campos opcionais)
type RawAddress struct {
	Street           string `json:"street,omitempty"`
	Number           string `json:"number,omitempty"`
	NeighborhoodName string `json:"neighborhoodName,omitempty"`
}

// Photo representa uma foto anexada à ocorrência
type Photo struct {
	Stage string `json:"stage"`
	URL   string `json:"url"`
}

// RawOccurrence é a ocorrência como serializada pela API de operações
type RawOccurrence struct {
	ID               string      `json:"id"`
	Status           string      `json:"status"`
	IsEmergency      *bool       `json:"isEmergency,omitempty"`
	IsDelayed        *bool       `json:"isDelayed,omitempty"`
	CreatedAt        string      `json:"createdAt,omitempty"`
	Description      string      `json:"description,omitempty"`
	SectorID         string      `json:"sectorId,omitempty"`
	SectorName       string      `json:"sectorName,omitempty"`
	NeighborhoodName string      `json:"neighborhoodName,omitempty"`
	Address          *RawAddress `json:"address,omitempty"`
	Photos           []Photo     `json:"photos,omitempty"`
}

// WindowCounts contém as contagens pré-calculadas por janela
type WindowCounts struct {
	Day   int `json:"day"`
	Week  int `json:"week"`
	Month int `json:"month"`
}

// Get retorna a contagem da janela (zero para janela inválida)
func (c WindowCounts) Get(w Window) int {
	switch w {
	case WindowDay:
		return c.Day
	case WindowWeek:
		return c.Week
	case WindowMonth:
		return c.Month
	}
	return 0
}

// WindowNames contém listas de nomes pré-calculadas por janela
type WindowNames struct {
	Day   []string `json:"day,omitempty"`
	Week  []string `json:"week,omitempty"`
	Month []string `json:"month,omitempty"`
}

// Get retorna a lista da janela (nil para janela inválida)
func (n WindowNames) Get(w Window) []string {
	switch w {
	case WindowDay:
		return n.Day
	case WindowWeek:
		return n.Week
	case WindowMonth:
		return n.Month
	}
	return nil
}

// RawWindowOccurrences contém as ocorrências brutas por janela
type RawWindowOccurrences struct {
	Day   []RawOccurrence `json:"day,omitempty"`
	Week  []RawOccurrence `json:"week,omitempty"`
	Month []RawOccurrence `json:"month,omitempty"`
}

// RawCoveragePayload é a resposta de /occurrences/dashboard/coverage
type RawCoveragePayload struct {
	TotalOccurrences          int                  `json:"totalOccurrences"`
	OccurrencesCountByWindow  WindowCounts         `json:"occurrencesCountByWindow"`
	OccurrencesByWindow       RawWindowOccurrences `json:"occurrencesByWindow"`
	NeighborhoodNamesByWindow WindowNames          `json:"neighborhoodNamesByWindow"`
	StreetNamesByWindow       WindowNames          `json:"streetNamesByWindow"`
}

// Address é o endereço normalizado
type Address struct {
	Street           string `json:"street"`
	Number           string `json:"number"`
	NeighborhoodName string `json:"neighborhoodName"`
}

// Occurrence é a ocorrência normalizada na ingestão: bairro resolvido,
// flags sempre booleanas e data já interpretada.
type Occurrence struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	IsEmergency      bool      `json:"isEmergency"`
	IsDelayed        bool      `json:"isDelayed"`
	CreatedAt        time.Time `json:"createdAt"`
	Description      string    `json:"description,omitempty"`
	SectorID         string    `json:"sectorId,omitempty"`
	SectorName       string    `json:"sectorName,omitempty"`
	NeighborhoodName string    `json:"neighborhoodName"`
	Address          Address   `json:"address"`
	Photos           []Photo   `json:"photos"`
}

// HasPhoto verifica se existe foto no estágio informado
func (o Occurrence) HasPhoto(stage string) bool {
	for _, p := range o.Photos {
		if p.Stage == stage && p.URL != "" {
			return true
		}
	}
	return false
}

// WindowOccurrences contém as ocorrências normalizadas por janela
type WindowOccurrences struct {
	Day   []Occurrence `json:"day"`
	Week  []Occurrence `json:"week"`
	Month []Occurrence `json:"month"`
}

// Get retorna as ocorrências da janela (nil para janela inválida)
func (o WindowOccurrences) Get(w Window) []Occurrence {
	switch w {
	case WindowDay:
		return o.Day
	case WindowWeek:
		return o.Week
	case WindowMonth:
		return o.Month
	}
	return nil
}

// CoveragePayload é o snapshot normalizado, somente leitura, consumido pelos relatórios
type CoveragePayload struct {
	TotalOccurrences          int               `json:"totalOccurrences"`
	OccurrencesCountByWindow  WindowCounts      `json:"occurrencesCountByWindow"`
	OccurrencesByWindow       WindowOccurrences `json:"occurrencesByWindow"`
	NeighborhoodNamesByWindow WindowNames       `json:"neighborhoodNamesByWindow"`
	StreetNamesByWindow       WindowNames       `json:"streetNamesByWindow"`
}

var statusLabels = map[string]string{
	StatusEmAnalise:  "Em análise",
	StatusAprovada:   "Aprovada",
	StatusEmExecucao: "Em execução",
	StatusFinalizada: "Finalizada",
}

// StatusLabel retorna o nome de exibição do status (o próprio valor se desconhecido)
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
