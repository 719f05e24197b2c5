package models

// NeighborhoodCount é um bairro com sua contagem na janela.
// Count é nulo quando a contagem é desconhecida (lista pré-calculada de nomes).
type NeighborhoodCount struct {
	Name  string `json:"name" example:"Centro"`
	Count *int   `json:"count" example:"12"`
}

// StatusSummary resume uma lista de ocorrências
type StatusSummary struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	Emergencies      int            `json:"emergencies"`
	Delayed          int            `json:"delayed"`
	WithInitialPhoto int            `json:"withInitialPhoto"`
	WithFinalPhoto   int            `json:"withFinalPhoto"`
}

// CoverageReport é a visão derivada do payload de cobertura para uma janela
type CoverageReport struct {
	Window           Window              `json:"window" example:"month"`
	AnchorDate       string              `json:"anchorDate,omitempty" example:"2024-04-01"`
	Label            string              `json:"label" example:"Março de 2024"`
	TotalOccurrences int                 `json:"totalOccurrences" example:"340"`
	WindowCount      int                 `json:"windowCount" example:"57"`
	Filters          OccurrenceFilters   `json:"filters"`
	Neighborhoods    []NeighborhoodCount `json:"neighborhoods"`
	StreetNames      []string            `json:"streetNames"`
	Occurrences      []Occurrence        `json:"occurrences"`
	Summary          StatusSummary       `json:"summary"`
}

// SectorCoverageRow é a linha de um setor no relatório por setor
type SectorCoverageRow struct {
	SectorID         string              `json:"sectorId" example:"12"`
	TotalOccurrences int                 `json:"totalOccurrences"`
	WindowCount      int                 `json:"windowCount"`
	Summary          StatusSummary       `json:"summary"`
	TopNeighborhoods []NeighborhoodCount `json:"topNeighborhoods"`
	Error            string              `json:"error,omitempty"`
}

// SectorCoverageReport agrega as linhas de todos os setores consultados
type SectorCoverageReport struct {
	Window     Window              `json:"window"`
	AnchorDate string              `json:"anchorDate,omitempty"`
	Label      string              `json:"label"`
	Sectors    []SectorCoverageRow `json:"sectors"`
	Totals     StatusSummary       `json:"totals"`
}

// LabelResponse é a resposta de /coverage/label
type LabelResponse struct {
	Label string `json:"label" example:"Dia 01 de Março de 2024"`
}
