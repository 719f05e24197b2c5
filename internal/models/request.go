package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// AnchorDateLayout é o formato de anchorDate aceito pela API de operações
const AnchorDateLayout = "2006-01-02"

// CoverageRequest representa os parâmetros do relatório de cobertura
// @Description Parâmetros repassados à API de operações e filtros aplicados localmente.
type CoverageRequest struct {
	// Setor responsável (repassado à API)
	SectorID string `form:"sectorId" example:"12"`
	// Status da ocorrência (repassado à API)
	Status string `form:"status" binding:"omitempty,occurrence_status" example:"em_execucao" enums:"em_analise,aprovada,em_execucao,finalizada"`
	// Somente emergências (repassado à API)
	IsEmergency *bool `form:"isEmergency" example:"true"`
	// Somente atrasadas (repassado à API)
	IsDelayed *bool `form:"isDelayed" example:"false"`
	// Janela: day, week ou month. Default: month
	Window Window `form:"window" binding:"omitempty,window" example:"month" enums:"day,week,month"`
	// Data âncora no formato YYYY-MM-DD (repassada à API)
	AnchorDate string `form:"anchorDate" binding:"omitempty,datetime=2006-01-02" example:"2024-04-01"`

	// Filtro local por bairro (comparação exata, sem diferenciar maiúsculas)
	Neighborhood string `form:"neighborhood" example:"Centro"`
	// Filtro local por status (comparação exata)
	OccurrenceStatus string `form:"occurrenceStatus" binding:"omitempty,occurrence_status" example:"finalizada"`
}

// Validate aplica defaults à requisição
func (r *CoverageRequest) Validate() error {
	r.SectorID = strings.TrimSpace(r.SectorID)
	r.AnchorDate = strings.TrimSpace(r.AnchorDate)

	if r.Window == "" {
		r.Window = WindowMonth
	}
	if !r.Window.IsValid() {
		return ErrInvalidWindow
	}
	return nil
}

// Query retorna a parte da requisição repassada à API de operações
func (r *CoverageRequest) Query() CoverageQuery {
	return CoverageQuery{
		SectorID:    r.SectorID,
		Status:      r.Status,
		IsEmergency: r.IsEmergency,
		IsDelayed:   r.IsDelayed,
		Window:      r.Window,
		AnchorDate:  r.AnchorDate,
	}
}

// Filters retorna os filtros aplicados localmente sobre a lista da janela
func (r *CoverageRequest) Filters() OccurrenceFilters {
	return OccurrenceFilters{
		NeighborhoodName: r.Neighborhood,
		Status:           r.OccurrenceStatus,
	}
}

// OccurrenceFilters são os filtros de front-end sobre a lista de ocorrências
type OccurrenceFilters struct {
	NeighborhoodName string `json:"neighborhoodName,omitempty"`
	Status           string `json:"status,omitempty"`
}

// CoverageQuery são os parâmetros de /occurrences/dashboard/coverage
type CoverageQuery struct {
	SectorID    string `json:"sectorId,omitempty"`
	Status      string `json:"status,omitempty"`
	IsEmergency *bool  `json:"isEmergency,omitempty"`
	IsDelayed   *bool  `json:"isDelayed,omitempty"`
	Window      Window `json:"window,omitempty"`
	AnchorDate  string `json:"anchorDate,omitempty"`
}

// Values codifica a query para a chamada HTTP
func (q CoverageQuery) Values() url.Values {
	v := url.Values{}
	if q.SectorID != "" {
		v.Set("sectorId", q.SectorID)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.IsEmergency != nil {
		v.Set("isEmergency", strconv.FormatBool(*q.IsEmergency))
	}
	if q.IsDelayed != nil {
		v.Set("isDelayed", strconv.FormatBool(*q.IsDelayed))
	}
	if q.Window != "" {
		v.Set("window", string(q.Window))
	}
	if q.AnchorDate != "" {
		v.Set("anchorDate", q.AnchorDate)
	}
	return v
}

// WithSector retorna uma cópia da query para outro setor
func (q CoverageQuery) WithSector(sectorID string) CoverageQuery {
	q.SectorID = sectorID
	return q
}

// CacheKey gera uma chave única para a query
func (q CoverageQuery) CacheKey() string {
	keyData := fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s",
		q.SectorID,
		q.Status,
		boolPtrKey(q.IsEmergency),
		boolPtrKey(q.IsDelayed),
		q.Window,
		q.AnchorDate,
	)

	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:16])
}

// ParseSectorIDs separa a lista de setores (comma-separated), descartando vazios e repetidos
func ParseSectorIDs(csv string) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, part := range strings.Split(csv, ",") {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func boolPtrKey(p *bool) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatBool(*p)
}
