package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/coverage"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
)

// CoverageReporter monta os relatórios de cobertura
type CoverageReporter interface {
	Coverage(ctx context.Context, req *models.CoverageRequest, authorization string) (*models.CoverageReport, error)
	BySector(ctx context.Context, req *models.CoverageRequest, sectorIDs []string, authorization string) (*models.SectorCoverageReport, error)
}

// PrintableRenderer gera a versão para impressão do relatório
type PrintableRenderer interface {
	Render(ctx context.Context, req *models.CoverageRequest, authorization string) ([]byte, error)
}

// CoverageHandler gerencia os endpoints de cobertura
type CoverageHandler struct {
	reports   CoverageReporter
	printable PrintableRenderer
}

// NewCoverageHandler cria um novo handler de cobertura
func NewCoverageHandler(reports CoverageReporter, printable PrintableRenderer) *CoverageHandler {
	return &CoverageHandler{
		reports:   reports,
		printable: printable,
	}
}

// LabelRequest representa os parâmetros do rótulo de período
type LabelRequest struct {
	AnchorDate string        `form:"anchorDate" example:"2024-04-01"`
	Window     models.Window `form:"window" binding:"omitempty,window" example:"month" enums:"day,week,month"`
}

// Coverage godoc
// @Summary Relatório de cobertura por janela
// @Description Consulta a API de operações e devolve as contagens por bairro, os logradouros, a lista de ocorrências filtrada e ordenada (bairro, depois mais recentes) e o rótulo do período.
// @Tags coverage
// @Produce json
// @Param sectorId query string false "Setor responsável"
// @Param status query string false "Status repassado à API" Enums(em_analise, aprovada, em_execucao, finalizada)
// @Param isEmergency query bool false "Somente emergências"
// @Param isDelayed query bool false "Somente atrasadas"
// @Param window query string false "Janela" Enums(day, week, month) default(month)
// @Param anchorDate query string false "Data âncora (YYYY-MM-DD)"
// @Param neighborhood query string false "Filtro local por bairro (exato, sem diferenciar maiúsculas)"
// @Param occurrenceStatus query string false "Filtro local por status" Enums(em_analise, aprovada, em_execucao, finalizada)
// @Success 200 {object} models.CoverageReport
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/coverage [get]
func (h *CoverageHandler) Coverage(c *gin.Context) {
	req, ok := bindCoverageRequest(c)
	if !ok {
		return
	}

	report, err := h.reports.Coverage(c.Request.Context(), req, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Label godoc
// @Summary Rótulo do período de referência
// @Description Converte a data âncora em rótulo legível em pt-BR, compensando o deslocamento de um dia (day/week) ou um mês (month) da API. Data ausente ou inválida resulta no mês corrente.
// @Tags coverage
// @Produce json
// @Param anchorDate query string false "Data âncora (YYYY-MM-DD)"
// @Param window query string false "Janela" Enums(day, week, month) default(month)
// @Success 200 {object} models.LabelResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/coverage/label [get]
func (h *CoverageHandler) Label(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}
	// mesmo default de /coverage, para o rótulo coincidir com o do relatório
	if req.Window == "" {
		req.Window = models.WindowMonth
	}

	c.JSON(http.StatusOK, models.LabelResponse{
		Label: coverage.ResolveAnchorLabel(req.AnchorDate, req.Window),
	})
}

// BySector godoc
// @Summary Cobertura por setor
// @Description Consulta a cobertura de vários setores em paralelo. Falhas de um setor aparecem na linha correspondente.
// @Tags coverage
// @Produce json
// @Param sectorIds query string true "Setores separados por vírgula" example(3,7,12)
// @Param status query string false "Status repassado à API" Enums(em_analise, aprovada, em_execucao, finalizada)
// @Param isEmergency query bool false "Somente emergências"
// @Param isDelayed query bool false "Somente atrasadas"
// @Param window query string false "Janela" Enums(day, week, month) default(month)
// @Param anchorDate query string false "Data âncora (YYYY-MM-DD)"
// @Param neighborhood query string false "Filtro local por bairro"
// @Param occurrenceStatus query string false "Filtro local por status"
// @Success 200 {object} models.SectorCoverageReport
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/coverage/sectors [get]
func (h *CoverageHandler) BySector(c *gin.Context) {
	req, ok := bindCoverageRequest(c)
	if !ok {
		return
	}

	sectorIDs := models.ParseSectorIDs(c.Query("sectorIds"))

	report, err := h.reports.BySector(c.Request.Context(), req, sectorIDs, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Printable godoc
// @Summary Relatório para impressão
// @Description Página HTML com totais, tabela de bairros, logradouros e ocorrências. Inclui resumo executivo quando o Gemini está configurado.
// @Tags coverage
// @Produce html
// @Param sectorId query string false "Setor responsável"
// @Param status query string false "Status repassado à API"
// @Param isEmergency query bool false "Somente emergências"
// @Param isDelayed query bool false "Somente atrasadas"
// @Param window query string false "Janela" Enums(day, week, month) default(month)
// @Param anchorDate query string false "Data âncora (YYYY-MM-DD)"
// @Param neighborhood query string false "Filtro local por bairro"
// @Param occurrenceStatus query string false "Filtro local por status"
// @Success 200 {string} string "HTML"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/coverage/printable [get]
func (h *CoverageHandler) Printable(c *gin.Context) {
	req, ok := bindCoverageRequest(c)
	if !ok {
		return
	}

	html, err := h.printable.Render(c.Request.Context(), req, c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func bindCoverageRequest(c *gin.Context) (*models.CoverageRequest, bool) {
	var req models.CoverageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return nil, false
	}

	if err := req.Validate(); err != nil {
		respondError(c, err)
		return nil, false
	}

	return &req, true
}
