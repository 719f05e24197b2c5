package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/typesense"
)

// OccurrenceSearcher busca ocorrências indexadas
type OccurrenceSearcher interface {
	SearchOccurrences(ctx context.Context, query, neighborhood string, page, perPage int) (*typesense.SearchResult, error)
}

// OccurrenceHandler gerencia a busca de ocorrências
type OccurrenceHandler struct {
	searcher OccurrenceSearcher
}

// NewOccurrenceHandler cria um novo handler de ocorrências
func NewOccurrenceHandler(searcher OccurrenceSearcher) *OccurrenceHandler {
	return &OccurrenceHandler{searcher: searcher}
}

// OccurrenceSearchRequest representa os parâmetros da busca
type OccurrenceSearchRequest struct {
	Query        string `form:"q" example:"rua conde de bonfim"`
	Neighborhood string `form:"neighborhood" example:"Tijuca"`
	Page         int    `form:"page,default=1" binding:"min=1"`
	PerPage      int    `form:"per_page,default=10" binding:"min=1,max=100"`
}

// Search godoc
// @Summary Busca de ocorrências
// @Description Busca textual por logradouro, bairro ou descrição nas ocorrências indexadas, com filtro opcional por bairro (sem acentos).
// @Tags occurrences
// @Produce json
// @Param q query string true "Texto da busca (use * para todas)"
// @Param neighborhood query string false "Bairro"
// @Param page query int false "Página (mínimo: 1)" default(1)
// @Param per_page query int false "Resultados por página (máximo: 100)" default(10)
// @Success 200 {object} typesense.SearchResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/occurrences/search [get]
func (h *OccurrenceHandler) Search(c *gin.Context) {
	var req OccurrenceSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		respondError(c, models.ErrQueryRequired)
		return
	}

	result, err := h.searcher.SearchOccurrences(c.Request.Context(), req.Query, strings.TrimSpace(req.Neighborhood), req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
