package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/upstream"
)

// respondError traduz erros de serviço para o status HTTP e o corpo padrão {error, details}
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, models.ErrInvalidWindow),
		errors.Is(err, models.ErrInvalidAnchorDate),
		errors.Is(err, models.ErrSectorsRequired),
		errors.Is(err, models.ErrTooManySectors),
		errors.Is(err, models.ErrQueryRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})

	case errors.As(err, &statusErr) && statusErr.IsClientError():
		// 4xx da API de operações (token expirado, setor sem permissão) volta como veio
		c.JSON(statusErr.StatusCode, gin.H{
			"error":   "Requisição recusada pela API de operações",
			"details": statusErr.Body,
		})

	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Tempo esgotado consultando a API de operações",
		})

	case errors.Is(err, upstream.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "API de operações indisponível",
			"details": err.Error(),
		})

	case errors.Is(err, upstream.ErrUpstreamStatus), errors.Is(err, upstream.ErrInvalidPayload):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Resposta inválida da API de operações",
			"details": err.Error(),
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro interno",
			"details": err.Error(),
		})
	}
}
