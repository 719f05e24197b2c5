package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// SummaryGenerator gera o resumo executivo de um relatório
type SummaryGenerator interface {
	Summarize(ctx context.Context, report *models.CoverageReport) (string, error)
}

// GeminiSummaryService gera resumos usando o Gemini
type GeminiSummaryService struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiSummaryService cria o serviço. Retorna nil quando não há chave de API.
func NewGeminiSummaryService(apiKey, model string, logger *zap.Logger) *GeminiSummaryService {
	if apiKey == "" {
		logger.Info("GEMINI_API_KEY não configurada, resumo executivo desativado")
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("Erro ao inicializar cliente Gemini", zap.Error(err))
		return nil
	}

	return &GeminiSummaryService{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Summarize pede ao modelo um parágrafo curto sobre os números do relatório
func (g *GeminiSummaryService) Summarize(ctx context.Context, report *models.CoverageReport) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	content := genai.NewContentFromText(buildSummaryPrompt(report), genai.RoleUser)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar resumo: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("resumo vazio retornado pelo modelo")
	}
	return text, nil
}

func buildSummaryPrompt(report *models.CoverageReport) string {
	var b strings.Builder

	b.WriteString("Você é analista da Prefeitura do Rio. Escreva um parágrafo objetivo, em português, ")
	b.WriteString("resumindo o relatório de ocorrências abaixo para um documento oficial. ")
	b.WriteString("Não invente números além dos informados.\n\n")

	fmt.Fprintf(&b, "Período: %s\n", report.Label)
	fmt.Fprintf(&b, "Total geral de ocorrências: %d\n", report.TotalOccurrences)
	fmt.Fprintf(&b, "Ocorrências na janela: %d\n", report.WindowCount)
	fmt.Fprintf(&b, "Emergências: %d | Atrasadas: %d\n", report.Summary.Emergencies, report.Summary.Delayed)

	for _, status := range models.OccurrenceStatuses {
		fmt.Fprintf(&b, "%s: %d\n", models.StatusLabel(status), report.Summary.ByStatus[status])
	}

	b.WriteString("Bairros com mais ocorrências:\n")
	for i, n := range report.Neighborhoods {
		if i == 5 {
			break
		}
		if n.Count != nil {
			fmt.Fprintf(&b, "- %s: %d\n", n.Name, *n.Count)
		} else {
			fmt.Fprintf(&b, "- %s\n", n.Name)
		}
	}

	return b.String()
}
