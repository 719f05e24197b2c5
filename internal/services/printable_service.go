package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"go.uber.org/zap"
)

const printableDateLayout = "02/01/2006 15:04"

// PrintableService monta a versão para impressão do relatório de cobertura
type PrintableService struct {
	reports *ReportService
	summary SummaryGenerator
	logger  *zap.Logger
}

// NewPrintableService cria o serviço. summary pode ser nil (sem resumo executivo).
func NewPrintableService(reports *ReportService, summary SummaryGenerator, logger *zap.Logger) *PrintableService {
	return &PrintableService{
		reports: reports,
		summary: summary,
		logger:  logger,
	}
}

// Render busca o relatório e devolve o HTML completo da página de impressão
func (p *PrintableService) Render(ctx context.Context, req *models.CoverageRequest, authorization string) ([]byte, error) {
	report, err := p.reports.Coverage(ctx, req, authorization)
	if err != nil {
		return nil, err
	}

	executiveSummary := ""
	if p.summary != nil {
		text, err := p.summary.Summarize(ctx, report)
		if err != nil {
			// o relatório sai sem resumo
			p.logger.Warn("Erro ao gerar resumo executivo", zap.Error(err))
		} else {
			executiveSummary = text
		}
	}

	return RenderPrintableHTML(report, executiveSummary), nil
}

// RenderPrintableHTML converte o relatório em markdown e renderiza como página HTML.
// HTML embutido nos dados é descartado.
func RenderPrintableHTML(report *models.CoverageReport, executiveSummary string) []byte {
	md := BuildPrintableMarkdown(report, executiveSummary)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage | html.SkipHTML,
		Title: "Relatório de cobertura - " + report.Label,
	})

	return markdown.ToHTML([]byte(md), p, renderer)
}

// BuildPrintableMarkdown monta o documento do relatório
func BuildPrintableMarkdown(report *models.CoverageReport, executiveSummary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Relatório de cobertura de ocorrências\n\n")
	fmt.Fprintf(&b, "**Período:** %s\n\n", escapeMarkdown(report.Label))
	fmt.Fprintf(&b, "**Total de ocorrências:** %d  \n", report.TotalOccurrences)
	fmt.Fprintf(&b, "**Ocorrências no período:** %d  \n", report.WindowCount)
	fmt.Fprintf(&b, "**Emergências:** %d  \n", report.Summary.Emergencies)
	fmt.Fprintf(&b, "**Atrasadas:** %d\n\n", report.Summary.Delayed)

	if report.Filters.NeighborhoodName != "" || report.Filters.Status != "" {
		b.WriteString("**Filtros:**")
		if report.Filters.NeighborhoodName != "" {
			fmt.Fprintf(&b, " bairro %s", escapeMarkdown(report.Filters.NeighborhoodName))
		}
		if report.Filters.Status != "" {
			fmt.Fprintf(&b, " status %s", models.StatusLabel(report.Filters.Status))
		}
		b.WriteString("\n\n")
	}

	if executiveSummary != "" {
		fmt.Fprintf(&b, "## Resumo\n\n%s\n\n", escapeParagraphs(executiveSummary))
	}

	b.WriteString("## Situação\n\n| Status | Quantidade |\n|---|---:|\n")
	for _, status := range models.OccurrenceStatuses {
		fmt.Fprintf(&b, "| %s | %d |\n", models.StatusLabel(status), report.Summary.ByStatus[status])
	}
	b.WriteString("\n")

	b.WriteString("## Bairros\n\n")
	if len(report.Neighborhoods) == 0 {
		b.WriteString("Nenhum bairro no período.\n\n")
	} else {
		b.WriteString("| Bairro | Ocorrências |\n|---|---:|\n")
		for _, n := range report.Neighborhoods {
			count := "-"
			if n.Count != nil {
				count = fmt.Sprintf("%d", *n.Count)
			}
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(n.Name), count)
		}
		b.WriteString("\n")
	}

	if len(report.StreetNames) > 0 {
		b.WriteString("## Logradouros\n\n")
		for _, street := range report.StreetNames {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(street))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Ocorrências\n\n")
	if len(report.Occurrences) == 0 {
		b.WriteString("Nenhuma ocorrência no período.\n")
		return b.String()
	}

	b.WriteString("| Bairro | Endereço | Status | Emergência | Atrasada | Abertura |\n")
	b.WriteString("|---|---|---|:---:|:---:|---|\n")
	for _, o := range report.Occurrences {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			escapeCell(o.NeighborhoodName),
			escapeCell(formatAddress(o.Address)),
			models.StatusLabel(o.Status),
			yesNo(o.IsEmergency),
			yesNo(o.IsDelayed),
			formatDate(o.CreatedAt),
		)
	}

	return b.String()
}

func formatAddress(a models.Address) string {
	switch {
	case a.Street == "":
		return "-"
	case a.Number == "":
		return a.Street
	default:
		return a.Street + ", " + a.Number
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(printableDateLayout)
}

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// escapeMarkdown gera texto em uma única linha: quebras de linha viram espaço,
// assim um valor não abre lista, título ou régua no documento
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(strings.Join(strings.Fields(s), " "))
}

// escapeParagraphs preserva apenas a separação entre parágrafos
func escapeParagraphs(s string) string {
	paragraphs := make([]string, 0)
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if text := escapeMarkdown(p); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// escapeCell também protege o separador de colunas
func escapeCell(s string) string {
	return strings.ReplaceAll(escapeMarkdown(s), "|", `\|`)
}
