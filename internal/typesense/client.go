package typesense

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/config"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/utils"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"
)

// Client indexa e busca ocorrências no Typesense
type Client struct {
	client     *typesense.Client
	collection string
	logger     *zap.Logger
}

// OccurrenceDocument é o documento indexado para cada ocorrência
type OccurrenceDocument struct {
	ID                     string `json:"id"`
	Street                 string `json:"street"`
	Number                 string `json:"number"`
	Neighborhood           string `json:"neighborhood"`
	NeighborhoodNormalized string `json:"neighborhood_normalized"`
	Status                 string `json:"status"`
	IsEmergency            bool   `json:"is_emergency"`
	IsDelayed              bool   `json:"is_delayed"`
	SectorID               string `json:"sector_id"`
	Description            string `json:"description"`
	CreatedAt              int64  `json:"created_at"`
}

// SearchResult é a resposta paginada da busca de ocorrências
type SearchResult struct {
	Found   int                  `json:"found"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
	Hits    []OccurrenceDocument `json:"hits"`
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	typesenseClient := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)

	return &Client{
		client:     typesenseClient,
		collection: cfg.TypesenseCollection,
		logger:     logger,
	}
}

// Health verifica a conectividade com o Typesense
func (c *Client) Health(ctx context.Context) error {
	ok, err := c.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("typesense não está saudável")
	}
	return nil
}

// EnsureCollection cria a collection de ocorrências se ela não existir
func (c *Client) EnsureCollection(ctx context.Context) error {
	_, err := c.client.Collection(c.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}

	errMsg := err.Error()
	if !strings.Contains(errMsg, "404") && !strings.Contains(errMsg, "Not found") && !strings.Contains(errMsg, "Not Found") {
		return err
	}

	c.logger.Info("Collection não existe, criando", zap.String("collection", c.collection))

	schema := &api.CollectionSchema{
		Name: c.collection,
		Fields: []api.Field{
			{Name: "street", Type: "string"},
			{Name: "number", Type: "string", Optional: pointer.True(), Index: pointer.False()},
			{Name: "neighborhood", Type: "string", Facet: pointer.True()},
			{Name: "neighborhood_normalized", Type: "string", Facet: pointer.True()},
			{Name: "status", Type: "string", Facet: pointer.True()},
			{Name: "is_emergency", Type: "bool", Facet: pointer.True()},
			{Name: "is_delayed", Type: "bool", Facet: pointer.True()},
			{Name: "sector_id", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "description", Type: "string", Optional: pointer.True()},
			{Name: "created_at", Type: "int64", Sort: pointer.True()},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	if _, err := c.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", c.collection, err)
	}
	return nil
}

// NewOccurrenceDocument converte a ocorrência normalizada no documento indexado
func NewOccurrenceDocument(o models.Occurrence) OccurrenceDocument {
	createdAt := int64(0)
	if !o.CreatedAt.IsZero() {
		createdAt = o.CreatedAt.Unix()
	}

	return OccurrenceDocument{
		ID:                     o.ID,
		Street:                 o.Address.Street,
		Number:                 o.Address.Number,
		Neighborhood:           o.NeighborhoodName,
		NeighborhoodNormalized: utils.FoldName(o.NeighborhoodName),
		Status:                 o.Status,
		IsEmergency:            o.IsEmergency,
		IsDelayed:              o.IsDelayed,
		SectorID:               o.SectorID,
		Description:            utils.PlainText(o.Description),
		CreatedAt:              createdAt,
	}
}

// IndexOccurrences faz upsert das ocorrências. Ocorrências sem ID são ignoradas.
// Retorna quantas foram indexadas.
func (c *Client) IndexOccurrences(ctx context.Context, occurrences []models.Occurrence) (int, error) {
	indexed := 0
	for _, o := range occurrences {
		if o.ID == "" {
			continue
		}

		doc := NewOccurrenceDocument(o)
		if _, err := c.client.Collection(c.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
			return indexed, fmt.Errorf("erro ao indexar ocorrência %s: %w", o.ID, err)
		}
		indexed++
	}
	return indexed, nil
}

// SearchOccurrences busca por logradouro ou bairro, opcionalmente restrito a um bairro
func (c *Client) SearchOccurrences(ctx context.Context, query, neighborhood string, page, perPage int) (*SearchResult, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("street,neighborhood,description"),
		Page:    pointer.Int(page),
		PerPage: pointer.Int(perPage),
		SortBy:  pointer.String("_text_match:desc,created_at:desc"),
	}

	if neighborhood != "" {
		searchParams.FilterBy = pointer.String(BuildNeighborhoodFilter(neighborhood))
	}

	result, err := c.client.Collection(c.collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("erro na busca de ocorrências: %w", err)
	}

	resultBytes, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resultado: %v", err)
	}

	var parsed struct {
		Found int `json:"found"`
		Hits  []struct {
			Document OccurrenceDocument `json:"document"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(resultBytes, &parsed); err != nil {
		return nil, fmt.Errorf("erro ao deserializar resultado: %v", err)
	}

	response := &SearchResult{
		Found:   parsed.Found,
		Page:    page,
		PerPage: perPage,
		Hits:    make([]OccurrenceDocument, 0, len(parsed.Hits)),
	}
	for _, h := range parsed.Hits {
		response.Hits = append(response.Hits, h.Document)
	}
	return response, nil
}

// BuildNeighborhoodFilter monta o filter_by exato pelo bairro sem acentos
func BuildNeighborhoodFilter(neighborhood string) string {
	value := strings.ReplaceAll(utils.FoldName(neighborhood), "`", "")
	return fmt.Sprintf("neighborhood_normalized:=`%s`", value)
}
