package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/coverage"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/services"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/typesense"
	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = models.RegisterValidators(v)
	}
}

type fakeReporter struct {
	lastReq     *models.CoverageRequest
	lastSectors []string
	lastAuth    string
	err         error
}

func (f *fakeReporter) Coverage(_ context.Context, req *models.CoverageRequest, authorization string) (*models.CoverageReport, error) {
	f.lastReq = req
	f.lastAuth = authorization
	if f.err != nil {
		return nil, f.err
	}
	return &models.CoverageReport{Window: req.Window, AnchorDate: req.AnchorDate, Label: "Março de 2024", WindowCount: 3}, nil
}

func (f *fakeReporter) BySector(_ context.Context, req *models.CoverageRequest, sectorIDs []string, authorization string) (*models.SectorCoverageReport, error) {
	f.lastReq = req
	f.lastSectors = sectorIDs
	f.lastAuth = authorization
	if f.err != nil {
		return nil, f.err
	}
	if len(sectorIDs) == 0 {
		return nil, models.ErrSectorsRequired
	}
	rows := make([]models.SectorCoverageRow, 0, len(sectorIDs))
	for _, id := range sectorIDs {
		rows = append(rows, models.SectorCoverageRow{SectorID: id})
	}
	return &models.SectorCoverageReport{Window: req.Window, Sectors: rows}, nil
}

type fakePrintable struct {
	err error
}

func (f *fakePrintable) Render(_ context.Context, req *models.CoverageRequest, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<html><body>" + string(req.Window) + "</body></html>"), nil
}

type fakeSearcher struct {
	lastQuery        string
	lastNeighborhood string
	lastPage         int
	lastPerPage      int
}

func (f *fakeSearcher) SearchOccurrences(_ context.Context, query, neighborhood string, page, perPage int) (*typesense.SearchResult, error) {
	f.lastQuery, f.lastNeighborhood, f.lastPage, f.lastPerPage = query, neighborhood, page, perPage
	return &typesense.SearchResult{
		Found:   1,
		Page:    page,
		PerPage: perPage,
		Hits:    []typesense.OccurrenceDocument{{ID: "1", Street: "Rua Uruguai", Neighborhood: "Tijuca"}},
	}, nil
}

type fakeUpstream struct {
	pingErr error
	state   string
}

func (f *fakeUpstream) Ping(context.Context) error { return f.pingErr }
func (f *fakeUpstream) BreakerState() string { return f.state }

type fakeIndex struct {
	err error
}

func (f *fakeIndex) Health(context.Context) error { return f.err }

func newCoverageRouter(reporter *fakeReporter, printable *fakePrintable) *gin.Engine {
	h := NewCoverageHandler(reporter, printable)
	r := gin.New()
	r.GET("/api/v1/coverage", h.Coverage)
	r.GET("/api/v1/coverage/label", h.Label)
	r.GET("/api/v1/coverage/sectors", h.BySector)
	r.GET("/api/v1/coverage/printable", h.Printable)
	return r
}

func doGet(r http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCoverage_BindsQuery(t *testing.T) {
	reporter := &fakeReporter{}
	r := newCoverageRouter(reporter, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage?sectorId=7&window=day&anchorDate=2024-03-02&isEmergency=true&neighborhood=Centro&occurrenceStatus=finalizada",
		map[string]string{"Authorization": "Bearer abc"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, reporter.lastReq)
	assert.Equal(t, "7", reporter.lastReq.SectorID)
	assert.Equal(t, models.WindowDay, reporter.lastReq.Window)
	assert.Equal(t, "2024-03-02", reporter.lastReq.AnchorDate)
	require.NotNil(t, reporter.lastReq.IsEmergency)
	assert.True(t, *reporter.lastReq.IsEmergency)
	assert.Nil(t, reporter.lastReq.IsDelayed)
	assert.Equal(t, "Centro", reporter.lastReq.Neighborhood)
	assert.Equal(t, "finalizada", reporter.lastReq.OccurrenceStatus)
	assert.Equal(t, "Bearer abc", reporter.lastAuth)

	var report models.CoverageReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 3, report.WindowCount)
}

func TestCoverage_DefaultsWindowToMonth(t *testing.T) {
	reporter := &fakeReporter{}
	r := newCoverageRouter(reporter, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.WindowMonth, reporter.lastReq.Window)
}

func TestCoverage_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"janela desconhecida", "window=year"},
		{"data fora do formato", "anchorDate=02/03/2024"},
		{"status desconhecido", "status=cancelada"},
		{"filtro de status desconhecido", "occurrenceStatus=FINALIZADA"},
		{"booleano inválido", "isDelayed=talvez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &fakeReporter{}
			r := newCoverageRouter(reporter, &fakePrintable{})

			w := doGet(r, "/api/v1/coverage?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, reporter.lastReq)
		})
	}
}

func TestCoverage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"token recusado", &upstream.StatusError{StatusCode: http.StatusUnauthorized}, http.StatusUnauthorized},
		{"sem permissão", &upstream.StatusError{StatusCode: http.StatusForbidden, Body: "forbidden"}, http.StatusForbidden},
		{"erro 5xx da API", &upstream.StatusError{StatusCode: http.StatusInternalServerError}, http.StatusBadGateway},
		{"payload inválido", fmt.Errorf("%w: eof", upstream.ErrInvalidPayload), http.StatusBadGateway},
		{"circuito aberto", fmt.Errorf("%w: circuit breaker is open", upstream.ErrUpstreamUnavailable), http.StatusServiceUnavailable},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"timeout encapsulado como indisponível", fmt.Errorf("%w: %w", upstream.ErrUpstreamUnavailable, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"inesperado", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newCoverageRouter(&fakeReporter{err: tt.err}, &fakePrintable{})

			w := doGet(r, "/api/v1/coverage", nil)

			assert.Equal(t, tt.expected, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLabel(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{})

	tests := []struct {
		query    string
		expected string
	}{
		{"anchorDate=2024-03-02&window=day", "Dia 01 de Março de 2024"},
		{"anchorDate=2024-03-02&window=week", "Semana de referência em Março de 2024"},
		{"anchorDate=2024-04-01&window=month", "Março de 2024"},
		{"anchorDate=2024-01-01&window=day", "Dia 31 de Dezembro de 2023"},
		{"anchorDate=2024-04-01", "Março de 2024"},
	}

	for _, tt := range tests {
		w := doGet(r, "/api/v1/coverage/label?"+tt.query, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.LabelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tt.expected, resp.Label, tt.query)
	}
}

func TestLabel_MatchesCoverageReport(t *testing.T) {
	reporter := &fakeReporter{}
	r := newCoverageRouter(reporter, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/label?anchorDate=2024-04-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LabelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// /coverage assume month quando a janela é omitida
	require.Equal(t, http.StatusOK, doGet(r, "/api/v1/coverage?anchorDate=2024-04-01", nil).Code)
	assert.Equal(t, coverage.ResolveAnchorLabel("2024-04-01", reporter.lastReq.Window), resp.Label)
}

func TestLabel_InvalidWindow(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/label?anchorDate=2024-04-01&window=year", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLabel_InvalidDateFallsBackToCurrentMonth(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/label?anchorDate=ontem&window=day", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LabelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^[A-ZÇ][a-zç]+ de \d{4}$`, resp.Label)
}

func TestBySector(t *testing.T) {
	reporter := &fakeReporter{}
	r := newCoverageRouter(reporter, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/sectors?sectorIds=3,%207,,3&window=week", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"3", "7"}, reporter.lastSectors)

	var report models.SectorCoverageReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, models.WindowWeek, report.Window)
	assert.Len(t, report.Sectors, 2)
}

func TestBySector_WithoutSectors(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/sectors", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrintable(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{})

	w := doGet(r, "/api/v1/coverage/printable?window=day", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<body>day</body>")
}

func TestPrintable_UpstreamDown(t *testing.T) {
	r := newCoverageRouter(&fakeReporter{}, &fakePrintable{err: upstream.ErrUpstreamUnavailable})

	w := doGet(r, "/api/v1/coverage/printable", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOccurrenceSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	h := NewOccurrenceHandler(searcher)
	r := gin.New()
	r.GET("/api/v1/occurrences/search", h.Search)

	w := doGet(r, "/api/v1/occurrences/search?q=%20uruguai%20&neighborhood=Tijuca", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "uruguai", searcher.lastQuery)
	assert.Equal(t, "Tijuca", searcher.lastNeighborhood)
	assert.Equal(t, 1, searcher.lastPage)
	assert.Equal(t, 10, searcher.lastPerPage)

	var result typesense.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Found)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "Rua Uruguai", result.Hits[0].Street)
}

func TestOccurrenceSearch_Invalid(t *testing.T) {
	h := NewOccurrenceHandler(&fakeSearcher{})
	r := gin.New()
	r.GET("/api/v1/occurrences/search", h.Search)

	for _, target := range []string{
		"/api/v1/occurrences/search",
		"/api/v1/occurrences/search?q=%20",
		"/api/v1/occurrences/search?q=rua&per_page=500",
		"/api/v1/occurrences/search?q=rua&page=0",
	} {
		w := doGet(r, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		upstream       *fakeUpstream
		index          IndexChecker
		expectedCode   int
		expectedStatus string
	}{
		{"tudo ok", &fakeUpstream{state: "closed"}, &fakeIndex{}, http.StatusOK, "healthy"},
		{"typesense fora", &fakeUpstream{state: "closed"}, &fakeIndex{err: errors.New("down")}, http.StatusOK, "degraded"},
		{"sem typesense", &fakeUpstream{state: "closed"}, nil, http.StatusOK, "healthy"},
		{"api fora", &fakeUpstream{pingErr: upstream.ErrUpstreamUnavailable, state: "open"}, &fakeIndex{}, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.upstream, tt.index, func() services.CacheStats {
				return services.CacheStats{Size: 2, Hits: 5, Misses: 1}
			})
			r := gin.New()
			r.GET("/health", h.Health)

			w := doGet(r, "/health", nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, tt.upstream.state, resp.Checks["circuit_breaker"])
			assert.Equal(t, "5", resp.Checks["cache_hits"])
		})
	}
}

func TestReadinessAndLiveness(t *testing.T) {
	up := &fakeUpstream{state: "closed"}
	h := NewHealthHandler(up, nil, nil)
	r := gin.New()
	r.GET("/liveness", h.Liveness)
	r.GET("/readiness", h.Readiness)

	assert.Equal(t, http.StatusOK, doGet(r, "/liveness", nil).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/readiness", nil).Code)

	up.pingErr = upstream.ErrUpstreamUnavailable
	assert.Equal(t, http.StatusOK, doGet(r, "/liveness", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, doGet(r, "/readiness", nil).Code)
}
