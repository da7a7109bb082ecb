package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/rpgo/living-cost-simulator/internal/calculation"
	"github.com/rpgo/living-cost-simulator/internal/config"
	"github.com/rpgo/living-cost-simulator/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testDefaults = config.DefaultsConfig{
	City:      config.DefaultCity,
	Job:       config.DefaultJob,
	Lifestyle: config.DefaultLifestyle,
	Inflation: config.DefaultInflationRate,
}

func newTestHandler(tables domain.ReferenceTables) http.Handler {
	return NewHandler(zap.NewNop(), calculation.NewCalculator(tables), Options{Version: "test", Defaults: testDefaults})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestProjectionEndpoint(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	rec := get(t, h, "/api/projection?city=jakarta&job=freshgrad&lifestyle=normal&inflation=5")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report struct {
		CityName string `json:"city_name"`
		Years    []struct {
			Year      int    `json:"year"`
			TotalCost string `json:"total_cost"`
			Balance   string `json:"balance"`
		} `json:"years"`
		Summary struct {
			HasSurplus                  bool   `json:"has_surplus"`
			FiveYearCostIncreasePercent string `json:"five_year_cost_increase_percent"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Jakarta", report.CityName)
	require.Len(t, report.Years, domain.ProjectionYears)
	assert.Equal(t, "8900000", report.Years[0].TotalCost)
	assert.Equal(t, "-3497506", report.Years[4].Balance)
	assert.False(t, report.Summary.HasSurplus)
	assert.Equal(t, "21.6", report.Summary.FiveYearCostIncreasePercent)
}

func TestProjectionEndpoint_Defaults(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	rec := get(t, h, "/api/projection")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"city":"jakarta"`)
	assert.Contains(t, rec.Body.String(), `"inflation_rate_percent":5`)
}

func TestProjectionEndpoint_Formats(t *testing.T) {
	h := newTestHandler(config.DefaultTables())

	rec := get(t, h, "/api/projection?city=medan&job=cs&lifestyle=hemat&inflation=4&format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Year,TotalCost,Salary,Balance,Surplus"))

	rec = get(t, h, "/api/projection?city=medan&job=cs&lifestyle=hemat&inflation=4&format=web")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	rec = get(t, h, "/api/projection?format=pdf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectionEndpoint_BadRequests(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	cases := map[string]string{
		"non-numeric inflation": "/api/projection?inflation=five",
		"inflation too low":     "/api/projection?inflation=2",
		"inflation too high":    "/api/projection?inflation=11",
		"unknown city":          "/api/projection?city=atlantis",
		"unknown job":           "/api/projection?job=astronaut",
		"unknown lifestyle":     "/api/projection?lifestyle=boros",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			rec := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestProjectionEndpoint_ComputationError(t *testing.T) {
	tables := config.DefaultTables()
	tables.Cities["void"] = domain.CityProfile{Name: "Void"}
	h := newTestHandler(tables)

	rec := get(t, h, "/api/projection?city=void")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "zero")
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/projection", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReferenceEndpoint(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	rec := get(t, h, "/api/reference")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp referenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Cities, 6)
	assert.Len(t, resp.Jobs, 8)
	require.Len(t, resp.Lifestyles, 3)
	assert.Equal(t, []string{"hemat", "normal", "mewah"},
		[]string{resp.Lifestyles[0].Key, resp.Lifestyles[1].Key, resp.Lifestyles[2].Key})
	assert.Equal(t, inflationRange{Min: 3, Max: 10, Default: 5}, resp.Inflation)
}

func TestVersionEndpoint(t *testing.T) {
	h := newTestHandler(config.DefaultTables())
	rec := get(t, h, "/api/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"test"}`, rec.Body.String())
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cfg := config.ServerConfig{ReadTimeout: time.Second, ShutdownTimeout: time.Second}
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, cfg, newTestHandler(config.DefaultTables()), zap.NewNop())
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = client.Get("http://" + ln.Addr().String() + "/api/version")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, string(body), "test")
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidAddress(t *testing.T) {
	err := Run(context.Background(), config.ServerConfig{Address: "bad-address"}, http.NotFoundHandler(), zap.NewNop())
	assert.Error(t, err)
}
