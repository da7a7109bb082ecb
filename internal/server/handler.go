package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/rpgo/living-cost-simulator/internal/calculation"
	"github.com/rpgo/living-cost-simulator/internal/config"
	"github.com/rpgo/living-cost-simulator/internal/domain"
	"github.com/rpgo/living-cost-simulator/internal/output"
)

// Options configures the HTTP API.
type Options struct {
	Version  string
	Defaults config.DefaultsConfig // used for query parameters left empty
}

type handler struct {
	logger   *zap.Logger
	calc     *calculation.Calculator
	version  string
	defaults config.DefaultsConfig
}

// NewHandler returns the JSON API for calc:
//
//	GET /api/projection?city=&job=&lifestyle=&inflation=[&format=]
//	GET /api/reference
//	GET /api/version
func NewHandler(logger *zap.Logger, calc *calculation.Calculator, opts Options) http.Handler {
	h := &handler{logger: logger, calc: calc, version: opts.Version, defaults: opts.Defaults}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projection", h.handleProjection)
	mux.HandleFunc("GET /api/reference", h.handleReference)
	mux.HandleFunc("GET /api/version", h.handleVersion)
	return h.logRequests(mux)
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	sel, err := h.selectionFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := h.calc.Run(sel)
	if err != nil {
		var lookupErr *domain.LookupError
		if errors.As(err, &lookupErr) {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		h.logger.Error("projection failed", zap.String("op", "projection"), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		h.writeJSON(w, http.StatusOK, report)
		return
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, report, format); err != nil {
		if errors.Is(err, output.ErrUnsupportedFormat) {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentType(output.NormalizeFormatName(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) selectionFromQuery(r *http.Request) (domain.Selection, error) {
	q := r.URL.Query()
	sel := domain.Selection{
		City:                 valueOr(q.Get("city"), h.defaults.City),
		Job:                  valueOr(q.Get("job"), h.defaults.Job),
		Lifestyle:            valueOr(q.Get("lifestyle"), h.defaults.Lifestyle),
		InflationRatePercent: h.defaults.Inflation,
	}
	if raw := q.Get("inflation"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Selection{}, fmt.Errorf("invalid inflation %q: must be a whole percent", raw)
		}
		sel.InflationRatePercent = n
	}
	if err := calculation.ValidateInflation(sel.InflationRatePercent); err != nil {
		return domain.Selection{}, err
	}
	return sel, nil
}

// referenceResponse lists the selectable options in display order.
type referenceResponse struct {
	Cities     []referenceOption `json:"cities"`
	Jobs       []referenceOption `json:"jobs"`
	Lifestyles []referenceOption `json:"lifestyles"`
	Inflation  inflationRange    `json:"inflation"`
}

type referenceOption struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Detail any    `json:"detail"`
}

type inflationRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

func (h *handler) handleReference(w http.ResponseWriter, _ *http.Request) {
	tables := h.calc.Tables()
	resp := referenceResponse{
		Inflation: inflationRange{
			Min:     calculation.MinInflationPercent,
			Max:     calculation.MaxInflationPercent,
			Default: h.defaults.Inflation,
		},
	}
	for _, k := range tables.CityKeys() {
		c := tables.Cities[k]
		resp.Cities = append(resp.Cities, referenceOption{Key: k, Name: c.Name, Detail: c})
	}
	for _, k := range tables.JobKeys() {
		j := tables.Jobs[k]
		resp.Jobs = append(resp.Jobs, referenceOption{Key: k, Name: j.Name, Detail: j})
	}
	for _, k := range tables.LifestyleKeys() {
		l := tables.Lifestyles[k]
		resp.Lifestyles = append(resp.Lifestyles, referenceOption{Key: k, Name: l.Name, Detail: l})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.String("op", "writeJSON"), zap.Error(err))
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request served",
			zap.String("op", "http"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func contentType(format string) string {
	switch format {
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
