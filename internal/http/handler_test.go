package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coachview/drillgate/internal/cache/memory"
	"github.com/coachview/drillgate/internal/config"
	"github.com/coachview/drillgate/internal/domain"
	drillhttp "github.com/coachview/drillgate/internal/http"
)

type stubTranslator struct {
	calls int
	err   error
}

func (s *stubTranslator) Translate(
	_ context.Context,
	_, _ string,
) (*domain.TranslationOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.TranslationOutput{OutputText: "Hello", InputTokens: 5, OutputTokens: 3}, nil
}

func (s *stubTranslator) Name() string {
	return "stub"
}

func newTestHandler(translator domain.Translator) *drillhttp.Handler {
	registry := domain.NewInMemoryPricingRegistry(domain.PricingConfig{
		InputCostPer1M:  1.0,
		OutputCostPer1M: 2.0,
	})
	service := domain.NewTranslationService(
		memory.NewStore(),
		domain.NewLedger(),
		translator,
		domain.NewStandardCostCalculator(registry),
	)

	return drillhttp.NewHandler(service, &config.TranslateConfig{
		Provider:     "stub",
		DefaultModel: "m1",
		Template:     "Translate: {text}",
	})
}

func TestHandleTranslate_Success(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	req := httptest.NewRequest(http.MethodPost, "/v1/translate",
		strings.NewReader(`{"input_text":"Hola"}`))
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.LedgerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.Equal(t, "Hello", record.OutputText)
	require.Equal(t, "m1", record.ModelID)
	require.False(t, record.ServedFromCache)
}

func TestHandleTranslate_ModelOverride(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	req := httptest.NewRequest(http.MethodPost, "/v1/translate",
		strings.NewReader(`{"input_text":"Hola","model":"m2"}`))
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.LedgerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.Equal(t, "m2", record.ModelID)
}

func TestHandleTranslate_EmptyInput(t *testing.T) {
	stub := &stubTranslator{}
	handler := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/translate",
		strings.NewReader(`{"input_text":"   "}`))
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, stub.calls)
}

func TestHandleTranslate_UpstreamFailure(t *testing.T) {
	handler := newTestHandler(&stubTranslator{err: errors.New("upstream down")})

	req := httptest.NewRequest(http.MethodPost, "/v1/translate",
		strings.NewReader(`{"input_text":"Hola"}`))
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleTranslate_InvalidBody(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	req := httptest.NewRequest(http.MethodPost, "/v1/translate", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTranslate_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	req := httptest.NewRequest(http.MethodGet, "/v1/translate", nil)
	rec := httptest.NewRecorder()

	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleLedgerAndCosts(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	// Two identical calls: one miss, one hit.
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/v1/translate",
			strings.NewReader(`{"input_text":"Hola"}`))
		rec := httptest.NewRecorder()
		handler.HandleTranslate(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.HandleLedger(rec, httptest.NewRequest(http.MethodGet, "/v1/ledger", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var records []domain.LedgerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	require.False(t, records[0].ServedFromCache)
	require.True(t, records[1].ServedFromCache)

	rec = httptest.NewRecorder()
	handler.HandleCosts(rec, httptest.NewRequest(http.MethodGet, "/v1/costs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var costs struct {
		TotalCost float64 `json:"total_cost"`
		Records   int     `json:"records"`
		CacheHits int     `json:"cache_hits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &costs))
	require.Equal(t, 2, costs.Records)
	require.Equal(t, 1, costs.CacheHits)
	require.Positive(t, costs.TotalCost)
}

func TestHandleClear(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	req := httptest.NewRequest(http.MethodPost, "/v1/translate",
		strings.NewReader(`{"input_text":"Hola"}`))
	rec := httptest.NewRecorder()
	handler.HandleTranslate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.HandleClear(rec, httptest.NewRequest(http.MethodPost, "/v1/ledger/clear", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.HandleLedger(rec, httptest.NewRequest(http.MethodGet, "/v1/ledger", nil))

	var records []domain.LedgerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Empty(t, records)
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(&stubTranslator{})

	rec := httptest.NewRecorder()
	handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
