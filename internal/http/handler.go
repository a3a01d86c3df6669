package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/coachview/drillgate/internal/config"
	"github.com/coachview/drillgate/internal/domain"
	"github.com/coachview/drillgate/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	service *domain.TranslationService
	cfg     *config.TranslateConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(service *domain.TranslationService, cfg *config.TranslateConfig) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
	}
}

// translateRequest is the request body for POST /v1/translate. Model is
// optional and defaults to the configured model.
type translateRequest struct {
	InputText string `json:"input_text"`
	Model     string `json:"model,omitempty"`
}

// HandleTranslate processes translation requests.
func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	model := req.Model
	if model == "" {
		model = h.cfg.DefaultModel
	}

	ctx = observability.WithModel(ctx, model)
	logger := observability.FromContext(ctx)
	logger.Info("translation request received",
		zap.Int("input_length", len(req.InputText)),
	)

	record, err := h.service.Translate(ctx, &domain.TranslationRequest{
		InputText: req.InputText,
		Template:  h.cfg.Template,
		ModelID:   model,
	})
	if err != nil {
		h.writeTranslateError(ctx, w, err)
		return
	}

	logger.Info("translation request succeeded",
		zap.Bool("served_from_cache", record.ServedFromCache),
		zap.Float64("cost", record.Cost),
	)

	writeJSON(ctx, w, record)
}

// writeTranslateError maps the core error taxonomy to HTTP status codes.
// Validation faults belong to the client, template faults to our
// configuration, and translator faults to the upstream service.
func (h *Handler) writeTranslateError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	var validationErr *domain.ValidationError
	var templateErr *domain.TemplateError
	var failure *domain.TranslationFailure

	switch {
	case errors.As(err, &validationErr):
		logger.Warn("translation request rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &templateErr):
		logger.Error("template misconfigured", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	case errors.As(err, &failure):
		logger.Error("translator call failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		logger.Error("translation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleLedger returns all ledger records in insertion order.
func (h *Handler) HandleLedger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(r.Context(), w, h.service.ExportLedger())
}

// HandleCosts returns the cumulative cost summary.
func (h *Handler) HandleCosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records := h.service.ExportLedger()
	writeJSON(r.Context(), w, map[string]interface{}{
		"total_cost": h.service.TotalCost(),
		"records":    len(records),
		"cache_hits": h.service.CacheHits(),
	})
}

// HandleClear atomically empties both the ledger and the cache.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.Clear(ctx); err != nil {
		observability.FromContext(ctx).Error("failed to clear ledger", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, map[string]string{"status": "cleared"})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, map[string]string{"status": "healthy"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}
