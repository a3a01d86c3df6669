package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coachview/drillgate/internal/observability"
)

// TranslationService wraps the external translator behind deterministic
// fingerprint caching and records every call in the ledger. It owns both the
// cache and the ledger; nothing else writes to either.
type TranslationService struct {
	mu             sync.Mutex
	cache          CacheStore
	ledger         *Ledger
	translator     Translator
	costCalculator CostCalculator
}

// NewTranslationService creates a new translation service (DI constructor).
func NewTranslationService(
	cache CacheStore,
	ledger *Ledger,
	translator Translator,
	costCalculator CostCalculator,
) *TranslationService {
	return &TranslationService{
		mu:             sync.Mutex{},
		cache:          cache,
		ledger:         ledger,
		translator:     translator,
		costCalculator: costCalculator,
	}
}

// Translate resolves a request from the cache or the external translator and
// appends the outcome to the ledger. The whole check-then-act sequence runs
// under one lock so two concurrent requests with the same fingerprint cannot
// both reach the translator. On failure neither cache nor ledger is touched.
func (s *TranslationService) Translate(
	ctx context.Context,
	req *TranslationRequest,
) (*LedgerRecord, error) {
	if req == nil {
		return nil, &ValidationError{Reason: "request cannot be nil"}
	}

	if strings.TrimSpace(req.InputText) == "" {
		return nil, &ValidationError{Reason: "input text cannot be empty"}
	}

	logger := observability.FromContext(ctx)

	fingerprint := Fingerprint(req)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.cache.Get(ctx, fingerprint)
	switch {
	case err == nil:
		logger.Info("cache HIT - serving stored translation",
			observability.String("fingerprint", fingerprint))
		record := cachedRecord(req, entry)
		s.ledger.append(record)
		return &record, nil
	case !errors.Is(err, ErrCacheMiss):
		// A broken cache backend should not block translation.
		logger.Warn("cache get failed, continuing without cache",
			observability.Error(err))
	default:
		logger.Info("cache MISS - calling translator",
			observability.String("translator", s.translator.Name()))
	}

	payload, err := BuildPrompt(req.Template, req.InputText)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	output, err := s.translator.Translate(ctx, req.ModelID, payload)
	if err != nil {
		return nil, &TranslationFailure{Err: err}
	}
	duration := time.Since(start)

	cost, err := s.costCalculator.Calculate(ctx, req.ModelID, output.InputTokens, output.OutputTokens)
	if err != nil {
		return nil, fmt.Errorf("cost calculation failed: %w", err)
	}

	createdAt := time.Now()
	if setErr := s.cache.Set(ctx, fingerprint, &CacheEntry{
		OutputText:   output.OutputText,
		InputTokens:  output.InputTokens,
		OutputTokens: output.OutputTokens,
		CreatedAt:    createdAt,
	}); setErr != nil {
		logger.Warn("failed to store cache entry",
			observability.Error(setErr),
			observability.String("fingerprint", fingerprint))
	}

	record := LedgerRecord{
		Timestamp:       createdAt,
		InputText:       req.InputText,
		OutputText:      output.OutputText,
		InputTokens:     output.InputTokens,
		OutputTokens:    output.OutputTokens,
		DurationSeconds: duration.Seconds(),
		ServedFromCache: false,
		ModelID:         req.ModelID,
		Cost:            cost,
	}
	s.ledger.append(record)

	logger.Info("translation completed",
		observability.Int("input_tokens", output.InputTokens),
		observability.Int("output_tokens", output.OutputTokens),
		observability.Float64("cost", cost))

	return &record, nil
}

// ExportLedger returns a copy of all ledger records in insertion order.
func (s *TranslationService) ExportLedger() []LedgerRecord {
	return s.ledger.Export()
}

// TotalCost returns the cumulative cost of all translator calls so far.
func (s *TranslationService) TotalCost() float64 {
	return s.ledger.TotalCost()
}

// CacheHits returns how many ledger records were served from cache.
func (s *TranslationService) CacheHits() int {
	return s.ledger.CacheHits()
}

// Clear atomically empties both the ledger and the cache.
func (s *TranslationService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	s.ledger.clear()
	return nil
}

// cachedRecord builds the ledger row for a cache hit. Duration is recorded as
// zero by contract (hits are near-instant, not measured) and the incremental
// cost is zero because the original call already paid for the tokens.
func cachedRecord(req *TranslationRequest, entry *CacheEntry) LedgerRecord {
	return LedgerRecord{
		Timestamp:       time.Now(),
		InputText:       req.InputText,
		OutputText:      entry.OutputText,
		InputTokens:     entry.InputTokens,
		OutputTokens:    entry.OutputTokens,
		DurationSeconds: 0,
		ServedFromCache: true,
		ModelID:         req.ModelID,
		Cost:            0,
	}
}
