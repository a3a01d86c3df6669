// Package batch translates many drill descriptions sequentially. Items run
// one at a time with a rate limiter between calls so upstream quotas are
// respected; parallel fan-out is deliberately absent.
package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/coachview/drillgate/internal/domain"
)

// Result pairs one input with its outcome. Exactly one of Record and Err is
// set.
type Result struct {
	InputText string
	Record    *domain.LedgerRecord
	Err       error
}

// Runner drives sequential batch translation.
type Runner struct {
	service *domain.TranslationService
	limiter *rate.Limiter
}

// NewRunner creates a runner pacing at callsPerMinute. Zero or negative
// disables pacing.
func NewRunner(service *domain.TranslationService, callsPerMinute int) *Runner {
	limit := rate.Inf
	if callsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(callsPerMinute))
	}

	return &Runner{
		service: service,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run translates each input in order. A failed item records its error and the
// run continues; only a cancelled context stops the loop early.
func (r *Runner) Run(
	ctx context.Context,
	template, modelID string,
	inputs []string,
) ([]Result, error) {
	results := make([]Result, 0, len(inputs))

	for _, input := range inputs {
		if err := r.limiter.Wait(ctx); err != nil {
			return results, fmt.Errorf("rate limiter wait: %w", err)
		}

		record, err := r.service.Translate(ctx, &domain.TranslationRequest{
			InputText: input,
			Template:  template,
			ModelID:   modelID,
		})

		results = append(results, Result{
			InputText: input,
			Record:    record,
			Err:       err,
		})
	}

	return results, nil
}
