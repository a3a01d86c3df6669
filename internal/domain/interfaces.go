package domain

import "context"

// Translator is the external collaborator that performs the actual text
// generation. The payload is the fully substituted prompt; the core is
// agnostic to transport and passes modelID through without interpreting it.
type Translator interface {
	// Translate sends a payload and returns the generated text with token counts.
	Translate(ctx context.Context, modelID, payload string) (*TranslationOutput, error)

	// Name returns the translator identifier.
	Name() string
}

// CacheStore persists immutable cache entries keyed by fingerprint.
// Implementations must return ErrCacheMiss for absent fingerprints and must
// never overwrite an existing entry.
type CacheStore interface {
	// Get retrieves the entry for a fingerprint.
	Get(ctx context.Context, fingerprint string) (*CacheEntry, error)

	// Set stores an entry. Writing to an existing fingerprint is a no-op.
	Set(ctx context.Context, fingerprint string, entry *CacheEntry) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

// CostCalculator calculates cost based on token usage.
type CostCalculator interface {
	// Calculate returns the total cost for a model and token counts.
	Calculate(ctx context.Context, modelID string, inputTokens, outputTokens int) (float64, error)
}

// PricingRegistry maintains pricing information for models.
type PricingRegistry interface {
	// GetPricing returns pricing for a model, falling back to a default pair
	// for unknown models.
	GetPricing(ctx context.Context, modelID string) (PricingConfig, error)

	// RegisterPricing adds pricing for a model.
	RegisterPricing(ctx context.Context, modelID string, config PricingConfig) error
}
