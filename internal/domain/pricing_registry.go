package domain

import (
	"context"
	"errors"
	"sync"
)

// InMemoryPricingRegistry stores pricing configs in memory. Lookups for
// unknown models return the default rate pair instead of failing, so a new
// model ID never blocks a translation.
type InMemoryPricingRegistry struct {
	mu             sync.RWMutex
	pricing        map[string]PricingConfig
	defaultPricing PricingConfig
}

// NewInMemoryPricingRegistry creates a registry with the given fallback rates.
func NewInMemoryPricingRegistry(defaultPricing PricingConfig) *InMemoryPricingRegistry {
	return &InMemoryPricingRegistry{
		mu:             sync.RWMutex{},
		pricing:        make(map[string]PricingConfig),
		defaultPricing: defaultPricing,
	}
}

// GetPricing retrieves pricing for a model, falling back to the default pair.
func (r *InMemoryPricingRegistry) GetPricing(
	_ context.Context,
	modelID string,
) (PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, exists := r.pricing[modelID]
	if !exists {
		return r.defaultPricing, nil
	}

	return config, nil
}

// RegisterPricing adds pricing for a model.
func (r *InMemoryPricingRegistry) RegisterPricing(
	_ context.Context,
	modelID string,
	config PricingConfig,
) error {
	if modelID == "" {
		return errors.New("model cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pricing[modelID] = config
	return nil
}
