// Package pricing loads the per-model rate table that feeds cost accounting.
//
// The table is a yaml file:
//
//	default:
//	  input_cost_per_1m: 3.0
//	  output_cost_per_1m: 15.0
//	models:
//	  gpt-4o:
//	    input_cost_per_1m: 2.5
//	    output_cost_per_1m: 10.0
//
// Rates are USD per one million tokens. Models missing from the table fall
// back to the default pair.
package pricing

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coachview/drillgate/internal/domain"
)

// Built-in fallback rates used when no table file is configured.
const (
	defaultInputCostPer1M  = 3.0
	defaultOutputCostPer1M = 15.0
)

type rateEntry struct {
	InputCostPer1M  float64 `yaml:"input_cost_per_1m"`
	OutputCostPer1M float64 `yaml:"output_cost_per_1m"`
}

type rateTable struct {
	Default rateEntry            `yaml:"default"`
	Models  map[string]rateEntry `yaml:"models"`
}

// NewRegistry loads the rate table at path and returns a populated registry.
// An empty path uses the built-in defaults only.
func NewRegistry(ctx context.Context, path string) (*domain.InMemoryPricingRegistry, error) {
	table := rateTable{
		Default: rateEntry{
			InputCostPer1M:  defaultInputCostPer1M,
			OutputCostPer1M: defaultOutputCostPer1M,
		},
		Models: nil,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pricing table: %w", err)
		}

		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse pricing table: %w", err)
		}
	}

	registry := domain.NewInMemoryPricingRegistry(domain.PricingConfig{
		InputCostPer1M:  table.Default.InputCostPer1M,
		OutputCostPer1M: table.Default.OutputCostPer1M,
	})

	for model, entry := range table.Models {
		if err := registry.RegisterPricing(ctx, model, domain.PricingConfig{
			InputCostPer1M:  entry.InputCostPer1M,
			OutputCostPer1M: entry.OutputCostPer1M,
		}); err != nil {
			return nil, fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}

	return registry, nil
}
