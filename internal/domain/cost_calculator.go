package domain

import "context"

const tokensPerMillion = 1_000_000.0

// StandardCostCalculator implements per-token cost calculation against a
// pricing registry.
type StandardCostCalculator struct {
	pricingRegistry PricingRegistry
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(registry PricingRegistry) *StandardCostCalculator {
	return &StandardCostCalculator{
		pricingRegistry: registry,
	}
}

// Calculate computes the total cost based on token counts and model pricing.
// The model ID is opaque: any ID the registry does not know, the empty string
// included, is charged at the default rate pair.
func (c *StandardCostCalculator) Calculate(
	ctx context.Context,
	modelID string,
	inputTokens, outputTokens int,
) (float64, error) {
	pricing, err := c.pricingRegistry.GetPricing(ctx, modelID)
	if err != nil {
		return 0, err
	}

	inputCost := float64(inputTokens) / tokensPerMillion * pricing.InputCostPer1M
	outputCost := float64(outputTokens) / tokensPerMillion * pricing.OutputCostPer1M

	return inputCost + outputCost, nil
}
