package domain

// PricingConfig contains model pricing information.
type PricingConfig struct {
	InputCostPer1M  float64 // USD per 1M input tokens
	OutputCostPer1M float64 // USD per 1M output tokens
}
