package pricing_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coachview/drillgate/internal/pricing"
)

func TestNewRegistry_BuiltInDefaults(t *testing.T) {
	ctx := context.Background()

	registry, err := pricing.NewRegistry(ctx, "")
	require.NoError(t, err)

	config, err := registry.GetPricing(ctx, "anything")
	require.NoError(t, err)
	require.InEpsilon(t, 3.0, config.InputCostPer1M, 1e-9)
	require.InEpsilon(t, 15.0, config.OutputCostPer1M, 1e-9)
}

func TestNewRegistry_LoadsTable(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "pricing.yaml")
	table := `default:
  input_cost_per_1m: 1.0
  output_cost_per_1m: 2.0
models:
  gpt-4o:
    input_cost_per_1m: 2.5
    output_cost_per_1m: 10.0
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o600))

	registry, err := pricing.NewRegistry(ctx, path)
	require.NoError(t, err)

	known, err := registry.GetPricing(ctx, "gpt-4o")
	require.NoError(t, err)
	require.InEpsilon(t, 2.5, known.InputCostPer1M, 1e-9)
	require.InEpsilon(t, 10.0, known.OutputCostPer1M, 1e-9)

	unknown, err := registry.GetPricing(ctx, "some-new-model")
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, unknown.InputCostPer1M, 1e-9)
	require.InEpsilon(t, 2.0, unknown.OutputCostPer1M, 1e-9)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := pricing.NewRegistry(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewRegistry_MalformedTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [not, a, map]"), 0o600))

	_, err := pricing.NewRegistry(context.Background(), path)
	require.Error(t, err)
}
