package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachview/drillgate/internal/domain"
	"github.com/coachview/drillgate/internal/store/sqlite"
)

func openArchive(t *testing.T) *sqlite.Archive {
	t.Helper()

	archive, err := sqlite.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })

	return archive
}

func TestArchive_AppendAndSummarize(t *testing.T) {
	ctx := context.Background()
	archive := openArchive(t)

	now := time.Now().UTC()
	records := []domain.LedgerRecord{
		{
			Timestamp:       now,
			InputText:       "Hola",
			OutputText:      "Hello",
			InputTokens:     5,
			OutputTokens:    3,
			DurationSeconds: 1.2,
			ServedFromCache: false,
			ModelID:         "m1",
			Cost:            0.000022,
		},
		{
			Timestamp:       now.Add(time.Second),
			InputText:       "Hola",
			OutputText:      "Hello",
			InputTokens:     5,
			OutputTokens:    3,
			DurationSeconds: 0,
			ServedFromCache: true,
			ModelID:         "m1",
			Cost:            0,
		},
		{
			Timestamp:       now.Add(2 * time.Second),
			InputText:       "Adiós",
			OutputText:      "Goodbye",
			InputTokens:     4,
			OutputTokens:    2,
			DurationSeconds: 0.8,
			ServedFromCache: false,
			ModelID:         "m1",
			Cost:            0.000018,
		},
	}

	require.NoError(t, archive.Append(ctx, records))

	summary, err := archive.Summarize(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), summary.Records)
	require.Equal(t, int64(1), summary.CacheHits)
	require.Equal(t, int64(22), summary.TotalTokens)
	require.InEpsilon(t, 0.00004, summary.TotalCost, 1e-9)
}

func TestArchive_AppendNothing(t *testing.T) {
	ctx := context.Background()
	archive := openArchive(t)

	require.NoError(t, archive.Append(ctx, nil))

	summary, err := archive.Summarize(ctx)
	require.NoError(t, err)
	require.Zero(t, summary.Records)
	require.Zero(t, summary.TotalCost)
}

func TestArchive_AppendIsCumulative(t *testing.T) {
	ctx := context.Background()
	archive := openArchive(t)

	record := domain.LedgerRecord{
		Timestamp:   time.Now().UTC(),
		InputText:   "Hola",
		OutputText:  "Hello",
		InputTokens: 1,
		ModelID:     "m1",
	}

	require.NoError(t, archive.Append(ctx, []domain.LedgerRecord{record}))
	require.NoError(t, archive.Append(ctx, []domain.LedgerRecord{record}))

	summary, err := archive.Summarize(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), summary.Records)
}
