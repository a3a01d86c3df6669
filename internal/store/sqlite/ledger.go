// Package sqlite archives exported ledger records in a SQLite database. The
// in-memory ledger stays the source of truth for a running process; the
// archive exists for offline inspection across sessions.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/coachview/drillgate/internal/domain"
)

const createLedgerTable = `
CREATE TABLE IF NOT EXISTS ledger_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME NOT NULL,
	input_text TEXT NOT NULL,
	output_text TEXT NOT NULL,
	input_tokens INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	duration_seconds REAL NOT NULL,
	served_from_cache INTEGER NOT NULL,
	model_id TEXT NOT NULL,
	cost REAL NOT NULL
);
`

// Archive is a durable ledger sink.
type Archive struct {
	db *sql.DB
}

// Open opens the archive database at path and creates the schema.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger archive: %w", err)
	}

	if _, err := db.Exec(createLedgerTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate ledger archive: %w", err)
	}

	return &Archive{db: db}, nil
}

// Append inserts records in order inside one transaction.
func (a *Archive) Append(ctx context.Context, records []domain.LedgerRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}

	for _, record := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ledger_records
				(timestamp, input_text, output_text, input_tokens, output_tokens,
				 duration_seconds, served_from_cache, model_id, cost)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.Timestamp, record.InputText, record.OutputText,
			record.InputTokens, record.OutputTokens, record.DurationSeconds,
			record.ServedFromCache, record.ModelID, record.Cost,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert ledger record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	return nil
}

// Summary aggregates the archived records.
type Summary struct {
	Records     int64
	CacheHits   int64
	TotalTokens int64
	TotalCost   float64
}

// Summarize returns aggregate totals over the whole archive.
func (a *Archive) Summarize(ctx context.Context) (Summary, error) {
	var summary Summary

	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(served_from_cache), 0),
			COALESCE(SUM(input_tokens + output_tokens), 0),
			COALESCE(SUM(cost), 0)
		 FROM ledger_records`,
	).Scan(&summary.Records, &summary.CacheHits, &summary.TotalTokens, &summary.TotalCost)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize ledger archive: %w", err)
	}

	return summary, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
