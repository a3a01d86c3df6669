package domain

import "sync"

// Ledger is the append-only, ordered record of every translation call. All
// mutation goes through the owning TranslationService; external packages only
// read through Export and the aggregate accessors.
type Ledger struct {
	mu      sync.RWMutex
	records []LedgerRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		mu:      sync.RWMutex{},
		records: nil,
	}
}

func (l *Ledger) append(record LedgerRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

func (l *Ledger) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil
}

// Export returns a copy of all records in insertion order.
func (l *Ledger) Export() []LedgerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]LedgerRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// TotalCost returns the cumulative cost across all records. Cache hits carry
// zero cost, so the sum only grows with calls that reached the translator.
func (l *Ledger) TotalCost() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0.0
	for _, record := range l.records {
		total += record.Cost
	}
	return total
}

// CacheHits returns how many records were served from cache.
func (l *Ledger) CacheHits() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	hits := 0
	for _, record := range l.records {
		if record.ServedFromCache {
			hits++
		}
	}
	return hits
}
