package domain

import "time"

// TranslationRequest identifies a single translation call. ModelID is opaque
// to the core: it participates in the fingerprint and in cost lookup, nothing
// else interprets it.
type TranslationRequest struct {
	InputText string `json:"input_text"`
	Template  string `json:"template"`
	ModelID   string `json:"model_id"`
}

// TranslationOutput is what the external translator returns on success.
type TranslationOutput struct {
	OutputText   string `json:"output_text"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// CacheEntry holds the stored outcome for a fingerprint. Entries are written
// once and never updated.
type CacheEntry struct {
	OutputText   string    `json:"output_text"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CreatedAt    time.Time `json:"created_at"`
}

// LedgerRecord is one row of the append-only translation ledger. Cache hits
// carry a zero duration and zero incremental cost; the cost of the original
// call stays on the record that created the cache entry.
type LedgerRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	InputText       string    `json:"input_text"`
	OutputText      string    `json:"output_text"`
	InputTokens     int       `json:"input_tokens"`
	OutputTokens    int       `json:"output_tokens"`
	DurationSeconds float64   `json:"duration_seconds"`
	ServedFromCache bool      `json:"served_from_cache"`
	ModelID         string    `json:"model_id"`
	Cost            float64   `json:"cost"`
}
