package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint returns the deterministic cache key for a request. The
// (inputText, template, modelID) triple is JSON-normalized before hashing so
// field boundaries cannot collide regardless of what separator characters
// appear inside the user text.
func Fingerprint(req *TranslationRequest) string {
	normalized, _ := json.Marshal(struct {
		InputText string `json:"input_text"`
		Template  string `json:"template"`
		ModelID   string `json:"model_id"`
	}{
		InputText: req.InputText,
		Template:  req.Template,
		ModelID:   req.ModelID,
	})

	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:])
}
