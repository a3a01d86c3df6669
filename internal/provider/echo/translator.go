// Package echo provides an offline domain.Translator that returns the payload
// unchanged, with word-count token accounting. It makes no external calls and
// gives deterministic responses for development and tests.
package echo

import (
	"context"
	"strings"

	"github.com/coachview/drillgate/internal/domain"
	"github.com/coachview/drillgate/internal/observability"
)

const providerName = "echo"

// Translator echoes payloads back.
type Translator struct{}

// NewTranslator creates a new echo translator. No configuration is required.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the payload as the translation result.
func (t *Translator) Translate(
	ctx context.Context,
	_ string,
	payload string,
) (*domain.TranslationOutput, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("echoing payload")

	tokens := countTokens(payload)

	return &domain.TranslationOutput{
		OutputText:   payload,
		InputTokens:  tokens,
		OutputTokens: tokens,
	}, nil
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return providerName
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}
