// Package openai adapts the official OpenAI SDK to the domain.Translator
// interface. It converts the opaque prompt payload into a single-turn chat
// completion and maps SDK usage back to domain token counts.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sony/gobreaker"

	"github.com/coachview/drillgate/internal/domain"
	"github.com/coachview/drillgate/internal/observability"
)

const (
	providerName = "openai"

	breakerMaxRequests      uint32 = 1
	breakerInterval                = 60 * time.Second
	breakerTimeout                 = 30 * time.Second
	breakerFailureThreshold uint32 = 5
)

// Translator implements domain.Translator using the OpenAI SDK. A circuit
// breaker sits in front of the API so a failing upstream trips fast instead of
// stacking timeouts.
type Translator struct {
	client      openai.Client
	breaker     *gobreaker.CircuitBreaker
	temperature float64
	maxTokens   int
}

// NewTranslator creates a new OpenAI translator.
func NewTranslator(config Config) (*Translator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	opts = append(opts, option.WithMaxRetries(config.MaxRetries))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
	})

	return &Translator{
		client:      openai.NewClient(opts...),
		breaker:     breaker,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}, nil
}

// Translate sends the payload as a single user turn and returns the generated
// text with token counts.
func (t *Translator) Translate(
	ctx context.Context,
	modelID, payload string,
) (*domain.TranslationOutput, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API")

	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.client.Chat.Completions.New(ctx, t.toSDKParams(modelID, payload))
	})
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	resp, ok := result.(*openai.ChatCompletion)
	if !ok || len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return &domain.TranslationOutput{
		OutputText:   resp.Choices[0].Message.Content,
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}, nil
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return providerName
}

// toSDKParams converts the payload into SDK ChatCompletionNewParams.
func (t *Translator) toSDKParams(modelID, payload string) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(payload),
		},
	}

	if t.temperature > 0 {
		params.Temperature = openai.Float(t.temperature)
	}

	if t.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(t.maxTokens))
	}

	return params
}
