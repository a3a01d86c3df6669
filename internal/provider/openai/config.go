package openai

// Config contains OpenAI translator configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//
// MaxRetries defaults to 0: a failed call is terminal and the caller decides
// whether to issue a fresh one.
type Config struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL"     envDefault:"https://api.openai.com/v1"`
	Timeout     int     `env:"OPENAI_TIMEOUT"      envDefault:"60"`
	MaxRetries  int     `env:"OPENAI_MAX_RETRIES"  envDefault:"0"`
	Temperature float64 `env:"OPENAI_TEMPERATURE"  envDefault:"1"`
	MaxTokens   int     `env:"OPENAI_MAX_TOKENS"   envDefault:"20904"`
}
