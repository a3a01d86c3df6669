package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/coachview/drillgate/internal/provider/openai"
)

// DefaultTemplate is the stock coaching prompt shipped with the hosted tool.
// The {text} placeholder receives the pasted Spanish drill description; the
// trailing opening tag is plain template content the model is expected to
// continue.
const DefaultTemplate = `<examples>
<example>
<SPANISH_DRILL_DESCRIPTION>
{text}
</SPANISH_DRILL_DESCRIPTION>
</example>
</examples>

You are a specialized translator for football/soccer coaching content. Translate the Spanish drill description above into the standardized English coaching format. Keep tactical terminology precise, preserve measurements and player counts exactly, and structure the output as setup, execution and coaching points.

<content_breakdown>`

// Config represents the drillgate configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	OpenAI    openai.Config
	Cache     CacheConfig
	Pricing   PricingConfig
	Translate TranslateConfig
	Batch     BatchConfig
	Ledger    LedgerConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend   string `env:"CACHE_BACKEND"    envDefault:"memory"` // memory or redis
	RedisAddr string `env:"CACHE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"CACHE_REDIS_DB"   envDefault:"0"`
	TTL       int    `env:"CACHE_TTL"        envDefault:"0"` // seconds, 0 = no expiry
}

// PricingConfig points at the yaml rate table.
type PricingConfig struct {
	TablePath string `env:"PRICING_TABLE_PATH"`
}

// TranslateConfig carries the prompt template and model defaults. Template is
// resolved at load time from TemplatePath, falling back to DefaultTemplate.
type TranslateConfig struct {
	Provider     string `env:"TRANSLATE_PROVIDER"      envDefault:"openai"` // openai or echo
	DefaultModel string `env:"TRANSLATE_DEFAULT_MODEL" envDefault:"gpt-4o"`
	TemplatePath string `env:"TRANSLATE_TEMPLATE_PATH"`
	Template     string
}

// BatchConfig paces sequential batch runs.
type BatchConfig struct {
	CallsPerMinute int `env:"BATCH_CALLS_PER_MINUTE" envDefault:"12"`
}

// LedgerConfig configures the optional sqlite ledger archive.
type LedgerConfig struct {
	ArchivePath string `env:"LEDGER_ARCHIVE_PATH"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*openai.Config
	*CacheConfig
	*PricingConfig
	*TranslateConfig
	*BatchConfig
	*LedgerConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	cfg.Translate.Template = DefaultTemplate
	if cfg.Translate.TemplatePath != "" {
		data, err := os.ReadFile(cfg.Translate.TemplatePath)
		if err != nil {
			panic(err)
		}
		cfg.Translate.Template = string(data)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.OpenAI,
		&cfg.Cache,
		&cfg.Pricing,
		&cfg.Translate,
		&cfg.Batch,
		&cfg.Ledger,
	}
}
