package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/coachview/drillgate/internal/batch"
	"github.com/coachview/drillgate/internal/cache/memory"
	rediscache "github.com/coachview/drillgate/internal/cache/redis"
	"github.com/coachview/drillgate/internal/config"
	"github.com/coachview/drillgate/internal/domain"
	"github.com/coachview/drillgate/internal/http"
	"github.com/coachview/drillgate/internal/http/middleware"
	"github.com/coachview/drillgate/internal/observability"
	"github.com/coachview/drillgate/internal/pricing"
	"github.com/coachview/drillgate/internal/provider/echo"
	"github.com/coachview/drillgate/internal/provider/openai"
	"github.com/coachview/drillgate/internal/store/sqlite"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "drillgate",
		Short:   "Drillgate — Spanish drill translation gateway with caching and a cost ledger",
		Version: version,
	}

	root.AddCommand(
		newServeCmd(),
		newTranslateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the translation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer()
			return container.Invoke(func(_ *zap.Logger, server *http.Server) error {
				return server.Start()
			})
		},
	}
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [file]",
		Short: "Batch-translate drill descriptions, one per line (- or no arg reads stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args)
			if err != nil {
				return err
			}

			container := buildContainer()
			return container.Invoke(func(
				_ *zap.Logger,
				cfg *config.Config,
				service *domain.TranslationService,
				runner *batch.Runner,
			) error {
				return runBatch(cmd.Context(), cfg, service, runner, inputs)
			})
		},
	}
}

func runBatch(
	ctx context.Context,
	cfg *config.Config,
	service *domain.TranslationService,
	runner *batch.Runner,
	inputs []string,
) error {
	results, err := runner.Run(ctx, cfg.Translate.Template, cfg.Translate.DefaultModel, inputs)
	if err != nil {
		return err
	}

	failed := 0
	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "[%d] failed: %v\n", i+1, result.Err)
			continue
		}

		fmt.Printf("[%d] cached=%t tokens=%d/%d cost=$%.6f\n%s\n\n",
			i+1,
			result.Record.ServedFromCache,
			result.Record.InputTokens,
			result.Record.OutputTokens,
			result.Record.Cost,
			result.Record.OutputText,
		)
	}

	fmt.Printf("translated %d/%d, total cost $%.6f\n",
		len(results)-failed, len(results), service.TotalCost())

	if cfg.Ledger.ArchivePath != "" {
		archive, err := sqlite.Open(cfg.Ledger.ArchivePath)
		if err != nil {
			return err
		}
		defer archive.Close()

		if err := archive.Append(ctx, service.ExportLedger()); err != nil {
			return err
		}
	}

	return nil
}

func readInputs(args []string) ([]string, error) {
	reader := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var inputs []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Pricing
	if err := container.Provide(func(cfg *config.PricingConfig) (domain.PricingRegistry, error) {
		return pricing.NewRegistry(context.Background(), cfg.TablePath)
	}); err != nil {
		log.Fatalf("Failed to provide pricing registry: %v", err)
	}
	if err := container.Provide(func(registry domain.PricingRegistry) domain.CostCalculator {
		return domain.NewStandardCostCalculator(registry)
	}); err != nil {
		log.Fatalf("Failed to provide cost calculator: %v", err)
	}

	// Cache
	if err := container.Provide(func(cfg *config.CacheConfig) (domain.CacheStore, error) {
		switch cfg.Backend {
		case "redis":
			client := goredis.NewClient(&goredis.Options{
				Addr: cfg.RedisAddr,
				DB:   cfg.RedisDB,
			})
			return rediscache.NewStore(client, time.Duration(cfg.TTL)*time.Second), nil
		case "memory":
			return memory.NewStore(), nil
		default:
			return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
		}
	}); err != nil {
		log.Fatalf("Failed to provide cache store: %v", err)
	}

	// Translator
	if err := container.Provide(func(cfg *config.Config) (domain.Translator, error) {
		switch cfg.Translate.Provider {
		case "echo":
			return echo.NewTranslator(), nil
		case "openai":
			return openai.NewTranslator(cfg.OpenAI)
		default:
			return nil, fmt.Errorf("unknown translate provider: %s", cfg.Translate.Provider)
		}
	}); err != nil {
		log.Fatalf("Failed to provide translator: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewLedger); err != nil {
		log.Fatalf("Failed to provide ledger: %v", err)
	}
	if err := container.Provide(domain.NewTranslationService); err != nil {
		log.Fatalf("Failed to provide translation service: %v", err)
	}

	// Batch
	if err := container.Provide(func(service *domain.TranslationService, cfg *config.BatchConfig) *batch.Runner {
		return batch.NewRunner(service, cfg.CallsPerMinute)
	}); err != nil {
		log.Fatalf("Failed to provide batch runner: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(corsConfig *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsConfig)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
