package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/phoboco/phoboco-email-autoresponder/internal/config"
	"github.com/phoboco/phoboco-email-autoresponder/internal/llm"
	"github.com/phoboco/phoboco-email-autoresponder/internal/rate"
	"github.com/phoboco/phoboco-email-autoresponder/internal/reply"
	"github.com/phoboco/phoboco-email-autoresponder/internal/runtime"
)

var errLabelsFailed = errors.New("one or more labels failed")

type responderConfig struct {
	authDir    string
	configFile string
	labels     string
	provider   string
	model      string
	endpoint   string
	pageSize   int
	rps        int
	dryRun     bool
	strict     bool
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		runtime.DefaultLogger().Error("autoresponder failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() responderConfig {
	authDir := flag.String("auth-dir", os.ExpandEnv("$HOME/.gmailctl"), "directory holding credentials.json and the cached OAuth token")
	configFile := flag.String("config", "", "optional YAML config file (labels, prompt, llm settings)")
	labels := flag.String("labels", "", "comma separated labels to process (overrides config)")
	provider := flag.String("provider", "", "generation provider: openai or ollama (overrides config)")
	model := flag.String("model", "", "generation model (overrides config)")
	endpoint := flag.String("endpoint", "", "ollama endpoint URL (overrides config)")
	pageSize := flag.Int("page-size", 100, "Gmail list page size (<=500)")
	rps := flag.Int("rps", 4, "max outbound requests per second")
	dryRun := flag.Bool("dry-run", false, "log candidate messages; skip generation and draft creation")
	strict := flag.Bool("strict", false, "exit nonzero when any label fails (default mirrors the original: label failures are logged only)")
	flag.Parse()

	return responderConfig{
		authDir:    *authDir,
		configFile: *configFile,
		labels:     *labels,
		provider:   *provider,
		model:      *model,
		endpoint:   *endpoint,
		pageSize:   *pageSize,
		rps:        *rps,
		dryRun:     *dryRun,
		strict:     *strict,
	}
}

func run(cfg responderConfig) error {
	// A local .env is a convenient place for OPENAI_API_KEY; absence is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fileCfg, err := config.Load(cfg.configFile)
	if err != nil {
		return err
	}
	if cfg.provider != "" {
		fileCfg.LLM.Provider = cfg.provider
	}
	if cfg.model != "" {
		fileCfg.LLM.Model = cfg.model
	}
	if cfg.endpoint != "" {
		fileCfg.LLM.Endpoint = cfg.endpoint
	}
	labels := fileCfg.Labels
	if override := splitList(cfg.labels); len(override) > 0 {
		labels = override
	}

	logger := runtime.DefaultLogger()

	// The generator is built before the Gmail client on purpose: a missing
	// API key must abort the run before any mail-service call.
	generator, err := llm.NewProviderFromConfig(
		fileCfg.LLM.Provider,
		fileCfg.LLM.Endpoint,
		fileCfg.LLM.Model,
		fileCfg.LLM.MaxTokens,
		fileCfg.LLM.Temperature,
		time.Duration(fileCfg.LLM.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("configure generation provider: %w", err)
	}

	client, err := runtime.NewGmailClient(ctx, cfg.authDir)
	if err != nil {
		return fmt.Errorf("create gmail client: %w", err)
	}

	var limiter rate.Limiter
	if cfg.rps > 0 {
		limiter = rate.NewPacer(cfg.rps)
	}

	svc := reply.NewService(client, generator, limiter, logger)
	svc.Prompt = fileCfg.Prompt

	spec := reply.Spec{
		Labels:   labels,
		PageSize: cfg.pageSize,
		DryRun:   cfg.dryRun,
	}

	results, err := svc.Run(ctx, spec)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	failed := 0
	drafted := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		drafted += res.Drafted
	}
	logger.Info("run complete", "labels", len(results), "drafted", drafted, "failed", failed)

	if cfg.strict && failed > 0 {
		return fmt.Errorf("%w: %d of %d", errLabelsFailed, failed, len(results))
	}
	return nil
}

func splitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
