// The worker process registers the pipeline workflow and activities on the
// task queue and executes activity tasks. It never starts workflow executions.
package main

import (
	"context"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/zyan8808/video-analysis-temporal/internal/config"
	"github.com/zyan8808/video-analysis-temporal/internal/generator"
	"github.com/zyan8808/video-analysis-temporal/internal/generator/gemini"
	"github.com/zyan8808/video-analysis-temporal/internal/generator/mock"
	"github.com/zyan8808/video-analysis-temporal/internal/observability"
	"github.com/zyan8808/video-analysis-temporal/internal/observability/logging"
	"github.com/zyan8808/video-analysis-temporal/internal/pipeline"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{
		Level:      cfg.Observability.LogLevel,
		Format:     cfg.Observability.LogFormat,
		TimeFormat: time.RFC3339,
	})
	logger := logging.WithComponent("worker")

	gen, err := buildGenerator(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Generator.Provider).Msg("Failed to build generator backend")
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    logging.NewTemporalLogger(logging.Logger()),
	})
	if err != nil {
		logger.Fatal().Err(err).Str("hostPort", cfg.Temporal.HostPort).Msg("Failed to connect to Temporal")
	}
	defer c.Close()

	obs := observability.NewServer(cfg.Observability.MetricsAddr)
	obs.Start()

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})

	wf := pipeline.NewVideoProcessingWorkflow(pipeline.Options{
		ExtractTimeout:          cfg.Pipeline.ExtractTimeout,
		SummarizeTimeout:        cfg.Pipeline.SummarizeTimeout,
		TranslateTimeout:        cfg.Pipeline.TranslateTimeout,
		RetryInitialInterval:    cfg.Pipeline.RetryInitialInterval,
		RetryBackoffCoefficient: cfg.Pipeline.RetryBackoffCoefficient,
		RetryMaximumInterval:    cfg.Pipeline.RetryMaximumInterval,
		RetryMaximumAttempts:    int32(cfg.Pipeline.RetryMaximumAttempts),
	})
	w.RegisterWorkflowWithOptions(wf.Run, workflow.RegisterOptions{Name: pipeline.WorkflowName})
	w.RegisterActivity(pipeline.NewActivities(gen))

	obs.SetReady(true)
	logger.Info().
		Str("taskQueue", cfg.Temporal.TaskQueue).
		Str("backend", gen.Name()).
		Msg("Pipeline worker started")

	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Fatal().Err(err).Msg("Worker stopped with error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := obs.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Observability server shutdown failed")
	}
	logger.Info().Msg("Pipeline worker shut down")
}

// buildGenerator selects the content backend from configuration.
func buildGenerator(ctx context.Context, cfg *config.Config) (generator.Generator, error) {
	var catalog *mock.Generator
	var err error
	if cfg.Generator.CatalogPath != "" {
		catalog, err = mock.NewWithCatalog(cfg.Generator.CatalogPath)
		if err != nil {
			return nil, err
		}
	} else {
		catalog = mock.New()
	}

	switch cfg.Generator.Provider {
	case "mock":
		return catalog, nil
	case "gemini":
		// Transcript extraction stays a catalog lookup; the model backs
		// summarization and translation.
		return gemini.New(ctx, cfg.Generator.GeminiKey, cfg.Generator.GeminiModel, catalog)
	default:
		return nil, &unknownProviderError{provider: cfg.Generator.Provider}
	}
}

type unknownProviderError struct {
	provider string
}

func (e *unknownProviderError) Error() string {
	return "unknown generator provider " + e.provider + " (supported: mock, gemini)"
}
