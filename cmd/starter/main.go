// The starter process is the submission client: it starts one workflow
// execution per (item, target language) pair, waits for every terminal
// outcome independently, publishes lifecycle events, and prints a report.
// It never executes activities.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/zyan8808/video-analysis-temporal/internal/config"
	"github.com/zyan8808/video-analysis-temporal/internal/events"
	"github.com/zyan8808/video-analysis-temporal/internal/language"
	"github.com/zyan8808/video-analysis-temporal/internal/models"
	"github.com/zyan8808/video-analysis-temporal/internal/observability/logging"
	"github.com/zyan8808/video-analysis-temporal/internal/pipeline"
)

// outcome is the terminal result of one submitted execution.
type outcome struct {
	WorkflowID string
	Item       models.WorkItem
	Result     *models.WorkflowResult
	Err        error
}

func main() {
	var (
		itemsFlag   = flag.String("items", "demo-001", "comma-separated item IDs to process")
		targetsFlag = flag.String("targets", "", "comma-separated target languages (default: all supported)")
		timeoutFlag = flag.Duration("execution-timeout", time.Minute, "per-workflow execution timeout")
	)
	flag.Parse()

	cfg := config.Load()
	logging.Init(logging.Config{
		Level:      cfg.Observability.LogLevel,
		Format:     cfg.Observability.LogFormat,
		TimeFormat: time.RFC3339,
	})
	logger := logging.WithComponent("starter")

	items := splitList(*itemsFlag)
	targets := splitList(*targetsFlag)
	if len(targets) == 0 {
		for _, l := range language.SupportedTargets() {
			targets = append(targets, l.String())
		}
	}
	if len(items) == 0 {
		logger.Fatal().Msg("No items to process")
	}

	publisher := events.New(&events.Config{
		Enabled:        cfg.Kafka.Enabled,
		Brokers:        cfg.Kafka.Brokers,
		TopicCompleted: cfg.Kafka.TopicCompleted,
		TopicFailed:    cfg.Kafka.TopicFailed,
		Principal:      cfg.Kafka.Principal,
	})
	defer publisher.Close()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    logging.NewTemporalLogger(logging.Logger()),
	})
	if err != nil {
		logger.Fatal().Err(err).Str("hostPort", cfg.Temporal.HostPort).Msg("Failed to connect to Temporal")
	}
	defer c.Close()

	ctx := context.Background()

	// One execution per (item, target) pair, all started concurrently and
	// awaited independently: one failure never blocks or cancels the rest.
	var wg sync.WaitGroup
	outcomes := make([]outcome, 0, len(items)*len(targets))
	var mu sync.Mutex

	for _, itemID := range items {
		for _, target := range targets {
			item := models.WorkItem{
				ItemID:         itemID,
				SourceLanguage: language.English.String(),
				TargetLanguage: target,
			}

			wg.Add(1)
			go func(item models.WorkItem) {
				defer wg.Done()
				o := runOne(ctx, c, cfg, item, *timeoutFlag)
				mu.Lock()
				outcomes = append(outcomes, o)
				mu.Unlock()
			}(item)
		}
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			publisher.PublishFailed(ctx, events.FailedEvent{
				WorkflowID:     o.WorkflowID,
				ItemID:         o.Item.ItemID,
				TargetLanguage: o.Item.TargetLanguage,
				FailureType:    failureType(o.Err),
				Error:          o.Err.Error(),
				Timestamp:      time.Now().UnixMilli(),
			})
			continue
		}
		publisher.PublishCompleted(ctx, events.CompletedEvent{
			WorkflowID:     o.WorkflowID,
			ItemID:         o.Item.ItemID,
			TargetLanguage: o.Item.TargetLanguage,
			Timestamp:      time.Now().UnixMilli(),
		})
	}

	printReport(outcomes)
	logger.Info().
		Int("total", len(outcomes)).
		Int("failed", failed).
		Msg("Batch finished")

	if failed > 0 {
		os.Exit(1)
	}
}

// runOne starts one workflow execution and waits for its terminal outcome.
func runOne(ctx context.Context, c client.Client, cfg *config.Config, item models.WorkItem, timeout time.Duration) outcome {
	workflowID := fmt.Sprintf("video-processing-%s-%s-%s",
		item.ItemID, item.TargetLanguage, uuid.NewString()[:8])
	log := logging.WithWorkflow(workflowID)

	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                       workflowID,
		TaskQueue:                cfg.Temporal.TaskQueue,
		WorkflowExecutionTimeout: timeout,
	}, pipeline.WorkflowName, item)
	if err != nil {
		log.Error().Err(err).Msg("Failed to start workflow")
		return outcome{WorkflowID: workflowID, Item: item, Err: err}
	}

	var result models.WorkflowResult
	if err := run.Get(ctx, &result); err != nil {
		log.Warn().Err(err).Str("failureType", failureType(err)).Msg("Workflow failed")
		return outcome{WorkflowID: workflowID, Item: item, Err: err}
	}

	log.Info().
		Str("itemId", item.ItemID).
		Str("targetLanguage", item.TargetLanguage).
		Msg("Workflow completed")
	return outcome{WorkflowID: workflowID, Item: item, Result: &result}
}

// failureType extracts the stage-level error type from a workflow failure.
func failureType(err error) string {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Type()
	}
	if temporal.IsCanceledError(err) {
		return "Cancelled"
	}
	if temporal.IsTimeoutError(err) {
		return "ActivityTimeout"
	}
	return "Unknown"
}

// printReport writes one JSON document per outcome to stdout.
func printReport(outcomes []outcome) {
	for _, o := range outcomes {
		fmt.Printf("\n--- %s (%s -> %s) ---\n",
			o.Item.ItemID, o.Item.SourceLanguage, o.Item.TargetLanguage)
		if o.Err != nil {
			fmt.Printf("FAILED [%s]: %v\n", failureType(o.Err), o.Err)
			continue
		}
		data, err := json.MarshalIndent(o.Result, "", "  ")
		if err != nil {
			fmt.Printf("FAILED to render result: %v\n", err)
			continue
		}
		fmt.Println(string(data))
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
