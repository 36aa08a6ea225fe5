package pipeline

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/zyan8808/video-analysis-temporal/internal/models"
)

// WorkflowName is the registered name of the pipeline workflow. Clients start
// executions by this name; workers register under it.
const WorkflowName = "VideoProcessingWorkflow"

// QueryStage is the query type exposing the workflow's current stage.
const QueryStage = "stage"

// Pipeline stages, exposed through the stage query.
const (
	StagePending     = "PENDING"
	StageExtracting  = "EXTRACTING"
	StageSummarizing = "SUMMARIZING"
	StageTranslating = "TRANSLATING"
	StageCompleted   = "COMPLETED"
	StageFailed      = "FAILED"
)

// Options carries the per-activity timeout and retry configuration for one
// workflow definition. Values are fixed at worker registration; the decision
// logic itself never reads configuration at runtime.
type Options struct {
	ExtractTimeout   time.Duration
	SummarizeTimeout time.Duration
	TranslateTimeout time.Duration

	RetryInitialInterval    time.Duration
	RetryBackoffCoefficient float64
	RetryMaximumInterval    time.Duration
	RetryMaximumAttempts    int32
}

// DefaultOptions returns the pipeline's stock timeouts and retry budget.
func DefaultOptions() Options {
	return Options{
		ExtractTimeout:          30 * time.Second,
		SummarizeTimeout:        25 * time.Second,
		TranslateTimeout:        20 * time.Second,
		RetryInitialInterval:    time.Second,
		RetryBackoffCoefficient: 2.0,
		RetryMaximumInterval:    30 * time.Second,
		RetryMaximumAttempts:    3,
	}
}

// VideoProcessingWorkflow orchestrates one work item through extraction,
// summarization, and the parallel translation pair.
//
// The decision logic is a pure function of the activity results observed so
// far: no clock reads, no randomness, no I/O. Retrying failed attempts is the
// dispatch layer's job; each stage here issues exactly one logical call and
// receives either a value or a terminal failure.
type VideoProcessingWorkflow struct {
	opts Options
}

// NewVideoProcessingWorkflow builds a workflow definition with the given
// timeout/retry options.
func NewVideoProcessingWorkflow(opts Options) *VideoProcessingWorkflow {
	return &VideoProcessingWorkflow{opts: opts}
}

// translationOutcome tags the result of the translation join so the
// completed/failed decision is a single switch rather than nested conditionals.
type translationOutcome int

const (
	translationsSucceeded translationOutcome = iota
	transcriptBranchFailed
	summaryBranchFailed
	bothBranchesFailed
)

// Run executes the pipeline state machine for one work item:
//
//	PENDING → EXTRACTING → SUMMARIZING → TRANSLATING (parallel) → COMPLETED
//
// with stage-typed terminal failures reachable from any non-terminal stage.
func (w *VideoProcessingWorkflow) Run(ctx workflow.Context, item models.WorkItem) (*models.WorkflowResult, error) {
	logger := workflow.GetLogger(ctx)

	stage := StagePending
	if err := workflow.SetQueryHandler(ctx, QueryStage, func() (string, error) {
		return stage, nil
	}); err != nil {
		return nil, fmt.Errorf("register stage query handler: %w", err)
	}

	retry := &temporal.RetryPolicy{
		InitialInterval:    w.opts.RetryInitialInterval,
		BackoffCoefficient: w.opts.RetryBackoffCoefficient,
		MaximumInterval:    w.opts.RetryMaximumInterval,
		MaximumAttempts:    w.opts.RetryMaximumAttempts,
	}

	extractCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.opts.ExtractTimeout,
		RetryPolicy:         retry,
	})
	summarizeCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.opts.SummarizeTimeout,
		RetryPolicy:         retry,
	})
	translateCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.opts.TranslateTimeout,
		RetryPolicy:         retry,
	})

	// Activity nil-pointer variable for method references.
	var a *Activities

	logger.Info("pipeline started", "itemID", item.ItemID, "targetLanguage", item.TargetLanguage)

	stage = StageExtracting
	var transcript models.Transcript
	err := workflow.ExecuteActivity(extractCtx, a.ExtractTranscript, item).Get(ctx, &transcript)
	if err != nil {
		return nil, w.fail(ctx, &stage, ErrTypeExtractionFailed,
			fmt.Sprintf("extraction failed for item %q", item.ItemID), err)
	}

	stage = StageSummarizing
	var summary models.Summary
	err = workflow.ExecuteActivity(summarizeCtx, a.SummarizeTranscript, transcript).Get(ctx, &summary)
	if err != nil {
		return nil, w.fail(ctx, &stage, ErrTypeSummarizationFailed,
			fmt.Sprintf("summarization failed for item %q", item.ItemID), err)
	}

	// Fan out the two translations; both futures are outstanding before
	// either is awaited, and the stage is not left until both settle.
	stage = StageTranslating
	transcriptFut := workflow.ExecuteActivity(translateCtx, a.TranslateTranscript, TranslateTranscriptInput{
		Transcript:     transcript,
		TargetLanguage: item.TargetLanguage,
	})
	summaryFut := workflow.ExecuteActivity(translateCtx, a.TranslateSummary, TranslateSummaryInput{
		Summary:        summary,
		TargetLanguage: item.TargetLanguage,
	})

	var translatedTranscript models.TranslatedTranscript
	var translatedSummary models.TranslatedSummary
	transcriptErr := transcriptFut.Get(ctx, &translatedTranscript)
	summaryErr := summaryFut.Get(ctx, &translatedSummary)

	switch joinTranslations(transcriptErr, summaryErr) {
	case translationsSucceeded:
		// fall through to assembly
	case transcriptBranchFailed:
		return nil, w.fail(ctx, &stage, ErrTypeTranslationFailed,
			fmt.Sprintf("transcript translation failed for item %q", item.ItemID), transcriptErr)
	case summaryBranchFailed:
		return nil, w.fail(ctx, &stage, ErrTypeTranslationFailed,
			fmt.Sprintf("summary translation failed for item %q", item.ItemID), summaryErr)
	case bothBranchesFailed:
		return nil, w.fail(ctx, &stage, ErrTypeTranslationFailed,
			fmt.Sprintf("both translations failed for item %q", item.ItemID), transcriptErr)
	}

	stage = StageCompleted
	logger.Info("pipeline completed", "itemID", item.ItemID, "targetLanguage", item.TargetLanguage)

	return &models.WorkflowResult{
		Input:                item,
		Transcript:           transcript,
		Summary:              summary,
		TranslatedTranscript: translatedTranscript,
		TranslatedSummary:    translatedSummary,
	}, nil
}

// joinTranslations folds the pair of branch errors into a tagged outcome.
func joinTranslations(transcriptErr, summaryErr error) translationOutcome {
	switch {
	case transcriptErr == nil && summaryErr == nil:
		return translationsSucceeded
	case transcriptErr != nil && summaryErr != nil:
		return bothBranchesFailed
	case transcriptErr != nil:
		return transcriptBranchFailed
	default:
		return summaryBranchFailed
	}
}

// fail marks the stage terminal and wraps an exhausted activity failure into
// the stage-level error type. Cancellation is passed through untouched so the
// execution ends canceled, not failed.
func (w *VideoProcessingWorkflow) fail(ctx workflow.Context, stage *string, errType, msg string, cause error) error {
	if temporal.IsCanceledError(cause) || ctx.Err() != nil {
		workflow.GetLogger(ctx).Info("pipeline canceled", "stage", *stage)
		return cause
	}
	*stage = StageFailed
	workflow.GetLogger(ctx).Error("pipeline failed", "type", errType, "error", cause)
	return temporal.NewApplicationError(msg, errType, cause)
}
