package pipeline

// Application error types attached to activity and workflow failures. Activity
// failures carry one of the first four types; the workflow folds an exhausted
// activity failure into the stage-level type for the stage it occurred in.
const (
	// ErrTypeNotFound - extraction was asked for an item unknown to the
	// backing lookup. Non-retryable.
	ErrTypeNotFound = "NotFound"

	// ErrTypeMalformedOutput - the backend produced content that does not
	// parse into the required summary shape. Non-retryable.
	ErrTypeMalformedOutput = "MalformedOutput"

	// ErrTypeUnsupportedLanguage - the target language is outside the
	// supported set. Non-retryable.
	ErrTypeUnsupportedLanguage = "UnsupportedLanguage"

	// ErrTypeBackend - a transient backend failure. Retried by the dispatch
	// layer up to the attempt budget.
	ErrTypeBackend = "BackendError"

	// Stage-level terminal failure types reported by the workflow.
	ErrTypeExtractionFailed    = "ExtractionFailed"
	ErrTypeSummarizationFailed = "SummarizationFailed"
	ErrTypeTranslationFailed   = "TranslationFailed"
)
