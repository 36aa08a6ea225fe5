// Package models defines the data structures flowing through the video
// processing pipeline: the workflow input, the intermediate artifacts each
// activity produces, and the assembled final result.
package models

// WorkItem is the immutable input to one workflow execution. It is created by
// the submission client and never mutated by the pipeline.
type WorkItem struct {
	ItemID         string `json:"itemId"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

// Transcript is the source-language transcript produced by extraction.
// Source records which backend produced it (audit only, never behavior).
type Transcript struct {
	ItemID   string `json:"itemId"`
	Language string `json:"language"`
	Text     string `json:"text"`
	Source   string `json:"source"`
}

// Summary is the structured source-language summary of a transcript.
// Ordering of KeyTakeaways and ActionItems is significant.
type Summary struct {
	ItemID       string   `json:"itemId"`
	Language     string   `json:"language"`
	Overview     string   `json:"overview"`
	KeyTakeaways []string `json:"keyTakeaways"`
	ActionItems  []string `json:"actionItems"`
}

// TranslatedTranscript is the transcript rendered in the target language.
type TranslatedTranscript struct {
	ItemID         string `json:"itemId"`
	Language       string `json:"language"`
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
}

// SummarySection is one heading/body pair of a translated summary. The
// heading is localized into the target language, never copied from the source.
type SummarySection struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// TranslatedSummary is the summary rendered in the target language as an
// ordered sequence of sections: overview, key takeaways, action items.
type TranslatedSummary struct {
	ItemID   string           `json:"itemId"`
	Language string           `json:"language"`
	Sections []SummarySection `json:"sections"`
}

// WorkflowResult is the terminal output of one successful workflow execution.
// It is assembled only once all four activities have completed; a workflow
// never returns a partially populated result.
type WorkflowResult struct {
	Input                WorkItem             `json:"input"`
	Transcript           Transcript           `json:"transcript"`
	Summary              Summary              `json:"summary"`
	TranslatedTranscript TranslatedTranscript `json:"translatedTranscript"`
	TranslatedSummary    TranslatedSummary    `json:"translatedSummary"`
}
