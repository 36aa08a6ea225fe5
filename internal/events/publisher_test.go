package events

import (
	"context"
	"testing"
)

func TestNew_NilConfig(t *testing.T) {
	p := New(nil)

	if p == nil {
		t.Fatal("expected publisher, got nil")
	}
	if p.enabled {
		t.Error("nil config should produce a disabled publisher")
	}
	if p.writerCompleted != nil || p.writerFailed != nil {
		t.Error("disabled publisher should have no writers")
	}
}

func TestNew_DisabledConfig(t *testing.T) {
	p := New(&Config{
		Enabled:        false,
		Brokers:        []string{"localhost:9092"},
		TopicCompleted: "video.pipeline.completed",
		TopicFailed:    "video.pipeline.failed",
		Principal:      "svc-video-pipeline",
	})

	if p.enabled {
		t.Error("expected disabled publisher")
	}
	if p.topicCompleted != "video.pipeline.completed" {
		t.Errorf("completed topic = %q", p.topicCompleted)
	}
	if p.topicFailed != "video.pipeline.failed" {
		t.Errorf("failed topic = %q", p.topicFailed)
	}
	if p.principal != "svc-video-pipeline" {
		t.Errorf("principal = %q", p.principal)
	}
}

func TestNew_EnabledWithoutBrokers(t *testing.T) {
	p := New(&Config{Enabled: true})

	if p.enabled {
		t.Error("no brokers should force log-only mode")
	}
}

func TestNew_Enabled(t *testing.T) {
	p := New(&Config{
		Enabled:        true,
		Brokers:        []string{"localhost:9092"},
		TopicCompleted: "video.pipeline.completed",
		TopicFailed:    "video.pipeline.failed",
		Principal:      "svc-video-pipeline",
	})
	defer p.Close()

	if !p.enabled {
		t.Error("expected enabled publisher")
	}
	if p.writerCompleted == nil || p.writerFailed == nil {
		t.Fatal("enabled publisher must have both writers")
	}
	if p.writerCompleted.Topic != "video.pipeline.completed" {
		t.Errorf("completed writer topic = %q", p.writerCompleted.Topic)
	}
	if p.writerFailed.Topic != "video.pipeline.failed" {
		t.Errorf("failed writer topic = %q", p.writerFailed.Topic)
	}
}

func TestPublish_DisabledIsNoError(t *testing.T) {
	p := New(&Config{Enabled: false, Principal: "svc-video-pipeline"})
	ctx := context.Background()

	err := p.PublishCompleted(ctx, CompletedEvent{
		WorkflowID:     "video-processing-demo-001-es-abc12345",
		ItemID:         "demo-001",
		TargetLanguage: "es",
		Timestamp:      1724457600000,
	})
	if err != nil {
		t.Errorf("disabled publish should not error: %v", err)
	}

	err = p.PublishFailed(ctx, FailedEvent{
		WorkflowID:     "video-processing-demo-001-es-abc12345",
		ItemID:         "demo-001",
		TargetLanguage: "es",
		FailureType:    "ExtractionFailed",
		Error:          "no transcript source",
		Timestamp:      1724457600000,
	})
	if err != nil {
		t.Errorf("disabled publish should not error: %v", err)
	}
}

func TestClose_NilWriters(t *testing.T) {
	p := New(nil)
	if err := p.Close(); err != nil {
		t.Errorf("closing a disabled publisher should not error: %v", err)
	}
}
