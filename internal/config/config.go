// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full configuration for worker and starter processes.
type Config struct {
	Service       ServiceConfig
	Temporal      TemporalConfig
	Pipeline      PipelineConfig
	Generator     GeneratorConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig identifies this service instance.
type ServiceConfig struct {
	Principal string
}

// TemporalConfig locates the Temporal cluster and the pipeline's task queue.
type TemporalConfig struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

// PipelineConfig carries per-activity timeouts and the shared retry policy.
// The numbers are configuration, not structure: any bounded budget works.
type PipelineConfig struct {
	ExtractTimeout   time.Duration
	SummarizeTimeout time.Duration
	TranslateTimeout time.Duration

	RetryInitialInterval    time.Duration
	RetryBackoffCoefficient float64
	RetryMaximumInterval    time.Duration
	RetryMaximumAttempts    int
}

// GeneratorConfig selects and parameterizes the content backend.
type GeneratorConfig struct {
	Provider    string // mock, gemini
	CatalogPath string // optional YAML transcript catalog overlay
	GeminiKey   string
	GeminiModel string
}

// KafkaConfig configures the lifecycle event publisher.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	TopicCompleted string
	TopicFailed    string
	Principal      string
}

// ObservabilityConfig configures logging and the metrics endpoint.
type ObservabilityConfig struct {
	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// Load reads configuration from the environment, falling back to defaults for
// unset or unparseable values.
func Load() *Config {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-video-pipeline")

	return &Config{
		Service: ServiceConfig{
			Principal: principal,
		},
		Temporal: TemporalConfig{
			HostPort:  envOrDefault("TEMPORAL_HOST_PORT", "localhost:7233"),
			Namespace: envOrDefault("TEMPORAL_NAMESPACE", "default"),
			TaskQueue: envOrDefault("TEMPORAL_TASK_QUEUE", "video-processing-task-queue"),
		},
		Pipeline: PipelineConfig{
			ExtractTimeout:          envOrDefaultDuration("PIPELINE_EXTRACT_TIMEOUT", 30*time.Second),
			SummarizeTimeout:        envOrDefaultDuration("PIPELINE_SUMMARIZE_TIMEOUT", 25*time.Second),
			TranslateTimeout:        envOrDefaultDuration("PIPELINE_TRANSLATE_TIMEOUT", 20*time.Second),
			RetryInitialInterval:    envOrDefaultDuration("PIPELINE_RETRY_INITIAL_INTERVAL", time.Second),
			RetryBackoffCoefficient: envOrDefaultFloat("PIPELINE_RETRY_BACKOFF_COEFFICIENT", 2.0),
			RetryMaximumInterval:    envOrDefaultDuration("PIPELINE_RETRY_MAXIMUM_INTERVAL", 30*time.Second),
			RetryMaximumAttempts:    envOrDefaultInt("PIPELINE_RETRY_MAXIMUM_ATTEMPTS", 3),
		},
		Generator: GeneratorConfig{
			Provider:    envOrDefault("GENERATOR_PROVIDER", "mock"),
			CatalogPath: envOrDefault("GENERATOR_CATALOG_PATH", ""),
			GeminiKey:   envOrDefault("GEMINI_API_KEY", ""),
			GeminiModel: envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Kafka: KafkaConfig{
			Enabled:        envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:        envOrDefaultList("KAFKA_BROKERS", nil),
			TopicCompleted: envOrDefault("KAFKA_TOPIC_COMPLETED", "video.pipeline.completed"),
			TopicFailed:    envOrDefault("KAFKA_TOPIC_FAILED", "video.pipeline.failed"),
			Principal:      envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			LogFormat:   envOrDefault("LOG_FORMAT", "json"),
			MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
