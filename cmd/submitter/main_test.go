package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amberhealth/telemetry/internal/analytics"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore, unset so the defaults apply.
	for _, key := range []string{"SUBMITTER_CONFIG", "ENVIRONMENT", "INGEST_HOST", "METRICS_INPUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error: %q", err.Error())
	}
	if config.Environment != "development" {
		t.Fatalf("expected the development environment, got %q", config.Environment)
	}
	if config.IngestHost != "http://localhost:8080" {
		t.Fatalf("unexpected default ingest host: %q", config.IngestHost)
	}
	if config.InputPath != "-" {
		t.Fatalf("expected stdin input by default, got %q", config.InputPath)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SUBMITTER_CONFIG", "")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("INGEST_HOST", "https://ingest.example.com")
	t.Setenv("METRICS_INPUT", "/var/run/metrics.json")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error: %q", err.Error())
	}
	if config.Environment != "production" {
		t.Fatalf("expected the production environment, got %q", config.Environment)
	}
	if config.IngestHost != "https://ingest.example.com" {
		t.Fatalf("unexpected ingest host: %q", config.IngestHost)
	}
	if config.InputPath != "/var/run/metrics.json" {
		t.Fatalf("unexpected input path: %q", config.InputPath)
	}
}

func TestReadMetricsInfo(t *testing.T) {
	doc := `{
		"postalDistrict": "AL1",
		"payload": {
			"type": "triggered",
			"startDate": "2023-05-01T00:00:00Z",
			"endDate": "2023-05-02T00:00:00Z",
			"deviceModel": "iPhone13,2",
			"operatingSystemVersion": "16.5",
			"latestApplicationVersion": "4.0.1",
			"includesMultipleApplicationVersions": false
		},
		"recordedMetrics": {"completedOnboarding": 1}
	}`

	path := filepath.Join(t.TempDir(), "metrics.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("expected no error: %q", err.Error())
	}

	info, err := readMetricsInfo(path)
	if err != nil {
		t.Fatalf("expected no error: %q", err.Error())
	}
	payload, ok := info.Payload.(analytics.TriggeredPayload)
	if !ok {
		t.Fatalf("expected a triggered payload, got %T", info.Payload)
	}
	if payload.DeviceModel != "iPhone13,2" {
		t.Fatalf("unexpected device model: %q", payload.DeviceModel)
	}
	if info.RecordedMetrics[analytics.CompletedOnboarding] != 1 {
		t.Fatalf("expected one completed onboarding, got %d", info.RecordedMetrics[analytics.CompletedOnboarding])
	}
}

func TestReadMetricsInfoMissingFile(t *testing.T) {
	_, err := readMetricsInfo(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error to be non-nil")
	}
}
