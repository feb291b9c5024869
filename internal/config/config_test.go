package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != ProviderAPINBA {
		t.Fatalf("expected default provider %s, got %s", ProviderAPINBA, cfg.Provider)
	}
	if cfg.APINBA.BaseURL != defaultAPINBABaseURL || cfg.APINBA.Host != defaultAPINBAHost {
		t.Fatalf("unexpected api-nba defaults %+v", cfg.APINBA)
	}
	if cfg.APINBA.APIKey != "" {
		t.Fatalf("expected empty api key by default, got %s", cfg.APINBA.APIKey)
	}
	if cfg.APINBA.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %s", cfg.APINBA.Timeout)
	}
	if cfg.Report.Concurrency != 1 || cfg.Report.KeyMode != "game" {
		t.Fatalf("unexpected report defaults %+v", cfg.Report)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Redis.URL != "" || cfg.Redis.Stream != defaultRedisStream {
		t.Fatalf("unexpected redis defaults %+v", cfg.Redis)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderFixture)
	t.Setenv(envAPINBABaseURL, "http://example.com/api")
	t.Setenv(envAPINBAKey, "secret-key")
	t.Setenv(envAPINBAHost, "custom.host")
	t.Setenv(envAPINBATimeout, "3s")
	t.Setenv(envReportConcurrent, "4")
	t.Setenv(envLeaderKeyMode, "name")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envOtelEndpoint, "otel:4318")
	t.Setenv(envRedisURL, "redis://localhost:6379/0")
	t.Setenv(envRedisStream, "reports")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "5000" || cfg.Provider != ProviderFixture {
		t.Fatalf("unexpected port/provider %s %s", cfg.Port, cfg.Provider)
	}
	if cfg.APINBA.BaseURL != "http://example.com/api" || cfg.APINBA.APIKey != "secret-key" || cfg.APINBA.Host != "custom.host" {
		t.Fatalf("unexpected api-nba overrides %+v", cfg.APINBA)
	}
	if cfg.APINBA.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.APINBA.Timeout)
	}
	if cfg.Report.Concurrency != 4 || cfg.Report.KeyMode != "name" {
		t.Fatalf("unexpected report overrides %+v", cfg.Report)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.OtlpEndpoint != "otel:4318" {
		t.Fatalf("unexpected metrics overrides %+v", cfg.Metrics)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" || cfg.Redis.Stream != "reports" {
		t.Fatalf("unexpected redis overrides %+v", cfg.Redis)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log overrides %+v", cfg.Log)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envAPINBATimeout, "not-a-duration")
	t.Setenv(envReportConcurrent, "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APINBA.Timeout != defaultAPINBATimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.APINBA.Timeout)
	}
	if cfg.Report.Concurrency != defaultConcurrency {
		t.Fatalf("expected default concurrency on non-positive value, got %d", cfg.Report.Concurrency)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `
port: "7000"
provider: fixture
apinba:
  apiKey: file-key
  timeout: 5s
report:
  concurrency: 3
  leaderKeyMode: name
redis:
  url: redis://cache:6379/1
log:
  format: json
`)
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "7100" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture || cfg.APINBA.APIKey != "file-key" || cfg.APINBA.Timeout != 5*time.Second {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.APINBA.BaseURL != defaultAPINBABaseURL {
		t.Fatalf("expected defaults kept for keys missing from file, got %s", cfg.APINBA.BaseURL)
	}
	if cfg.Report.Concurrency != 3 || cfg.Report.KeyMode != "name" {
		t.Fatalf("unexpected report config %+v", cfg.Report)
	}
	if cfg.Redis.URL != "redis://cache:6379/1" || cfg.Redis.Stream != defaultRedisStream {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != defaultLogLevel {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}

	t.Setenv(envConfigFile, writeConfigFile(t, "port: [unterminated"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}
