package config

import "time"

const (
	envConfigFile       = "CONFIG_FILE"
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envAPINBABaseURL    = "APINBA_BASE_URL"
	envAPINBAKey        = "APINBA_API_KEY"
	envAPINBAHost       = "APINBA_HOST"
	envAPINBATimeout    = "APINBA_TIMEOUT"
	envReportConcurrent = "REPORT_CONCURRENCY"
	envLeaderKeyMode    = "LEADER_KEY_MODE"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envRedisURL         = "REDIS_URL"
	envRedisStream      = "REDIS_STREAM"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	ProviderAPINBA  = "apinba"
	ProviderFixture = "fixture"

	defaultPort          = "8080"
	defaultProvider      = ProviderAPINBA
	defaultAPINBABaseURL = "https://api-nba-v1.p.rapidapi.com"
	defaultAPINBAHost    = "api-nba-v1.p.rapidapi.com"
	defaultAPINBATimeout = 10 * Duration(time.Second)
	// Sequential per-game fetches keep a single query inside the free-tier rate limit.
	defaultConcurrency   = 1
	defaultLeaderKeyMode = "game"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nba-stat-finder"
	defaultRedisStream   = "nba.daily_summaries"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)
