package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the relay.
type Config struct {
	Port     string        `yaml:"port"`
	Provider string        `yaml:"provider"`
	APINBA   APINBAConfig  `yaml:"apinba"`
	Report   ReportConfig  `yaml:"report"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Redis    RedisConfig   `yaml:"redis"`
	Log      LogConfig     `yaml:"log"`
}

// APINBAConfig controls how we talk to the API-NBA service.
type APINBAConfig struct {
	BaseURL string   `yaml:"baseURL"`
	APIKey  string   `yaml:"apiKey"`
	Host    string   `yaml:"host"`
	Timeout Duration `yaml:"timeout"`
}

// ReportConfig controls how daily reports are assembled.
type ReportConfig struct {
	Concurrency int    `yaml:"concurrency"`
	KeyMode     string `yaml:"leaderKeyMode"`
}

// RedisConfig enables publishing summaries to a Redis stream when URL is set.
type RedisConfig struct {
	URL    string `yaml:"url"`
	Stream string `yaml:"stream"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:     defaultPort,
		Provider: defaultProvider,
		APINBA: APINBAConfig{
			BaseURL: defaultAPINBABaseURL,
			Host:    defaultAPINBAHost,
			Timeout: defaultAPINBATimeout,
		},
		Report: ReportConfig{
			Concurrency: defaultConcurrency,
			KeyMode:     defaultLeaderKeyMode,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		Redis: RedisConfig{Stream: defaultRedisStream},
		Log:   LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE if any, then environment variables. Later sources win.
func Load() (Config, error) {
	cfg := Defaults()
	if path := os.Getenv(envConfigFile); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)

	cfg.APINBA.BaseURL = envOrDefault(envAPINBABaseURL, cfg.APINBA.BaseURL)
	cfg.APINBA.APIKey = envOrDefault(envAPINBAKey, cfg.APINBA.APIKey)
	cfg.APINBA.Host = envOrDefault(envAPINBAHost, cfg.APINBA.Host)
	cfg.APINBA.Timeout = durationEnvOrDefault(envAPINBATimeout, cfg.APINBA.Timeout)

	cfg.Report.Concurrency = intEnvOrDefault(envReportConcurrent, cfg.Report.Concurrency)
	cfg.Report.KeyMode = envOrDefault(envLeaderKeyMode, cfg.Report.KeyMode)

	applyMetricsEnv(&cfg.Metrics)

	cfg.Redis.URL = envOrDefault(envRedisURL, cfg.Redis.URL)
	cfg.Redis.Stream = envOrDefault(envRedisStream, cfg.Redis.Stream)

	cfg.Log.Level = envOrDefault(envLogLevel, cfg.Log.Level)
	cfg.Log.Format = envOrDefault(envLogFormat, cfg.Log.Format)
}
