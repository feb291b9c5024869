package apinba

import "time"

const (
	providerName = "apinba"

	defaultBaseURL     = "https://api-nba-v1.p.rapidapi.com"
	defaultHost        = "api-nba-v1.p.rapidapi.com"
	defaultHTTPTimeout = 10 * time.Second

	// Non-200 bodies are relayed to callers; cap what we read.
	maxErrorBodyBytes = 1 << 20

	headerAPIKey = "X-RapidAPI-Key"
	headerHost   = "X-RapidAPI-Host"
)
