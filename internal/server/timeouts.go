package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A report makes one upstream call per game; allow a full slate of
	// sequential fetches at the client timeout to finish.
	writeTimeout = 3 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
