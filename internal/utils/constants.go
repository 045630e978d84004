package utils

import "time"

const (
	// CacheConnectTimeout bounds the initial Redis ping.
	CacheConnectTimeout = 5 * time.Second

	// ShutdownTimeout bounds graceful HTTP server shutdown.
	ShutdownTimeout = 10 * time.Second
)
