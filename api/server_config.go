package api

import (
	"log/slog"
	"time"
)

// HTTPServerConfig configures the public API server and its metrics listener.
type HTTPServerConfig struct {
	ListenAddr string

	// MetricsAddr is where /metrics is served. Empty disables the listener,
	// metrics are still collected.
	MetricsAddr string

	EnablePprof bool

	// AllowedOrigins feeds the CORS middleware. Empty allows any origin.
	AllowedOrigins []string

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64

	Log *slog.Logger

	// DrainDuration is how long /drain keeps the server serving while
	// reporting not ready, so load balancers can stop routing to it.
	DrainDuration            time.Duration
	GracefulShutdownDuration time.Duration

	ReadTimeout time.Duration

	// WriteTimeout must exceed the confirmation wait of /mint-nft, which
	// spans up to --confirm-rounds ledger rounds.
	WriteTimeout time.Duration
}
