package flags

import (
	"log/slog"
	"time"

	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/common"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   cCtx.Bool(LogDebugFlag.Name),
		JSON:    cCtx.Bool(LogJsonFlag.Name),
		Service: cCtx.String(LogServiceFlag.Name),
		Version: common.Version,
	})

	if cCtx.Bool(LogUidFlag.Name) {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger) *api.HTTPServerConfig {
	return &api.HTTPServerConfig{
		ListenAddr:               cCtx.String(ListenAddrFlag.Name),
		MetricsAddr:              cCtx.String(MetricsAddrFlag.Name),
		EnablePprof:              cCtx.Bool(PprofFlag.Name),
		AllowedOrigins:           cCtx.StringSlice(CorsOriginsFlag.Name),
		MaxBodyBytes:             api.DefaultMaxBodyBytes,
		Log:                      logger,
		DrainDuration:            time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             cCtx.Duration(WriteTimeoutFlag.Name),
	}
}

var ServerAddrFlag = &cli.StringFlag{
	Name:    "server-addr",
	Value:   "http://127.0.0.1:5000",
	EnvVars: []string{"GOLD_API_URL"},
	Usage:   "gold certificate API base URL",
}

var ListenAddrFlag = &cli.StringFlag{
	Name:    "listen-addr",
	Value:   ":5000",
	EnvVars: []string{"PORT"},
	Usage:   "address to listen on for API; a bare port such as 5000 is accepted",
}

var CorsOriginsFlag = &cli.StringSliceFlag{
	Name:  "cors-origin",
	Usage: "allowed CORS origin, repeatable; any origin when unset",
}

var WriteTimeoutFlag = &cli.DurationFlag{
	Name:  "write-timeout",
	Value: 2 * time.Minute,
	Usage: "HTTP write timeout; must cover the mint confirmation wait",
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}
var LogServiceFlag = &cli.StringFlag{
	Name:  "log-service",
	Value: "gold-api",
	Usage: "add 'service' tag to logs",
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Value: "127.0.0.1:8090",
	Usage: "address to listen on for Prometheus metrics",
}

var LogFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
	LogServiceFlag,
}

var CommonFlags = append([]cli.Flag{
	ListenAddrFlag,
	CorsOriginsFlag,
	WriteTimeoutFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}, LogFlags...)
