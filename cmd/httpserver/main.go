package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goldvault/transparent-gold-backend/api/authhandler"
	"github.com/goldvault/transparent-gold-backend/api/minthandler"
	"github.com/goldvault/transparent-gold-backend/api/reserveshandler"
	"github.com/goldvault/transparent-gold-backend/auth"
	"github.com/goldvault/transparent-gold-backend/cmd/flags"
	"github.com/goldvault/transparent-gold-backend/common"
	"github.com/goldvault/transparent-gold-backend/httpserver"
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/goldvault/transparent-gold-backend/issuance"
	"github.com/goldvault/transparent-gold-backend/keystore"
	"github.com/goldvault/transparent-gold-backend/kms"
	"github.com/goldvault/transparent-gold-backend/ledger"
	"github.com/goldvault/transparent-gold-backend/metrics"
	"github.com/goldvault/transparent-gold-backend/reserves"
	"github.com/urfave/cli/v2"
)

var flagAlgodServer = &cli.StringFlag{
	Name:    "algod-server",
	Value:   ledger.DefaultAlgodServer,
	EnvVars: []string{"ALGOD_SERVER"},
	Usage:   "algod node URL",
}
var flagAlgodToken = &cli.StringFlag{
	Name:    "algod-token",
	EnvVars: []string{"ALGOD_TOKEN"},
	Usage:   "algod API token, empty for public nodes",
}
var flagAlgodPort = &cli.StringFlag{
	Name:    "algod-port",
	EnvVars: []string{"ALGOD_PORT"},
	Usage:   "algod port, appended to --algod-server when set",
}
var flagMnemonic = &cli.StringFlag{
	Name:    "mnemonic",
	EnvVars: []string{"MNEMONIC"},
	Usage:   "25-word mnemonic of the issuer account",
}
var flagMnemonicSource = &cli.StringFlag{
	Name:  "mnemonic-source",
	Usage: "load the issuer mnemonic from env://VAR, file:///path, s3://bucket/key or vault://host/mount/path instead of --mnemonic",
}
var flagJWTSecret = &cli.StringFlag{
	Name:    "jwt-secret",
	Value:   "devsecret",
	EnvVars: []string{"JWT_SECRET"},
	Usage:   "HS256 secret for bearer tokens",
}
var flagTokenTTL = &cli.DurationFlag{
	Name:  "token-ttl",
	Value: auth.DefaultTokenTTL,
	Usage: "bearer token lifetime",
}
var flagConfirmRounds = &cli.IntFlag{
	Name:  "confirm-rounds",
	Value: issuance.DefaultMaxRounds,
	Usage: "ledger rounds to wait for a mint to confirm",
}
var flagExplorerURL = &cli.StringFlag{
	Name:  "explorer-url",
	Value: issuance.DefaultExplorerBaseURL,
	Usage: "asset explorer base URL used in mint responses",
}
var flagMetadataBaseURL = &cli.StringFlag{
	Name:  "metadata-base-url",
	Value: issuance.DefaultPlaceholderBaseURL,
	Usage: "prefix of placeholder metadata URLs for mints without metadataUrl",
}

func main() {
	app := &cli.App{
		Name:  "gold-api",
		Usage: "Serve the gold certificate API",
		Flags: append([]cli.Flag{
			flagAlgodServer,
			flagAlgodToken,
			flagAlgodPort,
			flagMnemonic,
			flagMnemonicSource,
			flagJWTSecret,
			flagTokenTTL,
			flagConfirmRounds,
			flagExplorerURL,
			flagMetadataBaseURL,
		}, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			cfg := flags.ConfigureServer(cCtx, logger)
			cfg.ListenAddr = flags.ListenAddress(cfg.ListenAddr)

			if cCtx.String(flagJWTSecret.Name) == flagJWTSecret.Value {
				logger.Warn("Using the default JWT secret, set JWT_SECRET outside development")
			}

			nodeAddress := ledger.NodeAddress(cCtx.String(flagAlgodServer.Name), cCtx.String(flagAlgodPort.Name))
			logger.Info("Connecting to algod", "address", nodeAddress)
			ledgerClient, err := ledger.NewAlgodClient(nodeAddress, cCtx.String(flagAlgodToken.Name), logger)
			if err != nil {
				logger.Error("Failed to create algod client", "err", err)
				return err
			}

			source, err := mnemonicSource(cCtx, logger)
			if err != nil {
				logger.Error("Invalid mnemonic source", "err", err)
				return err
			}

			loadCtx, cancel := context.WithTimeout(cCtx.Context, 30*time.Second)
			var signer interfaces.Signer
			if s := kms.LoadSigner(loadCtx, source, logger); s != nil {
				signer = s
			}
			cancel()

			metricsSrv, err := metrics.New(common.PackageName, cfg.MetricsAddr)
			if err != nil {
				logger.Error("Failed to create metrics server", "err", err)
				return err
			}

			issuer := issuance.NewIssuer(ledgerClient, signer, issuance.Config{
				MaxRounds:          cCtx.Int(flagConfirmRounds.Name),
				ExplorerBaseURL:    cCtx.String(flagExplorerURL.Name),
				PlaceholderBaseURL: cCtx.String(flagMetadataBaseURL.Name),
			}, metricsSrv.Issuance, logger)

			tokens := auth.NewTokenIssuer(cCtx.String(flagJWTSecret.Name), cCtx.Duration(flagTokenTTL.Name))
			server, err := httpserver.New(cfg, metricsSrv, httpserver.Routes{
				Public: []httpserver.RouteRegistrar{
					reserveshandler.NewHandler(reserves.NewStore(nil)),
					authhandler.NewHandler(auth.NewUserStore(0), tokens, cfg.MaxBodyBytes, logger),
				},
				Protected:    []httpserver.RouteRegistrar{minthandler.NewHandler(issuer, cfg.MaxBodyBytes, logger)},
				Authenticate: auth.RequireBearer(tokens, logger),
			})
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// mnemonicSource prefers --mnemonic-source over --mnemonic. Neither set
// yields a nil source and minting stays disabled.
func mnemonicSource(cCtx *cli.Context, logger *slog.Logger) (interfaces.MnemonicSource, error) {
	if uri := cCtx.String(flagMnemonicSource.Name); uri != "" {
		return keystore.SourceFor(uri, logger)
	}
	if phrase := cCtx.String(flagMnemonic.Name); phrase != "" {
		return keystore.NewStaticSource(phrase), nil
	}
	return nil, nil
}
