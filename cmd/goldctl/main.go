package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/api/clients"
	"github.com/goldvault/transparent-gold-backend/cmd/flags"
	"github.com/urfave/cli/v2"
)

var flagToken = &cli.StringFlag{
	Name:    "token",
	EnvVars: []string{"GOLD_API_TOKEN"},
	Usage:   "bearer token printed by goldctl login",
}
var flagEmail = &cli.StringFlag{
	Name:     "email",
	Required: true,
}
var flagPassword = &cli.StringFlag{
	Name:     "password",
	Required: true,
	EnvVars:  []string{"GOLD_API_PASSWORD"},
}

func main() {
	app := &cli.App{
		Name:  "goldctl",
		Usage: "Talk to the gold certificate API",
		Flags: []cli.Flag{
			flags.ServerAddrFlag,
			flagToken,
		},
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "register an account",
				Flags: []cli.Flag{flagEmail, flagPassword},
				Action: func(cCtx *cli.Context) error {
					if err := newClient(cCtx).Signup(cCtx.Context, cCtx.String(flagEmail.Name), cCtx.String(flagPassword.Name)); err != nil {
						return err
					}
					return printJSON(api.MessageResponse{Message: "ok"})
				},
			},
			{
				Name:  "login",
				Usage: "print a bearer token",
				Flags: []cli.Flag{flagEmail, flagPassword},
				Action: func(cCtx *cli.Context) error {
					token, err := newClient(cCtx).Login(cCtx.Context, cCtx.String(flagEmail.Name), cCtx.String(flagPassword.Name))
					if err != nil {
						return err
					}
					return printJSON(api.LoginResponse{Token: token})
				},
			},
			{
				Name:  "profile",
				Usage: "show the authenticated account",
				Action: func(cCtx *cli.Context) error {
					profile, err := newClient(cCtx).Profile(cCtx.Context)
					if err != nil {
						return err
					}
					return printJSON(profile)
				},
			},
			{
				Name:  "price",
				Usage: "show the current gold price",
				Action: func(cCtx *cli.Context) error {
					price, err := newClient(cCtx).GoldPrice(cCtx.Context)
					if err != nil {
						return err
					}
					return printJSON(api.GoldPriceResponse{Price: price})
				},
			},
			{
				Name:  "vault",
				Usage: "show vault holdings",
				Action: func(cCtx *cli.Context) error {
					vault, err := newClient(cCtx).Vault(cCtx.Context)
					if err != nil {
						return err
					}
					return printJSON(vault)
				},
			},
			{
				Name:      "balance",
				Usage:     "show the balance of an address",
				ArgsUsage: "<address>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("expected exactly one address")
					}
					balance, err := newClient(cCtx).Balance(cCtx.Context, cCtx.Args().First())
					if err != nil {
						return err
					}
					return printJSON(balance)
				},
			},
			{
				Name:  "mint",
				Usage: "mint a gold certificate and wait for confirmation",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "asset name, server default when unset"},
					&cli.StringFlag{Name: "desc", Usage: "description stored as the transaction note"},
					&cli.StringFlag{Name: "metadata-url", Usage: "asset URL, placeholder when unset"},
				},
				Action: func(cCtx *cli.Context) error {
					req := &api.MintRequest{}
					if cCtx.IsSet("name") {
						req.Name = ptr(cCtx.String("name"))
					}
					if cCtx.IsSet("desc") {
						req.Desc = ptr(cCtx.String("desc"))
					}
					if cCtx.IsSet("metadata-url") {
						req.MetadataURL = ptr(cCtx.String("metadata-url"))
					}

					cert, err := newClient(cCtx).Mint(cCtx.Context, req)
					if err != nil {
						return err
					}
					return printJSON(cert)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newClient(cCtx *cli.Context) *clients.GoldClient {
	return clients.NewGoldClient(cCtx.String(flags.ServerAddrFlag.Name), nil).WithToken(cCtx.String(flagToken.Name))
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func ptr(s string) *string { return &s }
