// Command mintkey generates a fresh issuer account for the API server and
// prints its address and the 25-word mnemonic to put in MNEMONIC. Fund the
// address before minting; asset creation costs a fee and raises the account's
// minimum balance.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/goldvault/transparent-gold-backend/kms"
	"github.com/urfave/cli/v2"
)

type account struct {
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic"`
}

func main() {
	app := &cli.App{
		Name:  "mintkey",
		Usage: "Generate an issuer account",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print as JSON"},
		},
		Action: func(cCtx *cli.Context) error {
			acct, err := generate()
			if err != nil {
				return err
			}
			if cCtx.Bool("json") {
				encoded, err := json.Marshal(acct)
				if err != nil {
					return err
				}
				fmt.Println(string(encoded))
				return nil
			}
			fmt.Printf("address:  %s\nmnemonic: %s\n", acct.Address, acct.Mnemonic)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// generate creates an account and checks the mnemonic round-trips through
// the signer the server uses.
func generate() (*account, error) {
	generated := crypto.GenerateAccount()
	phrase, err := mnemonic.FromPrivateKey(generated.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("could not encode mnemonic: %w", err)
	}

	signer, err := kms.NewMnemonicSigner(phrase)
	if err != nil {
		return nil, err
	}
	if signer.Address() != generated.Address.String() {
		return nil, fmt.Errorf("mnemonic resolves to %s, expected %s", signer.Address(), generated.Address)
	}
	return &account{Address: signer.Address(), Mnemonic: phrase}, nil
}
