// Package main (cmd/httpserver) runs the gold certificate API server.
//
// The server exposes signup/login, the simulated gold price and vault
// figures, and POST /mint-nft, which mints a one-of-one certificate asset on
// Algorand with the server-held issuer account and waits for confirmation.
//
// Configuration comes from flags, most of which fall back to the environment
// variables the service has always used: PORT, JWT_SECRET, ALGOD_SERVER,
// ALGOD_TOKEN, ALGOD_PORT and MNEMONIC.
//
// The issuer mnemonic is read once at startup, either from --mnemonic or
// from a keystore location given with --mnemonic-source. If it is missing or
// invalid the server still starts, logs a warning, and answers every mint
// with 500 until it is restarted with a valid key.
//
// Example usage:
//
//	gold-api --listen-addr=:5000 \
//	    --algod-server=https://testnet-api.algonode.cloud \
//	    --mnemonic-source=vault://vault.internal:8200/secret/gold/issuer \
//	    --confirm-rounds=10 --log-json
package main
