// Package main (cmd/goldctl) is a command-line client for the gold
// certificate API.
//
//	goldctl signup --email a@example.com --password hunter2
//	export GOLD_API_TOKEN=$(goldctl login --email a@example.com --password hunter2 | jq -r .token)
//	goldctl mint --name "Gold Cert #1" --desc "1g, Vault A"
//
// A mint that times out prints the transaction id so it can be checked on
// the explorer later.
package main
