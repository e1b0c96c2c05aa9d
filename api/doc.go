/*
Package api holds the HTTP surface of the gold certificate backend: request
and response types, error-to-status mapping, and the server configuration.

The handlers live in subpackages, each exposing RegisterRoutes(chi.Router):

  - authhandler: signup, login and profile
  - reserveshandler: gold price, vault figures, balances and the API banner
  - minthandler: POST /mint-nft, mounted behind auth.RequireBearer

clients contains a Go client for all of them.

# Errors

Every error body is JSON of the form {"message": "...", "txId": "..."}.
txId is only present for issuance failures observed after the transaction
was accepted by the ledger node. StatusForError maps issuance failures:

  - malformed transaction: 400
  - rejected by the node or its pool: 422
  - signer not configured, inconsistent ledger response: 500
  - ledger node unreachable: 502
  - not confirmed within the round budget: 504
*/
package api
