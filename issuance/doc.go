/*
Package issuance mints gold certificates: one-of-one assets created on the
ledger by the server-held issuer account.

An issuance runs three steps in order:

  - Builder turns an IssuanceRequest and freshly fetched network parameters
    into an asset-creation transaction. Total is 1, decimals 0, and all four
    control addresses are the issuer. A missing metadata URL is replaced by a
    placeholder derived from the current time in milliseconds, which is unique
    per instant but not across requests landing in the same millisecond.
  - The Signer signs the transaction and the signed bytes are submitted once.
  - Poller waits for confirmation. The ledger does not push confirmations, so
    the poller queries the pending status once per round and blocks on the next
    round in between, for at most MaxRounds rounds.

The Issuer never resubmits and never retries. Failures after the node accepted
the transaction are returned as *interfaces.ConfirmationError carrying the
transaction id, since the asset may still be created later. If the caller's
context is cancelled mid-wait, the wait is abandoned and the submission stands.

Issued asset ids are not persisted. A client that loses the response can look
the asset up on the ledger by transaction id.
*/
package issuance
