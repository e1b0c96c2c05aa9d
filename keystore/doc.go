// Package keystore resolves the location of the issuer's secret phrase.
//
// The phrase is read exactly once, at startup, from one of the supported
// sources. Each source implements interfaces.MnemonicSource.
//
// # Source Types
//
//   - env://NAME - Environment variable
//   - file:///absolute/path - Local file, surrounding whitespace trimmed
//   - s3://[ACCESS_KEY:SECRET_KEY@]bucket/object?region=..&endpoint=.. - S3 object body
//   - vault://host:port/mount/path?key=mnemonic&scheme=https - Vault KV v2 field
//
// Vault sources authenticate with the token from VAULT_TOKEN. S3 sources use
// embedded credentials when present and the default AWS credential chain
// otherwise.
//
// # Usage Example
//
//	source, err := keystore.SourceFor("vault://vault.internal:8200/secret/gold/issuer", logger)
//	if err != nil {
//	    return err
//	}
//	phrase, err := source.Fetch(ctx)
package keystore
