package keystore

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// SourceFor creates a mnemonic source from a location URI.
// The URI format should be [scheme]://[auth@]host[:port][/path][?params]
//
// Supported schemes:
//   - env:// - Environment variable
//   - file:// - Local file
//   - s3:// - Amazon S3 or compatible object storage
//   - vault:// - HashiCorp Vault KV v2
//
// Returns an error if the URI is invalid or the scheme is unsupported.
func SourceFor(locationURI string, log *slog.Logger) (interfaces.MnemonicSource, error) {
	loc, err := interfaces.NewSecretLocation(locationURI)
	if err != nil {
		return nil, err
	}

	log.Debug("Creating mnemonic source", slog.String("uri", loc.String()))

	switch loc.Scheme {
	case "env":
		return createEnvSource(loc)
	case "file":
		return createFileSource(loc)
	case "s3":
		return createS3Source(loc, log)
	case "vault":
		return createVaultSource(loc, log)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", interfaces.ErrInvalidLocationURI, loc.Scheme)
	}
}

// createEnvSource creates an environment variable source.
// URI format: env://MNEMONIC
func createEnvSource(loc interfaces.SecretLocation) (interfaces.MnemonicSource, error) {
	if loc.Host == "" {
		return nil, fmt.Errorf("%w: empty variable name in %s", interfaces.ErrInvalidLocationURI, loc.String())
	}
	return NewEnvSource(loc.Host), nil
}

// createFileSource creates a local file source.
// URI format: file:///absolute/path or file://./relative/path
func createFileSource(loc interfaces.SecretLocation) (interfaces.MnemonicSource, error) {
	path := loc.Path
	if loc.Host != "" {
		path = loc.Host + "/" + strings.TrimPrefix(path, "/")
	}

	if path == "" {
		return nil, fmt.Errorf("%w: empty path in %s", interfaces.ErrInvalidLocationURI, loc.String())
	}

	return NewFileSource(path), nil
}

// createS3Source creates an S3 or S3-compatible object source.
// URI format: s3://[ACCESS_KEY:SECRET_KEY@]bucket/object?region=us-west-2&endpoint=custom.s3.com
func createS3Source(loc interfaces.SecretLocation, log *slog.Logger) (interfaces.MnemonicSource, error) {
	key := strings.TrimPrefix(loc.Path, "/")
	if loc.Host == "" || key == "" {
		return nil, fmt.Errorf("%w: expected s3://bucket/object, got %s", interfaces.ErrInvalidLocationURI, loc.String())
	}

	var accessKey, secretKey string
	if loc.User != nil {
		accessKey = loc.User.Username()
		secretKey, _ = loc.User.Password()
	}

	return NewS3Source(loc.Host, key, loc.GetParamOr("region", "us-east-1"), loc.GetParam("endpoint"), accessKey, secretKey, log)
}

// createVaultSource creates a Vault KV v2 source.
// URI format: vault://host:port/mount/path/to/secret?key=mnemonic&scheme=https
func createVaultSource(loc interfaces.SecretLocation, log *slog.Logger) (interfaces.MnemonicSource, error) {
	parts := strings.SplitN(strings.Trim(loc.Path, "/"), "/", 2)
	if loc.Host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: expected vault://host/mount/path, got %s", interfaces.ErrInvalidLocationURI, loc.String())
	}

	address := fmt.Sprintf("%s://%s", loc.GetParamOr("scheme", "https"), loc.Host)
	return NewVaultSource(address, parts[0], parts[1], loc.GetParamOr("key", "mnemonic"), log)
}
