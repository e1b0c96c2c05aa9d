package interfaces

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// SecretLocation represents the URI of a secret phrase.
type SecretLocation struct {
	Raw    string     // Original URI
	Scheme string     // Protocol
	Host   string     // Hostname, bucket, or variable name
	Path   string     // Resource path
	Query  url.Values // Query parameters
	User   *url.Userinfo
}

// NewSecretLocation creates a new secret location from a URI string with validation.
func NewSecretLocation(uri string) (SecretLocation, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return SecretLocation{}, fmt.Errorf("%w: %v", ErrInvalidLocationURI, err)
	}

	switch parsed.Scheme {
	case "env", "file", "s3", "vault":
	default:
		return SecretLocation{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocationURI, parsed.Scheme)
	}

	return SecretLocation{
		Raw:    uri,
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
		Path:   parsed.Path,
		Query:  parsed.Query(),
		User:   parsed.User,
	}, nil
}

// String returns the URI with any embedded credentials redacted.
func (loc SecretLocation) String() string {
	parsed, err := url.Parse(loc.Raw)
	if err != nil {
		return loc.Scheme + "://"
	}
	return parsed.Redacted()
}

// GetParam returns a query parameter value.
func (loc SecretLocation) GetParam(name string) string {
	return loc.Query.Get(name)
}

// GetParamOr returns a query parameter value, or def when the parameter is absent.
func (loc SecretLocation) GetParamOr(name, def string) string {
	if v := loc.Query.Get(name); v != "" {
		return v
	}
	return def
}

var (
	// ErrSecretNotFound is returned when the location holds no secret.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSourceUnavailable is returned when a secret source is not accessible.
	ErrSourceUnavailable = errors.New("secret source unavailable")

	// ErrInvalidLocationURI is returned when a secret location URI is malformed or unsupported.
	// URIs must follow the format: [scheme]://[auth@]host[:port][/path][?params]
	ErrInvalidLocationURI = errors.New("invalid secret location URI")
)

// MnemonicSource provides the issuer's secret phrase.
type MnemonicSource interface {
	// Fetch returns the secret phrase.
	Fetch(ctx context.Context) (string, error)

	// Name returns identifier for logging.
	Name() string
}
