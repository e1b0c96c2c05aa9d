package keystore

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// EnvSource reads the secret phrase from an environment variable.
type EnvSource struct {
	variable string
}

// NewEnvSource creates a source reading the named environment variable.
func NewEnvSource(variable string) *EnvSource {
	return &EnvSource{variable: variable}
}

// Fetch returns the variable's value. An unset or blank variable is ErrSecretNotFound.
func (s *EnvSource) Fetch(ctx context.Context) (string, error) {
	value := strings.TrimSpace(os.Getenv(s.variable))
	if value == "" {
		return "", fmt.Errorf("%w: %s is not set", interfaces.ErrSecretNotFound, s.variable)
	}
	return value, nil
}

// Name returns a unique identifier for this source.
func (s *EnvSource) Name() string {
	return "env-" + s.variable
}

// StaticSource returns a fixed phrase. It backs the --mnemonic flag.
type StaticSource struct {
	phrase string
}

// NewStaticSource creates a source for a phrase given directly in configuration.
func NewStaticSource(phrase string) *StaticSource {
	return &StaticSource{phrase: phrase}
}

// Fetch returns the configured phrase.
func (s *StaticSource) Fetch(ctx context.Context) (string, error) {
	if strings.TrimSpace(s.phrase) == "" {
		return "", interfaces.ErrSecretNotFound
	}
	return s.phrase, nil
}

// Name returns a unique identifier for this source.
func (s *StaticSource) Name() string {
	return "config"
}
