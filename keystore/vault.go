package keystore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/hashicorp/vault/api"
)

// VaultSource reads the secret phrase from a HashiCorp Vault KV v2 secret.
type VaultSource struct {
	client    *api.Client
	mountPath string
	dataPath  string
	field     string
	log       *slog.Logger
}

// NewVaultSource creates a new Vault KV v2 source.
// The client picks up its token from VAULT_TOKEN.
//
// Parameters:
//   - address: Vault server address (e.g. https://vault.example.com:8200)
//   - mountPath: KV v2 mount path (e.g. "secret")
//   - dataPath: Secret path within the mount (e.g. "gold/issuer")
//   - field: Field of the secret holding the phrase (e.g. "mnemonic")
//   - log: Structured logger for operational insights
func NewVaultSource(address, mountPath, dataPath, field string, log *slog.Logger) (*VaultSource, error) {
	config := api.DefaultConfig()
	config.Address = address
	config.Timeout = 30 * time.Second

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vault client: %w", err)
	}

	return &VaultSource{
		client:    client,
		mountPath: strings.Trim(mountPath, "/"),
		dataPath:  strings.Trim(dataPath, "/"),
		field:     field,
		log:       log,
	}, nil
}

// Fetch reads the secret and returns the configured field.
func (s *VaultSource) Fetch(ctx context.Context) (string, error) {
	path := fmt.Sprintf("%s/data/%s", s.mountPath, s.dataPath)

	secret, err := s.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		s.log.Error("Failed to read from Vault", slog.String("path", path), "err", err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrSourceUnavailable, err)
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("%w: %s", interfaces.ErrSecretNotFound, path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid data format in Vault response for %s", path)
	}

	phrase, ok := data[s.field].(string)
	if !ok || strings.TrimSpace(phrase) == "" {
		return "", fmt.Errorf("%w: field %q in %s", interfaces.ErrSecretNotFound, s.field, path)
	}

	return strings.TrimSpace(phrase), nil
}

// Name returns a unique identifier for this source.
func (s *VaultSource) Name() string {
	return fmt.Sprintf("vault-%s-%s", s.mountPath, s.dataPath)
}
