package keystore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhrase = "alpha bravo charlie"

func TestEnvSource(t *testing.T) {
	t.Setenv("GOLD_TEST_MNEMONIC", "  "+testPhrase+"\n")

	phrase, err := NewEnvSource("GOLD_TEST_MNEMONIC").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPhrase, phrase)

	_, err = NewEnvSource("GOLD_TEST_UNSET_MNEMONIC").Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)
}

func TestStaticSource(t *testing.T) {
	phrase, err := NewStaticSource(testPhrase).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPhrase, phrase)

	_, err = NewStaticSource(" ").Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mnemonic")
	require.NoError(t, os.WriteFile(path, []byte(testPhrase+"\n"), 0600))

	phrase, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPhrase, phrase)

	_, err = NewFileSource(filepath.Join(dir, "missing")).Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0600))
	_, err = NewFileSource(empty).Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)
}

func TestVaultSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))

		switch r.URL.Path {
		case "/v1/secret/data/gold/issuer":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"data":     map[string]any{"mnemonic": testPhrase},
					"metadata": map[string]any{"version": 1},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[]}`))
		}
	}))
	defer srv.Close()

	source, err := NewVaultSource(srv.URL, "secret", "gold/issuer", "mnemonic", testLogger())
	require.NoError(t, err)
	source.client.SetToken("test-token")

	phrase, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPhrase, phrase)

	missing, err := NewVaultSource(srv.URL, "secret", "gold/missing", "mnemonic", testLogger())
	require.NoError(t, err)
	missing.client.SetToken("test-token")

	_, err = missing.Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)

	wrongField, err := NewVaultSource(srv.URL, "secret", "gold/issuer", "phrase", testLogger())
	require.NoError(t, err)
	wrongField.client.SetToken("test-token")

	_, err = wrongField.Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)
}

func TestS3Source(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gold-secrets/issuer/mnemonic":
			w.Write([]byte(testPhrase + "\n"))
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
		}
	}))
	defer srv.Close()

	source, err := NewS3Source("gold-secrets", "issuer/mnemonic", "us-east-1", srv.URL, "AKID", "SECRET", testLogger())
	require.NoError(t, err)

	phrase, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPhrase, phrase)

	missing, err := NewS3Source("gold-secrets", "issuer/other", "us-east-1", srv.URL, "AKID", "SECRET", testLogger())
	require.NoError(t, err)

	_, err = missing.Fetch(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrSecretNotFound)
}
