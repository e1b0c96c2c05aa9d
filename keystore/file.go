package keystore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// FileSource reads the secret phrase from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the file and returns its trimmed content.
// Returns ErrSecretNotFound if the file doesn't exist or is empty.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", interfaces.ErrSecretNotFound, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	phrase := strings.TrimSpace(string(data))
	if phrase == "" {
		return "", fmt.Errorf("%w: %s is empty", interfaces.ErrSecretNotFound, s.path)
	}
	return phrase, nil
}

// Name returns a unique identifier for this source.
func (s *FileSource) Name() string {
	return "file-" + s.path
}
