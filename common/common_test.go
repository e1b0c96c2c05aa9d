package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{JSON: true, Service: "gold-api", Version: "v1.2.3", Output: &buf})

	log.Debug("hidden")
	log.Info("visible", "asset_id", 4242001)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "gold-api", entry["service"])
	assert.Equal(t, "v1.2.3", entry["version"])
	assert.EqualValues(t, 4242001, entry["asset_id"])
}

func TestSetupLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{Debug: true, Output: &buf})

	log.Debug("round awaited", "round", 7)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "round=7")
	assert.NotContains(t, buf.String(), "service=")
}
