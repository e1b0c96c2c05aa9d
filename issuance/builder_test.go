package issuance

import (
	"testing"
	"time"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "ISSUERADDRESS"

func testParams() *interfaces.NetworkParameters {
	return &interfaces.NetworkParameters{
		MinFee:          1000,
		FirstValidRound: 100,
		LastValidRound:  1100,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("")
	req := &interfaces.IssuanceRequest{
		Name:        "Gold Cert #1",
		Description: "1 gram, Vault A",
		MetadataURL: "ipfs://bafy/1.json",
	}

	txn := b.Build(req, testParams(), testIssuer)

	assert.Equal(t, testIssuer, txn.Creator)
	assert.Equal(t, uint64(1), txn.Total)
	assert.Equal(t, uint32(0), txn.Decimals)
	assert.False(t, txn.DefaultFrozen)
	assert.Equal(t, DefaultUnitName, txn.UnitName)
	assert.Equal(t, "Gold Cert #1", txn.AssetName)
	assert.Equal(t, "ipfs://bafy/1.json", txn.AssetURL)
	for _, addr := range []string{txn.Manager, txn.Reserve, txn.Freeze, txn.Clawback} {
		assert.Equal(t, testIssuer, addr)
	}
	assert.Equal(t, []byte("1 gram, Vault A"), txn.Note)
	assert.Equal(t, *testParams(), txn.Params)
}

func TestBuilder_PlaceholderURL(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	b := NewBuilder("https://example.com/metadata/")
	b.Now = func() time.Time { return now }

	first := b.Build(&interfaces.IssuanceRequest{Name: "a"}, testParams(), testIssuer)
	now = now.Add(time.Millisecond)
	second := b.Build(&interfaces.IssuanceRequest{Name: "a"}, testParams(), testIssuer)

	require.NotEmpty(t, first.AssetURL)
	assert.Equal(t, "https://example.com/metadata/1700000000000", first.AssetURL)
	assert.Equal(t, "https://example.com/metadata/1700000000001", second.AssetURL)
	assert.NotEqual(t, first.AssetURL, second.AssetURL)
}

func TestBuilder_PassesThroughEmptyFields(t *testing.T) {
	b := NewBuilder("")
	txn := b.Build(&interfaces.IssuanceRequest{MetadataURL: "https://x"}, testParams(), testIssuer)

	assert.Equal(t, "", txn.AssetName)
	assert.Nil(t, txn.Note)
}

func TestBuilder_DeterministicWithFixedClock(t *testing.T) {
	b := NewBuilder("")
	b.Now = func() time.Time { return time.UnixMilli(42) }
	req := &interfaces.IssuanceRequest{Name: "Gold Certificate"}

	assert.Equal(t, b.Build(req, testParams(), testIssuer), b.Build(req, testParams(), testIssuer))
}
