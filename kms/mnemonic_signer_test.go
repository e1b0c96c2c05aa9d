package kms

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T) (crypto.Account, string) {
	account := crypto.GenerateAccount()
	phrase, err := mnemonic.FromPrivateKey(account.PrivateKey)
	require.NoError(t, err)
	return account, phrase
}

func testTransaction(issuer string) *interfaces.UnsignedTransaction {
	return &interfaces.UnsignedTransaction{
		Creator:   issuer,
		Total:     1,
		Decimals:  0,
		UnitName:  "GOLDNFT",
		AssetName: "Gold Certificate",
		AssetURL:  "https://example.com/metadata/1700000000000",
		Manager:   issuer,
		Reserve:   issuer,
		Freeze:    issuer,
		Clawback:  issuer,
		Params: interfaces.NetworkParameters{
			Fee:             0,
			MinFee:          1000,
			FirstValidRound: 100,
			LastValidRound:  1100,
			GenesisID:       "testnet-v1.0",
			GenesisHash:     make([]byte, 32),
		},
	}
}

type staticSource struct {
	phrase string
	err    error
}

func (s staticSource) Fetch(context.Context) (string, error) { return s.phrase, s.err }
func (s staticSource) Name() string                          { return "static" }

func TestNewMnemonicSigner(t *testing.T) {
	account, phrase := newTestAccount(t)

	signer, err := NewMnemonicSigner(phrase)
	require.NoError(t, err)
	assert.Equal(t, account.Address.String(), signer.Address())

	// Surrounding and repeated whitespace is tolerated
	signer, err = NewMnemonicSigner("  " + strings.ReplaceAll(phrase, " ", "   ") + "\n")
	require.NoError(t, err)
	assert.Equal(t, account.Address.String(), signer.Address())
}

func TestNewMnemonicSigner_Invalid(t *testing.T) {
	_, err := NewMnemonicSigner("")
	assert.ErrorIs(t, err, ErrEmptyMnemonic)

	_, err = NewMnemonicSigner("not a valid phrase")
	assert.Error(t, err)
}

func TestMnemonicSigner_Sign(t *testing.T) {
	account, phrase := newTestAccount(t)
	signer, err := NewMnemonicSigner(phrase)
	require.NoError(t, err)

	signed, err := signer.Sign(testTransaction(signer.Address()))
	require.NoError(t, err)
	assert.NotEmpty(t, signed.TxID)
	assert.NotEmpty(t, signed.Blob)

	var stx types.SignedTxn
	require.NoError(t, msgpack.Decode(signed.Blob, &stx))
	assert.Equal(t, types.AssetConfigTx, stx.Txn.Type)
	assert.Equal(t, account.Address, stx.Txn.Sender)
	assert.Equal(t, uint64(1), stx.Txn.AssetParams.Total)
	assert.Equal(t, "GOLDNFT", stx.Txn.AssetParams.UnitName)
	assert.Equal(t, "Gold Certificate", stx.Txn.AssetParams.AssetName)
	assert.Equal(t, account.Address, stx.Txn.AssetParams.Manager)
	assert.Equal(t, account.Address, stx.Txn.AssetParams.Clawback)
	assert.Equal(t, signed.TxID, crypto.GetTxID(stx.Txn))
}

func TestMnemonicSigner_SignMalformed(t *testing.T) {
	_, phrase := newTestAccount(t)
	signer, err := NewMnemonicSigner(phrase)
	require.NoError(t, err)

	txn := testTransaction(signer.Address())
	txn.AssetName = strings.Repeat("x", 64)

	_, err = signer.Sign(txn)
	assert.ErrorIs(t, err, interfaces.ErrMalformedTransaction)
}

func TestMnemonicSigner_Unavailable(t *testing.T) {
	var signer *MnemonicSigner
	_, err := signer.Sign(testTransaction("ignored"))
	assert.ErrorIs(t, err, interfaces.ErrSignerUnavailable)
	assert.Empty(t, signer.Address())
}

func TestLoadSigner(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	account, phrase := newTestAccount(t)

	signer := LoadSigner(context.Background(), staticSource{phrase: phrase}, logger)
	require.NotNil(t, signer)
	assert.Equal(t, account.Address.String(), signer.Address())

	assert.Nil(t, LoadSigner(context.Background(), nil, logger))
	assert.Nil(t, LoadSigner(context.Background(), staticSource{err: errors.New("boom")}, logger))
	assert.Nil(t, LoadSigner(context.Background(), staticSource{phrase: "abandon abandon"}, logger))
}
