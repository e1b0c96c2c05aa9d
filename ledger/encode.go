package ledger

import (
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// EncodeAssetCreate converts an unsigned asset-creation transaction into the SDK
// transaction type. The SDK validates addresses and field lengths; its errors
// are returned wrapped in interfaces.ErrMalformedTransaction.
func EncodeAssetCreate(txn *interfaces.UnsignedTransaction) (types.Transaction, error) {
	tx, err := transaction.MakeAssetCreateTxn(
		txn.Creator,
		txn.Note,
		toSuggestedParams(txn.Params),
		txn.Total,
		txn.Decimals,
		txn.DefaultFrozen,
		txn.Manager,
		txn.Reserve,
		txn.Freeze,
		txn.Clawback,
		txn.UnitName,
		txn.AssetName,
		txn.AssetURL,
		"",
	)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedTransaction, err)
	}
	return tx, nil
}
