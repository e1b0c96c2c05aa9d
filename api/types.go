package api

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`

	// TxID is set when the transaction was handed to the node before the failure, so
	// the client can look it up on the ledger later.
	TxID string `json:"txId,omitempty"`
}

// MintRequest is the body of POST /mint-nft. Absent fields are nil.
type MintRequest struct {
	Name        *string `json:"name,omitempty"`
	Desc        *string `json:"desc,omitempty"`
	MetadataURL *string `json:"metadataUrl,omitempty"`
}

type MintResponse struct {
	AssetID     uint64 `json:"assetId"`
	TxID        string `json:"txId"`
	ExplorerURL string `json:"explorerUrl"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	Email string  `json:"email"`
	Gold  float64 `json:"gold"`
}

type GoldPriceResponse struct {
	Price float64 `json:"price"`
}

type VaultLocation struct {
	Name     string `json:"name"`
	Grams    int64  `json:"grams"`
	Location string `json:"location"`
}

type VaultResponse struct {
	Total     int64           `json:"total"`
	Locations []VaultLocation `json:"locations"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}
