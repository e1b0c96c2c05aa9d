package issuance

import (
	"strconv"
	"time"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

const (
	// DefaultUnitName is the unit name of every certificate.
	DefaultUnitName = "GOLDNFT"

	// DefaultPlaceholderBaseURL prefixes generated metadata URLs.
	DefaultPlaceholderBaseURL = "https://example.com/metadata/"
)

// Builder assembles asset-creation transactions. It performs no I/O.
type Builder struct {
	// PlaceholderBaseURL prefixes the millisecond timestamp used when a
	// request carries no metadata URL.
	PlaceholderBaseURL string
	UnitName           string

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewBuilder returns a Builder with default unit name and clock.
func NewBuilder(placeholderBaseURL string) *Builder {
	if placeholderBaseURL == "" {
		placeholderBaseURL = DefaultPlaceholderBaseURL
	}
	return &Builder{
		PlaceholderBaseURL: placeholderBaseURL,
		UnitName:           DefaultUnitName,
		Now:                time.Now,
	}
}

// Build returns the creation transaction for a single certificate owned and
// controlled by issuer. The name is not validated: an empty name is passed
// through to the ledger unchanged.
func (b *Builder) Build(req *interfaces.IssuanceRequest, params *interfaces.NetworkParameters, issuer string) *interfaces.UnsignedTransaction {
	assetURL := req.MetadataURL
	if assetURL == "" {
		assetURL = b.placeholderURL()
	}

	var note []byte
	if req.Description != "" {
		note = []byte(req.Description)
	}

	return &interfaces.UnsignedTransaction{
		Creator:       issuer,
		Total:         1,
		Decimals:      0,
		DefaultFrozen: false,
		UnitName:      b.UnitName,
		AssetName:     req.Name,
		AssetURL:      assetURL,
		Manager:       issuer,
		Reserve:       issuer,
		Freeze:        issuer,
		Clawback:      issuer,
		Note:          note,
		Params:        *params,
	}
}

func (b *Builder) placeholderURL() string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return b.PlaceholderBaseURL + strconv.FormatInt(now().UnixMilli(), 10)
}
