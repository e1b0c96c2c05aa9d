// Package reserves simulates the gold backing the certificates: a drifting
// spot price, the vault inventory, and on-ledger balances for display.
package reserves

import (
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// InitialPrice is the starting spot price per gram.
	InitialPrice = decimal.NewFromFloat(65.0)

	// FloorPrice is the lowest price the drift can reach.
	FloorPrice = decimal.NewFromInt(40)

	maxDrift = decimal.NewFromFloat(0.4)
	half     = decimal.NewFromFloat(0.5)
)

const maxBalance = 1000

type Location struct {
	Name     string
	Grams    int64
	Location string
}

type Vault struct {
	Total     int64
	Locations []Location
}

// DefaultVault is the vault inventory a new Store starts with.
func DefaultVault() Vault {
	return Vault{
		Total: 100000,
		Locations: []Location{
			{Name: "Vault A", Grams: 50000, Location: "Dubai"},
			{Name: "Vault B", Grams: 30000, Location: "Pakistan"},
			{Name: "Vault C", Grams: 20000, Location: "Singapore"},
		},
	}
}

// Store owns the simulated reserve state for the lifetime of the process.
// It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	price decimal.Decimal
	vault Vault
	rng   *rand.Rand
}

// NewStore creates a Store with the default vault and initial price. A nil
// src seeds from the runtime's random source.
func NewStore(src rand.Source) *Store {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Store{
		price: InitialPrice,
		vault: DefaultVault(),
		rng:   rand.New(src),
	}
}

// GoldPrice moves the price by a uniform step in [-0.2, 0.2), never below
// FloorPrice, and returns it rounded to cents.
func (s *Store) GoldPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	change := decimal.NewFromFloat(s.rng.Float64()).Sub(half).Mul(maxDrift)
	s.price = decimal.Max(FloorPrice, s.price.Add(change))
	return s.price.Round(2)
}

// Vault returns a copy of the vault inventory.
func (s *Store) Vault() Vault {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.vault
	v.Locations = append([]Location(nil), s.vault.Locations...)
	return v
}

// Balance returns a simulated balance in [0, 1000) for address.
func (s *Store) Balance(address string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int64N(maxBalance)
}
