package kms

import (
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockSigner mocks the interfaces.Signer interface
type MockSigner struct {
	mock.Mock
}

// Address mocks the Address method
func (m *MockSigner) Address() string {
	args := m.Called()
	return args.String(0)
}

// Sign mocks the Sign method
func (m *MockSigner) Sign(txn *interfaces.UnsignedTransaction) (*interfaces.SignedTransaction, error) {
	args := m.Called(txn)
	signed, _ := args.Get(0).(*interfaces.SignedTransaction)
	return signed, args.Error(1)
}
