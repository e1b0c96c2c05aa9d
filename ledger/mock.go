package ledger

import (
	"context"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockLedgerClient mocks the interfaces.LedgerClient interface
type MockLedgerClient struct {
	mock.Mock
}

// SuggestedParams mocks the SuggestedParams method
func (m *MockLedgerClient) SuggestedParams(ctx context.Context) (*interfaces.NetworkParameters, error) {
	args := m.Called(ctx)
	params, _ := args.Get(0).(*interfaces.NetworkParameters)
	return params, args.Error(1)
}

// SubmitRaw mocks the SubmitRaw method
func (m *MockLedgerClient) SubmitRaw(ctx context.Context, signed []byte) (string, error) {
	args := m.Called(ctx, signed)
	return args.String(0), args.Error(1)
}

// PendingStatus mocks the PendingStatus method
func (m *MockLedgerClient) PendingStatus(ctx context.Context, txID string) (*interfaces.PendingTransactionStatus, error) {
	args := m.Called(ctx, txID)
	status, _ := args.Get(0).(*interfaces.PendingTransactionStatus)
	return status, args.Error(1)
}

// CurrentRound mocks the CurrentRound method
func (m *MockLedgerClient) CurrentRound(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

// AwaitRound mocks the AwaitRound method
func (m *MockLedgerClient) AwaitRound(ctx context.Context, round uint64) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}
