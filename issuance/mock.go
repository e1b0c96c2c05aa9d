package issuance

import (
	"context"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockIssuer mocks the interfaces.Issuer interface
type MockIssuer struct {
	mock.Mock
}

// Issue mocks the Issue method
func (m *MockIssuer) Issue(ctx context.Context, req *interfaces.IssuanceRequest) (*interfaces.IssuanceResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*interfaces.IssuanceResult)
	return result, args.Error(1)
}
