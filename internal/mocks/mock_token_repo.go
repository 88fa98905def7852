package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/movie-booking-api/internal/domain"
)

// MockTokenRepo is a mock implementation of TokenRepository
type MockTokenRepo struct {
	domain.TokenRepository
	RevokeFunc    func(ctx context.Context, tokenID string, expiry time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)
}

func (m *MockTokenRepo) Revoke(ctx context.Context, tokenID string, expiry time.Time) error {
	return m.RevokeFunc(ctx, tokenID, expiry)
}

func (m *MockTokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFunc == nil {
		return false, nil
	}
	return m.IsRevokedFunc(ctx, tokenID)
}
