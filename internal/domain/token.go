package domain

import (
	"context"
	"time"
)

// AccessToken is a signed bearer token issued at login.
type AccessToken struct {
	Plaintext string
	ID        string
	UserID    int
	Role      Role
	Expiry    time.Time
}

// TokenRepository keeps track of tokens revoked before their expiry.
type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiry time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
