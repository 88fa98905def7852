package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by an access token.
type Claims struct {
	UserID int         `json:"user_id"`
	Name   string      `json:"name,omitempty"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i *Issuer) Issue(user *domain.User) (*domain.AccessToken, error) {
	now := time.Now().UTC()
	expiry := now.Add(i.ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID: user.ID,
		Name:   user.Username,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, err
	}

	return &domain.AccessToken{
		Plaintext: signed,
		ID:        tokenID,
		UserID:    user.ID,
		Role:      user.Role,
		Expiry:    expiry,
	}, nil
}

func (i *Issuer) Parse(raw string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID < 1 || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
