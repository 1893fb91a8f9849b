// Package token mints and validates HS256 bearer tokens carrying the
// {userId, email} payload.
//
// Validation checks the signature and algorithm only. Expiry is not
// enforced: a token stays valid until the signing secret rotates.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

type claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and validates tokens with a shared secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// Issue signs payload. The result is deterministic for a given secret.
func (m *Manager) Issue(payload domain.TokenPayload) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: payload.UserID,
		Email:  payload.Email,
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and returns the embedded payload.
// Failures wrap domain.ErrInvalidToken.
func (m *Manager) Validate(raw string) (domain.TokenPayload, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if c.UserID == 0 {
		return domain.TokenPayload{}, fmt.Errorf("%w: missing userId", domain.ErrInvalidToken)
	}
	return domain.TokenPayload{UserID: c.UserID, Email: c.Email}, nil
}
