package auth

import (
	"context"
	"errors"
	"time"
)

// ErrTokenRevoked is returned when a structurally valid token has been
// revoked.
var ErrTokenRevoked = errors.New("token revoked")

// refreshWindow is how close to expiry a token may get before validation
// hands back a replacement.
const refreshWindow = time.Hour

// Result carries the outcome of a successful validation. RefreshedToken is
// non-empty when the presented token was near expiry and a replacement was
// minted; handlers echo it back on the response so clients can rotate.
type Result struct {
	Claims         *Claims
	RefreshedToken string
}

// TokenValidator validates opaque bearer tokens. A nil Result or non-nil
// error both mean the token is invalid; callers never distinguish the two
// outwardly.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Result, error)
}

// Validator checks signature, expiry, and revocation, refreshing tokens
// that are about to expire.
type Validator struct {
	jwt   *JWTService
	store TokenStoreInterface
}

// Ensure Validator implements TokenValidator
var _ TokenValidator = (*Validator)(nil)

// NewValidator creates a token validator.
func NewValidator(jwtService *JWTService, store TokenStoreInterface) *Validator {
	return &Validator{jwt: jwtService, store: store}
}

// Validate parses and verifies the token, rejects revoked IDs, and mints a
// replacement when expiry is inside the refresh window.
func (v *Validator) Validate(ctx context.Context, token string) (*Result, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	if claims.ID != "" {
		revoked, err := v.store.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	res := &Result{Claims: claims}
	if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < refreshWindow {
		if fresh, err := v.jwt.GenerateToken(claims.Email); err == nil {
			res.RefreshedToken = fresh
		}
	}
	return res, nil
}
