package auth

import (
	"context"

	"vendorhub/internal/cache"
)

const revokedTokenKeyPrefix = "revoked:token:"

// TokenStoreInterface defines the revocation check performed during token
// validation. Revocation entries are written by the token issuer; this
// service only consults the list.
type TokenStoreInterface interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore reads revoked token IDs from Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// IsTokenRevoked checks if a token ID has been revoked.
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // Not revoked if cache error (fail safe)
	}
	return data != nil, nil
}
