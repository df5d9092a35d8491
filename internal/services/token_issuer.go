package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// TokenIssuerImpl implements domain.TokenIssuer. It signs a token pair and
// persists the hash of the refresh token; the raw token is never stored.
type TokenIssuerImpl struct {
	tokenSvc   domain.TokenService
	hasher     domain.SecretHasher
	tokenRepo  domain.RefreshTokenRepository
	refreshTTL time.Duration
}

// NewTokenIssuer creates a token issuer. refreshTTL sets the stored expiry,
// independently of the expiry embedded in the token.
func NewTokenIssuer(tokenSvc domain.TokenService, hasher domain.SecretHasher, tokenRepo domain.RefreshTokenRepository, refreshTTL time.Duration) domain.TokenIssuer {
	return &TokenIssuerImpl{
		tokenSvc:   tokenSvc,
		hasher:     hasher,
		tokenRepo:  tokenRepo,
		refreshTTL: refreshTTL,
	}
}

// IssueTokens implements domain.TokenIssuer
func (i *TokenIssuerImpl) IssueTokens(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.TokenPair, error) {
	accessToken, err := i.tokenSvc.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := i.tokenSvc.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	hash, err := i.hasher.Hash(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	record := &domain.RefreshTokenRecord{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(i.refreshTTL),
	}
	if err := i.tokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(i.tokenSvc.AccessTTL() / time.Second),
	}, nil
}
