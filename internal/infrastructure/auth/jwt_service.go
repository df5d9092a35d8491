package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// claims is the JWT payload: {sub, role, typ?, jti, iss, iat, exp}
type claims struct {
	Role string `json:"role"`
	Type string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// JWTServiceImpl implements domain.TokenService with one HMAC secret per token class
type JWTServiceImpl struct {
	accessSecret    []byte
	refreshSecret   []byte
	issuer          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		issuer:          issuer,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// AccessTTL implements domain.TokenService
func (j *JWTServiceImpl) AccessTTL() time.Duration {
	return j.accessTokenTTL
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, error) {
	return j.sign(j.accessSecret, userID, role, "", j.accessTokenTTL)
}

// GenerateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateRefreshToken(userID uuid.UUID, role domain.Role) (string, error) {
	return j.sign(j.refreshSecret, userID, role, domain.RefreshTokenType, j.refreshTokenTTL)
}

func (j *JWTServiceImpl) sign(secret []byte, userID uuid.UUID, role domain.Role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role: string(role),
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// jti keeps two tokens minted in the same second distinct
			ID: uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	tc, err := j.validateToken(tokenString, j.accessSecret)
	if err != nil {
		return nil, err
	}
	if tc.Type == domain.RefreshTokenType {
		return nil, domain.ErrTokenMalformed
	}
	return tc, nil
}

// ValidateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateRefreshToken(tokenString string) (*domain.TokenClaims, error) {
	tc, err := j.validateToken(tokenString, j.refreshSecret)
	if err != nil {
		return nil, err
	}
	if tc.Type != domain.RefreshTokenType {
		return nil, domain.ErrTokenMalformed
	}
	return tc, nil
}

// validateToken checks signature and expiry. Every failure is reported as
// ErrTokenMalformed so callers cannot tell which check rejected the token.
func (j *JWTServiceImpl) validateToken(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenMalformed
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	tc := &domain.TokenClaims{
		UserID:  userID,
		Role:    domain.Role(c.Role),
		Type:    c.Type,
		TokenID: c.ID,
	}
	if c.IssuedAt != nil {
		tc.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		tc.ExpiresAt = c.ExpiresAt.Time
	}
	return tc, nil
}

// DecodeUnverified implements domain.TokenService. It reads the payload
// segment only: no signature, expiry or header checks.
func (j *JWTServiceImpl) DecodeUnverified(tokenString string) (*domain.TokenClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, domain.ErrTokenMalformed
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	var raw struct {
		Subject string `json:"sub"`
		Role    string `json:"role"`
		Type    string `json:"typ"`
		ID      string `json:"jti"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Join(domain.ErrTokenMalformed, err)
	}

	userID, err := uuid.Parse(raw.Subject)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:  userID,
		Role:    domain.Role(raw.Role),
		Type:    raw.Type,
		TokenID: raw.ID,
	}, nil
}
