package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/Duggineniakhil/Vectra/internal/pkg/redact"
	"github.com/google/uuid"
)

// AuthServiceImpl implements domain.AuthService: OTP login, refresh-token
// rotation and logout.
type AuthServiceImpl struct {
	userRepo  domain.UserRepository
	tokenRepo domain.RefreshTokenRepository
	tokenSvc  domain.TokenService
	hasher    domain.SecretHasher
	otpSvc    domain.OTPService
	issuer    domain.TokenIssuer
	audit     auditTrail
	now       func() time.Time
}

// NewAuthService creates a new auth service. auditLog may be nil.
func NewAuthService(
	userRepo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	tokenSvc domain.TokenService,
	hasher domain.SecretHasher,
	otpSvc domain.OTPService,
	issuer domain.TokenIssuer,
	auditLog domain.AuditLogger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokenSvc:  tokenSvc,
		hasher:    hasher,
		otpSvc:    otpSvc,
		issuer:    issuer,
		audit:     auditTrail{logger: auditLog},
		now:       time.Now,
	}
}

// RequestOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error) {
	issue, err := s.otpSvc.Request(ctx, channel, identifier)
	if err != nil {
		return nil, err
	}
	s.audit.record(ctx, domain.NewAuditEvent(domain.OTPRequestedEvent).
		WithMetadata("channel", string(channel)).
		WithMetadata("identifier", redact.Identifier(issue.Identifier)))
	return issue, nil
}

// VerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, identifier, code string, roleHint domain.Role) (*domain.AuthResult, error) {
	if roleHint != "" && roleHint != domain.RoleRider && roleHint != domain.RoleDriver {
		return nil, domain.ErrInvalidRole
	}

	id := NormalizeIdentifier(identifier)
	if err := s.otpSvc.Verify(ctx, id, code); err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, id, roleHint)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.StatusActive {
		return nil, domain.ErrAccountInactive
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now

	tokens, err := s.issuer.IssueTokens(ctx, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.NewAuditEvent(domain.UserLoginEvent).WithActor(user.ID).WithTarget(user.ID))
	logctx.From(ctx).Info("user logged in", "user_id", user.ID, "role", user.Role)

	return &domain.AuthResult{
		User:      user.Public(),
		TokenPair: *tokens,
	}, nil
}

// resolveUser finds the user owning identifier or registers a new one
func (s *AuthServiceImpl) resolveUser(ctx context.Context, id string, roleHint domain.Role) (*domain.User, error) {
	user, err := s.findByIdentifier(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	role := roleHint
	if role == "" {
		role = domain.RoleRider
	}
	user = &domain.User{Role: role, Status: domain.StatusActive}
	if ChannelFor(id) == domain.ChannelEmail {
		user.Email = &id
	} else {
		user.Phone = &id
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent login registered the same identifier first
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return s.findByIdentifier(ctx, id)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit.record(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent).
		WithTarget(user.ID).
		WithMetadata("role", string(user.Role)))
	return user, nil
}

func (s *AuthServiceImpl) findByIdentifier(ctx context.Context, id string) (*domain.User, error) {
	if ChannelFor(id) == domain.ChannelEmail {
		return s.userRepo.FindByEmail(ctx, id)
	}
	return s.userRepo.FindByPhone(ctx, id)
}

// Refresh implements domain.AuthService. The presented token is revoked and
// replaced, so each refresh token works exactly once.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	record, err := s.findRecord(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case record == nil:
		return nil, domain.ErrRefreshTokenNotFound
	case record.IsRevoked():
		return nil, domain.ErrTokenRevoked
	case record.IsExpired(now):
		return nil, domain.ErrTokenExpired
	}

	won, err := s.tokenRepo.Revoke(ctx, record.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if !won {
		return nil, domain.ErrTokenRevoked
	}

	tokens, err := s.issuer.IssueTokens(ctx, claims.UserID, claims.Role)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.NewAuditEvent(domain.TokenRefreshedEvent).WithActor(claims.UserID).WithTarget(claims.UserID))
	return tokens, nil
}

// Logout implements domain.AuthService. It never reports whether the token
// was valid; only store failures are returned.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokenSvc.DecodeUnverified(refreshToken)
	if err != nil {
		return nil
	}

	record, err := s.findRecord(ctx, claims.UserID, refreshToken)
	if err != nil {
		return err
	}
	if record == nil || record.IsRevoked() {
		return nil
	}

	won, err := s.tokenRepo.Revoke(ctx, record.ID, s.now())
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if won {
		s.audit.record(ctx, domain.NewAuditEvent(domain.UserLogoutEvent).WithActor(claims.UserID).WithTarget(claims.UserID))
	}
	return nil
}

// findRecord scans the user's records for the one whose hash matches raw.
// Hashes are salted, so every candidate has to be checked.
func (s *AuthServiceImpl) findRecord(ctx context.Context, userID uuid.UUID, raw string) (*domain.RefreshTokenRecord, error) {
	records, err := s.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh tokens: %w", err)
	}
	for _, record := range records {
		if s.hasher.Verify(record.TokenHash, raw) {
			return record, nil
		}
	}
	return nil, nil
}

// GetMe implements domain.AuthService
func (s *AuthServiceImpl) GetMe(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
