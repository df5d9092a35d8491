package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/google/uuid"
)

// UserServiceImpl implements domain.UserService for administrators
type UserServiceImpl struct {
	userRepo  domain.UserRepository
	tokenRepo domain.RefreshTokenRepository
	audit     auditTrail
}

// NewUserService creates a new user service. auditLog may be nil.
func NewUserService(userRepo domain.UserRepository, tokenRepo domain.RefreshTokenRepository, auditLog domain.AuditLogger) domain.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		audit:     auditTrail{logger: auditLog},
	}
}

// GetUser implements domain.UserService
func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateStatus implements domain.UserService. Leaving ACTIVE revokes every
// refresh token the user holds.
func (s *UserServiceImpl) UpdateStatus(ctx context.Context, actorID, targetID uuid.UUID, status domain.AccountStatus, reason string) (*domain.User, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	previous := user.Status
	if previous == status {
		return user, nil
	}

	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	var revoked int64
	if status != domain.StatusActive {
		revoked, err = s.tokenRepo.RevokeAllForUser(ctx, user.ID, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to revoke sessions: %w", err)
		}
	}

	s.audit.record(ctx, domain.NewAuditEvent(domain.UserStatusChangedEvent).
		WithActor(actorID).
		WithTarget(targetID).
		WithReason(reason).
		WithMetadata("from", string(previous)).
		WithMetadata("to", string(status)).
		WithMetadata("revoked_tokens", revoked))
	logctx.From(ctx).Info("user status changed",
		"actor_id", actorID,
		"target_id", targetID,
		"status", status,
		"revoked_tokens", revoked,
	)
	return user, nil
}

// UpdateRole implements domain.UserService. Active sessions are revoked so
// tokens carrying the old role stop working.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role domain.Role, reason string) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	previous := user.Role
	if previous == role {
		return user, nil
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	revoked, err := s.tokenRepo.RevokeAllForUser(ctx, user.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.audit.record(ctx, domain.NewAuditEvent(domain.UserRoleChangedEvent).
		WithActor(actorID).
		WithTarget(targetID).
		WithReason(reason).
		WithMetadata("from", string(previous)).
		WithMetadata("to", string(role)).
		WithMetadata("revoked_tokens", revoked))
	logctx.From(ctx).Info("user role changed",
		"actor_id", actorID,
		"target_id", targetID,
		"role", role,
	)
	return user, nil
}
