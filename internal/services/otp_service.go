package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/Duggineniakhil/Vectra/internal/pkg/redact"
	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix         = "otp:"
	otpAttemptsKeyPrefix = "otp_attempts:"
	otpCooldownKeyPrefix = "otp_cooldown:"

	otpMin   = 100000
	otpRange = 900000
)

func otpKey(id string) string         { return otpKeyPrefix + id }
func otpAttemptsKey(id string) string { return otpAttemptsKeyPrefix + id }
func otpCooldownKey(id string) string { return otpCooldownKeyPrefix + id }

// OTPServiceImpl implements domain.OTPService on Redis. Only a salted hash of
// each code is stored; every key expires on its own.
type OTPServiceImpl struct {
	redisClient     redis.Cmdable
	hasher          domain.SecretHasher
	notificationSvc domain.NotificationService
	config          OTPConfig
}

type OTPConfig struct {
	TTL         time.Duration
	Cooldown    time.Duration
	MaxAttempts int
	// ExposeCode returns the raw code to the caller; never set in production
	ExposeCode bool
}

// NewOTPService creates a new Redis-based OTP service. notificationSvc may be
// nil, in which case codes are not delivered.
func NewOTPService(redisClient redis.Cmdable, hasher domain.SecretHasher, notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		redisClient:     redisClient,
		hasher:          hasher,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Request implements domain.OTPService
func (s *OTPServiceImpl) Request(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error) {
	const op = "otp.Request"

	id := NormalizeIdentifier(identifier)
	if id == "" {
		return nil, domain.ErrInvalidIdentifier
	}

	// claiming the cooldown first makes the check-and-set atomic
	claimed, err := s.redisClient.SetNX(ctx, otpCooldownKey(id), 1, s.config.Cooldown).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: set cooldown: %w", op, err)
	}
	if !claimed {
		return nil, domain.ErrOTPCooldown
	}

	code, err := generateCode()
	if err != nil {
		s.release(ctx, id)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hasher.Hash(code)
	if err != nil {
		s.release(ctx, id)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(id), hash, s.config.TTL)
		pipe.Del(ctx, otpAttemptsKey(id))
		return nil
	})
	if err != nil {
		s.release(ctx, id)
		return nil, fmt.Errorf("%s: store otp: %w", op, err)
	}

	if err := s.deliver(id, code); err != nil {
		s.redisClient.Del(ctx, otpKey(id), otpCooldownKey(id))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logctx.From(ctx).Info("otp issued",
		"channel", channel,
		"identifier", redact.Identifier(id),
	)

	issue := &domain.OTPIssue{
		Channel:    channel,
		Identifier: id,
		ExpiresIn:  s.config.TTL,
		ExpiresAt:  time.Now().Add(s.config.TTL),
	}
	if s.config.ExposeCode {
		issue.DevCode = code
	}
	return issue, nil
}

// release frees the cooldown after a failed issuance so the user can retry
func (s *OTPServiceImpl) release(ctx context.Context, id string) {
	s.redisClient.Del(ctx, otpCooldownKey(id))
}

// deliver routes by identifier shape; the caller's channel tag is informational
func (s *OTPServiceImpl) deliver(id, code string) error {
	if s.notificationSvc == nil {
		return nil
	}
	minutes := int(s.config.TTL.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	message := fmt.Sprintf("Your Vectra verification code is %s. It expires in %d minutes.", code, minutes)

	if ChannelFor(id) == domain.ChannelEmail {
		if err := s.notificationSvc.SendEmail(id, "Your Vectra verification code", message); err != nil {
			return fmt.Errorf("send otp email: %w", err)
		}
		return nil
	}
	if err := s.notificationSvc.SendSMS(id, message); err != nil {
		return fmt.Errorf("send otp sms: %w", err)
	}
	return nil
}

// Verify implements domain.OTPService
func (s *OTPServiceImpl) Verify(ctx context.Context, identifier, code string) error {
	const op = "otp.Verify"

	id := NormalizeIdentifier(identifier)
	if id == "" {
		return domain.ErrInvalidIdentifier
	}

	hash, err := s.redisClient.Get(ctx, otpKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrOTPExpired
	}
	if err != nil {
		return fmt.Errorf("%s: load otp: %w", op, err)
	}

	attempts, err := s.redisClient.Get(ctx, otpAttemptsKey(id)).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s: load attempts: %w", op, err)
	}
	if attempts >= s.config.MaxAttempts {
		return domain.ErrOTPMaxAttempts
	}

	if !s.hasher.Verify(hash, code) {
		n, err := s.redisClient.Incr(ctx, otpAttemptsKey(id)).Result()
		if err != nil {
			return fmt.Errorf("%s: count attempt: %w", op, err)
		}
		if n == 1 {
			if err := s.redisClient.Expire(ctx, otpAttemptsKey(id), s.config.TTL).Err(); err != nil {
				return fmt.Errorf("%s: expire attempts: %w", op, err)
			}
		}
		logctx.From(ctx).Warn("otp mismatch",
			"identifier", redact.Identifier(id),
			"attempts", n,
		)
		return domain.ErrOTPInvalid
	}

	// only the caller that actually deletes the code may log in with it
	deleted, err := s.redisClient.Del(ctx, otpKey(id)).Result()
	if err != nil {
		return fmt.Errorf("%s: consume otp: %w", op, err)
	}
	if deleted == 0 {
		return domain.ErrOTPExpired
	}
	if err := s.redisClient.Del(ctx, otpAttemptsKey(id)).Err(); err != nil {
		return fmt.Errorf("%s: clear attempts: %w", op, err)
	}
	return nil
}

// CanResend implements domain.OTPService
func (s *OTPServiceImpl) CanResend(ctx context.Context, identifier string) (bool, time.Duration, error) {
	ttl, err := s.redisClient.TTL(ctx, otpCooldownKey(NormalizeIdentifier(identifier))).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0: key missing or without expiry
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, ttl, nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}
