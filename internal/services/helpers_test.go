package services

import (
	"testing"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/auth"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/repositories"
	"github.com/Duggineniakhil/Vectra/internal/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func strPtr(s string) *string { return &s }

// newTestRedis starts a miniredis server and a client bound to it
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// newTestDB opens a migrated in-memory SQLite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&repositories.DBUser{}, &repositories.DBRefreshToken{}, &repositories.DBAuditLog{}))
	return db
}

func newTestHasher() domain.SecretHasher {
	return auth.NewHashService(bcrypt.MinCost)
}

func newTestTokenService() domain.TokenService {
	return auth.NewJWTService(testAccessSecret, testRefreshSecret, "vectra-test", 15*time.Minute, 30*24*time.Hour)
}

func testOTPConfig() OTPConfig {
	return OTPConfig{
		TTL:         5 * time.Minute,
		Cooldown:    30 * time.Second,
		MaxAttempts: 5,
		ExposeCode:  true,
	}
}

// testStack wires the real services over miniredis and SQLite
type testStack struct {
	auth      domain.AuthService
	users     domain.UserService
	otp       domain.OTPService
	tokens    domain.TokenService
	userRepo  domain.UserRepository
	tokenRepo domain.RefreshTokenRepository
	audit     *mocks.MockAuditLogger
	mr        *miniredis.Miniredis
	db        *gorm.DB
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	mr, client := newTestRedis(t)
	db := newTestDB(t)
	hasher := newTestHasher()
	tokenSvc := newTestTokenService()
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	auditLog := mocks.NewMockAuditLogger()

	otpSvc := NewOTPService(client, hasher, nil, testOTPConfig())
	issuer := NewTokenIssuer(tokenSvc, hasher, tokenRepo, 30*24*time.Hour)

	return &testStack{
		auth:      NewAuthService(userRepo, tokenRepo, tokenSvc, hasher, otpSvc, issuer, auditLog),
		users:     NewUserService(userRepo, tokenRepo, auditLog),
		otp:       otpSvc,
		tokens:    tokenSvc,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		audit:     auditLog,
		mr:        mr,
		db:        db,
	}
}

// createValidUser creates a valid rider for mock-based tests
func createValidUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:        uuid.New(),
		Role:      domain.RoleRider,
		Email:     strPtr("rider@example.com"),
		Status:    domain.StatusActive,
		CreatedAt: time.Now().Add(-24 * time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

// createSuspendedUser creates a suspended rider for mock-based tests
func createSuspendedUser(t *testing.T) *domain.User {
	t.Helper()
	user := createValidUser(t)
	user.Status = domain.StatusSuspended
	return user
}
