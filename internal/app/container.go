package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/config"
	httpx "github.com/Duggineniakhil/Vectra/internal/http"
	"github.com/Duggineniakhil/Vectra/internal/http/handlers"
	"github.com/Duggineniakhil/Vectra/internal/http/middleware"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/auth"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/database"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/notifications"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/repositories"
	"github.com/Duggineniakhil/Vectra/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	DB     *gorm.DB
	Redis  *database.RedisClient
	Casbin *auth.CasbinService

	// Repositories
	UserRepo  domain.UserRepository
	TokenRepo domain.RefreshTokenRepository
	AuditRepo *repositories.AuditLogRepositoryImpl

	// Services
	TokenSvc        domain.TokenService
	Hasher          domain.SecretHasher
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	TokenIssuer     domain.TokenIssuer
	AuthSvc         domain.AuthService
	UserSvc         domain.UserService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies. It fails fast if
// the database or Redis cannot be reached.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		_ = container.Close()
		return nil, err
	}
	if err := container.initCasbin(); err != nil {
		_ = container.Close()
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.Database.DSN)
	if err != nil {
		return err
	}
	c.DB = db

	return database.AutoMigrate(db)
}

func (c *Container) initRedis(ctx context.Context) error {
	c.Redis = database.NewRedis(c.Config.Redis.Addr, c.Config.Redis.Password, c.Config.Redis.DB)
	return c.Redis.Ping(ctx)
}

func (c *Container) initCasbin() error {
	cas, err := auth.NewCasbinService(c.DB, c.Config.Casbin.ModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas

	seeds, err := c.policySeeds()
	if err != nil {
		return err
	}
	if _, err := cas.Seed(seeds); err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}
	return nil
}

// policySeeds reads the configured seed file, falling back to the built-in
// policies when the file does not exist.
func (c *Container) policySeeds() ([]config.PolicySeed, error) {
	path := c.Config.Casbin.PolicySeedPath
	if path == "" {
		return config.DefaultPolicySeeds(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		c.Logger.Info("policy seed file not found, using built-in policies", "path", path)
		return config.DefaultPolicySeeds(), nil
	}
	return config.LoadPolicySeeds(path)
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TokenRepo = repositories.NewRefreshTokenRepository(c.DB)
	c.AuditRepo = repositories.NewAuditLogRepository(c.DB)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.Hasher = auth.NewHashService(cfg.OTP.HashCost)
	c.TokenSvc = auth.NewJWTService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.Issuer,
		cfg.AccessTTL(),
		cfg.RefreshTTL(),
	)

	// codes are only delivered out of band in production
	if cfg.IsProduction() {
		c.NotificationSvc = notifications.NewTwilioService(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.FromNumber,
		)
	}

	c.OTPSvc = services.NewOTPService(c.Redis.Client, c.Hasher, c.NotificationSvc, services.OTPConfig{
		TTL:         cfg.OTPTTL(),
		Cooldown:    cfg.OTPCooldown(),
		MaxAttempts: cfg.OTP.MaxVerifyAttempts,
		ExposeCode:  !cfg.IsProduction(),
	})
	c.TokenIssuer = services.NewTokenIssuer(c.TokenSvc, c.Hasher, c.TokenRepo, cfg.RefreshRecordTTL())
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.TokenRepo, c.TokenSvc, c.Hasher, c.OTPSvc, c.TokenIssuer, c.AuditRepo)
	c.UserSvc = services.NewUserService(c.UserRepo, c.TokenRepo, c.AuditRepo)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Router builds the HTTP handler tree over the container's services
func (c *Container) Router() *gin.Engine {
	return httpx.BuildRouter(
		c.Logger,
		httpx.Handlers{
			Auth:     handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc),
			Admin:    handlers.NewAdminHandlers(c.UserSvc),
			Policies: handlers.NewPolicyHandlers(c.PolicySvc),
		},
		middleware.NewAuthMW(c.TokenSvc),
		middleware.NewCasbinMW(c.PolicySvc),
	)
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
