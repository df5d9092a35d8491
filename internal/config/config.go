package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config/config.yml"

type AppConfig struct {
	Port    int    `yaml:"port" env:"PORT" env-default:"8080"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// JWTConfig keeps token lifetimes as "<n><unit>" strings, see ParseExpiry.
type JWTConfig struct {
	AccessSecret     string `yaml:"access_secret" env:"JWT_ACCESS_SECRET"`
	RefreshSecret    string `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET"`
	Issuer           string `yaml:"issuer" env:"JWT_ISSUER" env-default:"vectra"`
	AccessExpiresIn  string `yaml:"access_expires_in" env:"JWT_ACCESS_EXPIRES_IN" env-default:"15m"`
	RefreshExpiresIn string `yaml:"refresh_expires_in" env:"JWT_REFRESH_EXPIRES_IN" env-default:"30d"`
}

type OTPConfig struct {
	CooldownSeconds   int `yaml:"cooldown_seconds" env:"OTP_REQUEST_COOLDOWN_SECONDS" env-default:"30"`
	TTLSeconds        int `yaml:"ttl_seconds" env:"OTP_TTL_SECONDS" env-default:"300"`
	MaxVerifyAttempts int `yaml:"max_verify_attempts" env:"OTP_MAX_VERIFY_ATTEMPTS" env-default:"5"`
	HashCost          int `yaml:"hash_cost" env:"OTP_HASH_COST" env-default:"10"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid" env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `yaml:"auth_token" env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `yaml:"from_number" env:"TWILIO_FROM_NUMBER"`
}

type CasbinConfig struct {
	ModelPath      string `yaml:"model_path" env:"CASBIN_MODEL_PATH"`
	PolicySeedPath string `yaml:"policy_seed_path" env:"CASBIN_POLICY_SEED_PATH" env-default:"config/policies.yml"`
}

// Config is built once at startup and passed by value or pointer to every
// component; nothing reads the environment after Load returns.
type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"development"`
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Load reads configuration from, in order of precedence: the explicit path,
// CONFIG_PATH, config/config.yml, or the environment alone. Environment
// variables (including a local .env file) always override file values.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants the services rely on
func (c *Config) Validate() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		errs = append(errs, errors.New("both jwt access and refresh secrets are required"))
	} else if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		errs = append(errs, errors.New("jwt access and refresh secrets must differ"))
	}
	if c.OTP.TTLSeconds <= 0 {
		errs = append(errs, fmt.Errorf("otp ttl must be positive, got %d", c.OTP.TTLSeconds))
	}
	if c.OTP.CooldownSeconds <= 0 {
		errs = append(errs, fmt.Errorf("otp cooldown must be positive, got %d", c.OTP.CooldownSeconds))
	}
	if c.OTP.MaxVerifyAttempts <= 0 {
		errs = append(errs, fmt.Errorf("otp max verify attempts must be positive, got %d", c.OTP.MaxVerifyAttempts))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether raw OTP codes must stay hidden
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AccessTTL and RefreshTTL are the lifetimes embedded in signed tokens,
// which carry whole-second expiry claims.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(ExpirySeconds(c.JWT.AccessExpiresIn)) * time.Second
}

func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(ExpirySeconds(c.JWT.RefreshExpiresIn)) * time.Second
}

// RefreshRecordTTL is the lifetime stamped on stored refresh-token records.
// It is computed separately from RefreshTTL and must agree with it.
func (c *Config) RefreshRecordTTL() time.Duration {
	return time.Duration(ExpiryMillis(c.JWT.RefreshExpiresIn)) * time.Millisecond
}

func (c *Config) OTPTTL() time.Duration {
	return time.Duration(c.OTP.TTLSeconds) * time.Second
}

func (c *Config) OTPCooldown() time.Duration {
	return time.Duration(c.OTP.CooldownSeconds) * time.Second
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}
