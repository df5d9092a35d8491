package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// Email and phone are nullable; unique indexes allow many NULLs.
type DBUser struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Role        string    `gorm:"index;size:16;not null"`
	Email       *string   `gorm:"uniqueIndex;size:255"`
	Phone       *string   `gorm:"uniqueIndex;size:32"`
	Name        *string   `gorm:"size:255"`
	Status      string    `gorm:"index;size:16;not null;default:ACTIVE"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

func (u *DBUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.Status = domain.AccountStatus(dbUser.Status)
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	res := r.db.WithContext(ctx).Model(&DBUser{ID: user.ID}).
		Select("role", "email", "phone", "name", "status", "last_login_at").
		Updates(dbUser)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	status := string(user.Status)
	if status == "" {
		status = string(domain.StatusActive)
	}
	return &DBUser{
		ID:          user.ID,
		Role:        string(user.Role),
		Email:       user.Email,
		Phone:       user.Phone,
		Name:        user.Name,
		Status:      status,
		LastLoginAt: user.LastLoginAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:          dbUser.ID,
		Role:        domain.Role(dbUser.Role),
		Email:       dbUser.Email,
		Phone:       dbUser.Phone,
		Name:        dbUser.Name,
		Status:      domain.AccountStatus(dbUser.Status),
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
		LastLoginAt: dbUser.LastLoginAt,
	}
}
