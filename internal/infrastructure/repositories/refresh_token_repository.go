package repositories

import (
	"context"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DBRefreshToken stores the hash of one issued refresh token. Rows are never
// deleted; revocation only sets RevokedAt.
type DBRefreshToken struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID  `gorm:"type:char(36);index;not null"`
	TokenHash string     `gorm:"size:255;not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

func (t *DBRefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository using GORM
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// Create implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, record *domain.RefreshTokenRecord) error {
	row := &DBRefreshToken{
		ID:        record.ID,
		UserID:    record.UserID,
		TokenHash: record.TokenHash,
		ExpiresAt: record.ExpiresAt,
		RevokedAt: record.RevokedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	record.ID = row.ID
	record.CreatedAt = row.CreatedAt
	return nil
}

// FindByUserID implements domain.RefreshTokenRepository. Active records come
// first, newest first, so the common case matches early in the scan.
func (r *RefreshTokenRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.RefreshTokenRecord, error) {
	var rows []DBRefreshToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("revoked_at IS NOT NULL").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]*domain.RefreshTokenRecord, 0, len(rows))
	for i := range rows {
		records = append(records, &domain.RefreshTokenRecord{
			ID:        rows[i].ID,
			UserID:    rows[i].UserID,
			TokenHash: rows[i].TokenHash,
			ExpiresAt: rows[i].ExpiresAt,
			RevokedAt: rows[i].RevokedAt,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return records, nil
}

// Revoke implements domain.RefreshTokenRepository. The conditional update
// lets at most one concurrent caller win.
func (r *RefreshTokenRepositoryImpl) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBRefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RevokeAllForUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&DBRefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at)
	return res.RowsAffected, res.Error
}
