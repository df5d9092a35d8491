package repositories

import (
	"context"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DBAuditLog is one row of the append-only audit trail
type DBAuditLog struct {
	ID           uint                   `gorm:"primaryKey"`
	ActorUserID  *uuid.UUID             `gorm:"type:char(36);index"`
	TargetUserID *uuid.UUID             `gorm:"type:char(36);index"`
	ActionType   string                 `gorm:"index;size:64;not null"`
	Reason       string                 `gorm:"size:512"`
	Metadata     map[string]interface{} `gorm:"type:text;serializer:json"`
	CreatedAt    time.Time              `gorm:"index"`
}

func (DBAuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogRepositoryImpl implements domain.AuditLogger on top of audit_logs
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepositoryImpl {
	return &AuditLogRepositoryImpl{db: db}
}

var _ domain.AuditLogger = (*AuditLogRepositoryImpl)(nil)

// LogEvent implements domain.AuditLogger
func (r *AuditLogRepositoryImpl) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	row := &DBAuditLog{
		ActorUserID:  event.ActorUserID,
		TargetUserID: event.TargetUserID,
		ActionType:   string(event.EventType),
		Reason:       event.Reason,
		Metadata:     event.Metadata,
		CreatedAt:    event.Timestamp,
	}
	return r.db.WithContext(ctx).Create(row).Error
}

// ListForUser returns the newest events targeting userID
func (r *AuditLogRepositoryImpl) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditEvent, error) {
	var rows []DBAuditLog
	err := r.db.WithContext(ctx).
		Where("target_user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]*domain.AuditEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, &domain.AuditEvent{
			EventType:    domain.AuditEventType(row.ActionType),
			ActorUserID:  row.ActorUserID,
			TargetUserID: row.TargetUserID,
			Reason:       row.Reason,
			Timestamp:    row.CreatedAt,
			Metadata:     row.Metadata,
		})
	}
	return events, nil
}
