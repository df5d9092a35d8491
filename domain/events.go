package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// OTP events
	OTPRequestedEvent AuditEventType = "OTP_REQUESTED"

	// Session events
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	TokenRefreshedEvent   AuditEventType = "TOKEN_REFRESHED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"

	// Administrative events
	UserStatusChangedEvent AuditEventType = "USER_STATUS_CHANGED"
	UserRoleChangedEvent   AuditEventType = "USER_ROLE_CHANGED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType    AuditEventType         `json:"event_type"`
	ActorUserID  *uuid.UUID             `json:"actor_user_id,omitempty"`
	TargetUserID *uuid.UUID             `json:"target_user_id,omitempty"`
	Reason       string                 `json:"reason,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// AuditLogger persists audit events
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
	}
}

// WithActor sets the user performing the action
func (e *AuditEvent) WithActor(id uuid.UUID) *AuditEvent {
	e.ActorUserID = &id
	return e
}

// WithTarget sets the user the action applies to
func (e *AuditEvent) WithTarget(id uuid.UUID) *AuditEvent {
	e.TargetUserID = &id
	return e
}

// WithReason sets a free-form reason
func (e *AuditEvent) WithReason(reason string) *AuditEvent {
	e.Reason = reason
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
