package repositories

import (
	"context"
	"testing"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepositoryImpl_LogAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	admin := uuid.New()
	target := uuid.New()

	require.NoError(t, repo.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent).WithTarget(target)))
	require.NoError(t, repo.LogEvent(ctx, domain.NewAuditEvent(domain.UserStatusChangedEvent).
		WithActor(admin).
		WithTarget(target).
		WithReason("chargeback").
		WithMetadata("status", "SUSPENDED")))
	require.NoError(t, repo.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent).WithTarget(uuid.New())))

	events, err := repo.ListForUser(ctx, target, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	latest := events[0]
	assert.Equal(t, domain.UserStatusChangedEvent, latest.EventType)
	require.NotNil(t, latest.ActorUserID)
	assert.Equal(t, admin, *latest.ActorUserID)
	assert.Equal(t, "chargeback", latest.Reason)
	assert.Equal(t, "SUSPENDED", latest.Metadata["status"])

	assert.Equal(t, domain.UserLoginEvent, events[1].EventType)
	assert.Nil(t, events[1].ActorUserID)

	limited, err := repo.ListForUser(ctx, target, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
