package services

import (
	"context"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
)

// auditTrail writes audit events best-effort: failures are logged, never returned
type auditTrail struct {
	logger domain.AuditLogger
}

func (a auditTrail) record(ctx context.Context, event *domain.AuditEvent) {
	if a.logger == nil {
		return
	}
	if err := a.logger.LogEvent(ctx, event); err != nil {
		logctx.From(ctx).Warn("audit event dropped",
			"event", event.EventType,
			"error", err,
		)
	}
}
