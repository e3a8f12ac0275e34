package usecases

import (
	"context"
	"log/slog"

	"staybook-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/schema_plane/usecases/api_mock.go -package=usecases

// Authorizer is the host-supplied decision whether the caller may modify a
// category's schema. The engine consumes the decision; it never computes one.
type Authorizer interface {
	CanModifySchema(ctx context.Context, categoryID domain.ID) bool
}

// AllowAllAuthorizer is the default for hosts that do their own gating
// before reaching the engine.
type AllowAllAuthorizer struct{}

func (AllowAllAuthorizer) CanModifySchema(context.Context, domain.ID) bool {
	return true
}

// AuditEntry describes one successful schema mutation for the host's audit
// trail.
type AuditEntry struct {
	EntityType string
	EntityID   domain.ID
	Action     string
	Before     any
	After      any
}

// AuditSink accepts audit entries. It is invoked by the host after a
// successful mutation, not by the engine itself.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry)
}

type NoopAuditSink struct{}

func (NoopAuditSink) Record(context.Context, AuditEntry) {}

// SlogAuditSink writes audit entries to the default structured logger, for
// hosts without a dedicated audit store.
type SlogAuditSink struct{}

func (SlogAuditSink) Record(ctx context.Context, entry AuditEntry) {
	slog.InfoContext(ctx, "schema mutation",
		slog.String("entity_type", entry.EntityType),
		slog.String("entity_id", entry.EntityID.String()),
		slog.String("action", entry.Action),
	)
}
