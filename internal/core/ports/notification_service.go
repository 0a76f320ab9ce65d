package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// Fanout delivers notifications to their recipients off the request
// path. Delivery is best-effort: enqueueing never fails the caller, and
// a failed insert is logged and counted, not retried.
type Fanout interface {
	Enqueue(n *domain.Notification)
	EnqueueBatch(ns []*domain.Notification)
}

// NotificationService defines the feed use cases.
type NotificationService interface {
	// ListForUser returns the caller's feed filtered by role: tenants
	// get new_listing entries, landlords get tenant_interest entries.
	ListForUser(ctx context.Context, actor Actor) ([]*domain.Notification, error)
	// MarkRead is idempotent and scoped to the caller.
	MarkRead(ctx context.Context, actor Actor, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, actor Actor) error
}
