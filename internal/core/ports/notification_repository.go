package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for the
// per-user notification feed.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// InsertMany persists a batch in one round trip (broadcast fan-out).
	InsertMany(ctx context.Context, ns []*domain.Notification) error
	// ListByRecipient returns userID's notifications restricted to the
	// given types, newest-first. An empty types slice matches nothing.
	ListByRecipient(ctx context.Context, userID string, types []domain.NotificationType) ([]*domain.Notification, error)
	// MarkRead flips is_read on the notification only when it belongs to
	// userID; returns ErrNotificationNotFound otherwise.
	MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error)
	// MarkAllRead flips every unread notification owned by userID.
	MarkAllRead(ctx context.Context, userID string) error
}
