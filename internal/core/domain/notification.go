package domain

import (
	"errors"
	"time"
)

// NotificationType tags the event class that produced a notification.
type NotificationType string

const (
	NotificationNewListing     NotificationType = "new_listing"
	NotificationTenantInterest NotificationType = "tenant_interest"
	NotificationSystem         NotificationType = "system"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a single per-user feed entry. Notifications are only
// ever created by the fan-out path, never directly by clients, and each
// one is addressed to exactly one recipient.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// FeedTypes returns the notification types visible to a role's feed.
// Tenants see new listings, landlords see tenant interest; the filter is
// keyed on the caller's role server-side, never on request parameters.
func FeedTypes(role string) []NotificationType {
	switch role {
	case RoleTenant:
		return []NotificationType{NotificationNewListing}
	case RoleLandlord:
		return []NotificationType{NotificationTenantInterest}
	}
	return nil
}
