package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

// NotificationService serves the role-filtered feed and read-state
// mutations. Clients never create notifications through this surface.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

// ListForUser returns the caller's notifications newest-first. The type
// filter is derived from the caller's role: a tenant never sees
// tenant_interest entries and a landlord never sees new_listing ones.
func (s *NotificationService) ListForUser(ctx context.Context, actor ports.Actor) ([]*domain.Notification, error) {
	types := domain.FeedTypes(actor.Role)
	if types == nil {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByRecipient(ctx, actor.ID, types)
}

// MarkRead flips is_read on the caller's own notification. Repeating
// the call is a no-op that returns the already-read document.
func (s *NotificationService) MarkRead(ctx context.Context, actor ports.Actor, id string) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, id, actor.ID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor ports.Actor) error {
	return s.repo.MarkAllRead(ctx, actor.ID)
}
