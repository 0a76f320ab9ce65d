package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
	"github.com/kejaplug/rental-api/internal/pkg/metrics"
)

// ListingCache abstracts the public listing cache (Redis). A miss is
// reported via ok=false; cache errors are swallowed by the
// implementation so the database stays the source of truth.
type ListingCache interface {
	// Get also returns the exact key the lookup resolved to. Put must
	// receive that key unchanged: if an Invalidate lands between the
	// two, the write goes to the orphaned old key instead of
	// resurrecting a pre-mutation snapshot under the fresh one.
	Get(ctx context.Context, filter ports.ListPropertiesFilter) (properties []*domain.Property, key string, ok bool)
	Put(ctx context.Context, key string, properties []*domain.Property)
	// Invalidate drops every cached listing page. Called after any
	// property mutation.
	Invalidate(ctx context.Context)
}

// PropertyService implements listing CRUD, the status lifecycle, and the
// new-listing broadcast fan-out. All ownership checks compare the
// authenticated actor against the stored landlord reference.
type PropertyService struct {
	repo     ports.PropertyRepository
	userRepo ports.UserRepository
	fanout   ports.Fanout
	cache    ListingCache
	log      zerolog.Logger
}

func NewPropertyService(
	repo ports.PropertyRepository,
	userRepo ports.UserRepository,
	fanout ports.Fanout,
	cache ListingCache,
	log zerolog.Logger,
) *PropertyService {
	return &PropertyService{repo: repo, userRepo: userRepo, fanout: fanout, cache: cache, log: log}
}

// Create stores a new listing for the acting landlord and broadcasts a
// new_listing notification to every tenant. The broadcast is handed to
// the fan-out dispatcher and never blocks or fails the creation.
func (s *PropertyService) Create(ctx context.Context, actor ports.Actor, input ports.CreatePropertyInput) (*domain.Property, error) {
	if actor.Role != domain.RoleLandlord {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Description == "" || input.Price < 0 || input.Deposit < 0 {
		return nil, domain.ErrInvalidInput
	}

	deposit := input.Deposit
	if deposit == 0 {
		deposit = input.Price
	}
	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	property := &domain.Property{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Deposit:     deposit,
		Type:        input.Type,
		Location: domain.Location{
			City:   input.Location.City,
			Estate: input.Location.Estate,
			Street: input.Location.Street,
			Lat:    input.Location.Lat,
			Lng:    input.Location.Lng,
		},
		Amenities:  amenities,
		Images:     images,
		LandlordID: actor.ID,
		Status:     domain.StatusAvailable,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.log.Error().Err(err).Str("landlord_id", actor.ID).Msg("failed to create property")
		return nil, err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(created.Type).Inc()
	s.cache.Invalidate(ctx)
	s.broadcastNewListing(ctx, created)

	s.log.Info().Str("property_id", created.ID).Str("landlord_id", actor.ID).Msg("property created")
	return created, nil
}

// broadcastNewListing enumerates every tenant and enqueues one
// notification per recipient. A failed audience lookup drops the
// broadcast; the listing itself is already committed.
func (s *PropertyService) broadcastNewListing(ctx context.Context, p *domain.Property) {
	tenantIDs, err := s.userRepo.ListIDsByRole(ctx, domain.RoleTenant)
	if err != nil {
		s.log.Warn().Err(err).Str("property_id", p.ID).Msg("failed to enumerate tenants for fan-out")
		return
	}

	notifications := make([]*domain.Notification, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		notifications = append(notifications, &domain.Notification{
			UserID:  id,
			Title:   "New Property Listed!",
			Message: fmt.Sprintf("A new property titled %q has just been listed.", p.Title),
			Type:    domain.NotificationNewListing,
		})
	}
	s.fanout.EnqueueBatch(notifications)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// List serves the public listing query. An unspecified status resolves
// to Available so the public view never shows rented or maintenance
// properties unless explicitly asked.
func (s *PropertyService) List(ctx context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, error) {
	if filter.Status == "" {
		filter.Status = domain.StatusAvailable
	}
	if filter.City == "All" {
		filter.City = ""
	}
	if filter.Type == "All" {
		filter.Type = ""
	}

	cached, key, ok := s.cache.Get(ctx, filter)
	if ok {
		return cached, nil
	}

	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.cache.Put(ctx, key, properties)
	return properties, nil
}

// Update applies a partial update after verifying ownership. Absent
// fields keep their stored values.
func (s *PropertyService) Update(ctx context.Context, actor ports.Actor, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.guardOwner(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Deposit != nil {
		property.Deposit = *input.Deposit
	}
	if input.Type != nil {
		property.Type = *input.Type
	}
	if input.Location != nil {
		property.Location = domain.Location{
			City:   input.Location.City,
			Estate: input.Location.Estate,
			Street: input.Location.Street,
			Lat:    input.Location.Lat,
			Lng:    input.Location.Lng,
		}
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.Status != nil {
		status := domain.PropertyStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		property.Status = status
	}

	updated, err := s.repo.Update(ctx, property)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if _, err := s.guardOwner(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.log.Info().Str("property_id", id).Str("landlord_id", actor.ID).Msg("property deleted")
	return nil
}

// UpdateStatus applies a landlord-initiated status transition. Any
// value outside the fixed enum is rejected before the lookup so a bad
// payload never leaks existence information.
func (s *PropertyService) UpdateStatus(ctx context.Context, actor ports.Actor, id, status string) (*domain.Property, error) {
	next := domain.PropertyStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	property, err := s.guardOwner(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	property.Status = next
	updated, err := s.repo.Update(ctx, property)
	if err != nil {
		return nil, err
	}

	metrics.PropertyStatusChangesTotal.WithLabelValues(status).Inc()
	s.cache.Invalidate(ctx)
	return updated, nil
}

func (s *PropertyService) ListByLandlord(ctx context.Context, actor ports.Actor) ([]*domain.Property, error) {
	if actor.Role != domain.RoleLandlord {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByLandlord(ctx, actor.ID)
}

// guardOwner loads the property and verifies the actor is a landlord
// and owns it. No side effects on failure.
func (s *PropertyService) guardOwner(ctx context.Context, actor ports.Actor, id string) (*domain.Property, error) {
	if actor.Role != domain.RoleLandlord {
		return nil, domain.ErrForbidden
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !property.OwnedBy(actor.ID) {
		return nil, domain.ErrForbidden
	}
	return property, nil
}
