package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
	"github.com/kejaplug/rental-api/internal/pkg/metrics"
)

// ApplicationService turns a tenant's expression of interest into a
// single tenant_interest notification addressed to the property's
// stored owner.
type ApplicationService struct {
	propertyRepo ports.PropertyRepository
	fanout       ports.Fanout
	log          zerolog.Logger
}

func NewApplicationService(propertyRepo ports.PropertyRepository, fanout ports.Fanout, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{propertyRepo: propertyRepo, fanout: fanout, log: log}
}

func (s *ApplicationService) Submit(ctx context.Context, actor ports.Actor, input ports.SubmitApplicationInput) error {
	if actor.Role != domain.RoleTenant {
		return domain.ErrForbidden
	}

	// The recipient is resolved from the stored owner reference, never
	// from a client-supplied landlord id.
	property, err := s.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		return err
	}

	tenantName := input.TenantName
	if tenantName == "" {
		tenantName = "A tenant"
	}

	s.fanout.Enqueue(&domain.Notification{
		UserID:  property.LandlordID,
		Title:   "New Application!",
		Message: fmt.Sprintf("%s is interested in %q", tenantName, property.Title),
		Type:    domain.NotificationTenantInterest,
	})

	metrics.ApplicationsSubmittedTotal.Inc()
	s.log.Info().
		Str("property_id", property.ID).
		Str("tenant_id", actor.ID).
		Str("landlord_id", property.LandlordID).
		Msg("application submitted")

	return nil
}
