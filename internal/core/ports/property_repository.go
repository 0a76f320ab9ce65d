package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// ListPropertiesFilter carries the public listing query parameters.
// Zero values mean "no filter" for city/type/price; an empty Status is
// resolved to Available by the service before the repository is called.
type ListPropertiesFilter struct {
	City     string  // exact match; "" or "All" = any
	MaxPrice float64 // inclusive upper bound; 0 = unbounded
	Type     string  // exact match; "" or "All" = any
	Status   domain.PropertyStatus
}

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// Update replaces the mutable fields of the stored document.
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	// List returns matching properties newest-first by creation time.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, error)
	// ListByLandlord returns every property owned by landlordID,
	// newest-first, regardless of status.
	ListByLandlord(ctx context.Context, landlordID string) ([]*domain.Property, error)
}
