package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// Actor identifies the authenticated caller of a service operation.
// ID and Role come from verified token claims, never from the body.
type Actor struct {
	ID   string
	Role string
}

// LocationInput holds a property's physical placement.
type LocationInput struct {
	City   string
	Estate string
	Street string
	Lat    *float64
	Lng    *float64
}

// CreatePropertyInput carries all data needed to create a listing.
type CreatePropertyInput struct {
	Title       string
	Description string
	Price       float64
	Deposit     float64 // 0 = defaults to Price
	Type        string
	Location    LocationInput
	Amenities   []string
	Images      []string
}

// UpdatePropertyInput is a partial update: nil pointers and nil slices
// leave the stored value untouched.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Price       *float64
	Deposit     *float64
	Type        *string
	Location    *LocationInput
	Amenities   []string
	Images      []string
	Status      *string
}

// PropertyService defines the listing use cases. Every mutating
// operation takes the Actor and enforces role and ownership before
// touching the repository.
type PropertyService interface {
	Create(ctx context.Context, actor Actor, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, error)
	Update(ctx context.Context, actor Actor, id string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, actor Actor, id string) error
	UpdateStatus(ctx context.Context, actor Actor, id, status string) (*domain.Property, error)
	ListByLandlord(ctx context.Context, actor Actor) ([]*domain.Property, error)
}
