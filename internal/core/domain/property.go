package domain

import (
	"errors"
	"time"
)

// PropertyStatus is the lifecycle state of a listing.
type PropertyStatus string

const (
	StatusAvailable   PropertyStatus = "Available"
	StatusRented      PropertyStatus = "Rented"
	StatusMaintenance PropertyStatus = "Under Maintenance"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidStatus = errors.New("invalid property status")

// Valid reports whether s is one of the three canonical statuses.
// Transitions between valid statuses are unconditional and always
// landlord-initiated; there is no approval workflow and no automatic
// expiry.
func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	}
	return false
}

// Location is the physical placement of a property.
type Location struct {
	City   string   `json:"city" bson:"city"`
	Estate string   `json:"estate" bson:"estate"`
	Street string   `json:"street" bson:"street"`
	Lat    *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// Property is a rental listing owned by exactly one landlord.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Price       float64        `json:"price" bson:"price"`
	Deposit     float64        `json:"deposit" bson:"deposit"`
	Type        string         `json:"type" bson:"type"`
	Location    Location       `json:"location" bson:"location"`
	Amenities   []string       `json:"amenities" bson:"amenities"`
	Images      []string       `json:"images" bson:"images"`
	LandlordID  string         `json:"landlord_id" bson:"landlord_id"`
	Status      PropertyStatus `json:"status" bson:"status"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether userID is the property's owning landlord.
// Every mutating operation on a property must pass this check.
func (p *Property) OwnedBy(userID string) bool {
	return p.LandlordID == userID
}
