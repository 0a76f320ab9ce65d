package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for mutations with no payload.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type locationRequest struct {
	City   string   `json:"city"   validate:"required"`
	Estate string   `json:"estate" validate:"required"`
	Street string   `json:"street" validate:"required"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

type createPropertyRequest struct {
	Title       string          `json:"title"       validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       float64         `json:"price"       validate:"gte=0"`
	Deposit     float64         `json:"deposit"     validate:"gte=0"`
	Type        string          `json:"type"        validate:"required"`
	Location    locationRequest `json:"location"    validate:"required"`
	Amenities   []string        `json:"amenities"`
	Images      []string        `json:"images"`
}

// updatePropertyRequest is a partial update; absent fields keep their
// stored values.
type updatePropertyRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Deposit     *float64         `json:"deposit"`
	Type        *string          `json:"type"`
	Location    *locationRequest `json:"location"`
	Amenities   []string         `json:"amenities"`
	Images      []string         `json:"images"`
	Status      *string          `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type submitApplicationRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Message    string `json:"message"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON
// contract is not coupled to internal changes. Field names follow the
// original public API (camelCase).

type locationResponse struct {
	City   string   `json:"city"`
	Estate string   `json:"estate"`
	Street string   `json:"street"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

type propertyResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Deposit     float64          `json:"deposit"`
	Type        string           `json:"type"`
	Location    locationResponse `json:"location"`
	Amenities   []string         `json:"amenities"`
	Images      []string         `json:"images"`
	LandlordID  string           `json:"landlordId"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}
