package handler

import (
	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createPropertyRequest) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Deposit:     req.Deposit,
		Type:        req.Type,
		Location:    toLocationInput(req.Location),
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
}

func toUpdateInput(req updatePropertyRequest) ports.UpdatePropertyInput {
	input := ports.UpdatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Deposit:     req.Deposit,
		Type:        req.Type,
		Amenities:   req.Amenities,
		Images:      req.Images,
		Status:      req.Status,
	}
	if req.Location != nil {
		loc := toLocationInput(*req.Location)
		input.Location = &loc
	}
	return input
}

func toLocationInput(l locationRequest) ports.LocationInput {
	return ports.LocationInput{
		City:   l.City,
		Estate: l.Estate,
		Street: l.Street,
		Lat:    l.Lat,
		Lng:    l.Lng,
	}
}

// --- Domain → HTTP response ---

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Deposit:     p.Deposit,
		Type:        p.Type,
		Location: locationResponse{
			City:   p.Location.City,
			Estate: p.Location.Estate,
			Street: p.Location.Street,
			Lat:    p.Location.Lat,
			Lng:    p.Location.Lng,
		},
		Amenities:  p.Amenities,
		Images:     p.Images,
		LandlordID: p.LandlordID,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func toPropertyListResponse(properties []*domain.Property) []propertyResponse {
	out := make([]propertyResponse, len(properties))
	for i, p := range properties {
		out[i] = toPropertyResponse(p)
	}
	return out
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC(),
	}
}

func toNotificationListResponse(ns []*domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(ns))
	for i, n := range ns {
		out[i] = toNotificationResponse(n)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		Phone: u.Phone,
	}
}
