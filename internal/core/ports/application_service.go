package ports

import "context"

// SubmitApplicationInput carries a tenant's expression of interest.
// The landlord to notify is resolved from the stored property owner,
// never from the request.
type SubmitApplicationInput struct {
	PropertyID string
	Message    string
	TenantName string // fallback "A tenant" when empty
}

// ApplicationService handles tenant interest submissions.
type ApplicationService interface {
	Submit(ctx context.Context, actor Actor, input SubmitApplicationInput) error
}
