package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

type applicationFixture struct {
	repo   *stubPropertyRepo
	fanout *stubFanout
	svc    *ApplicationService
}

func newApplicationFixture(t *testing.T) (*applicationFixture, *domain.Property) {
	t.Helper()
	f := &applicationFixture{
		repo:   newStubPropertyRepo(),
		fanout: &stubFanout{},
	}
	f.svc = NewApplicationService(f.repo, f.fanout, discardLogger)

	property, err := f.repo.Create(context.Background(), &domain.Property{
		Title:      "Bedsitter in Ruaka",
		LandlordID: "ll_owner",
		Status:     domain.StatusAvailable,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return f, property
}

func TestApplicationService_Submit_NotifiesStoredOwner(t *testing.T) {
	f, property := newApplicationFixture(t)

	err := f.svc.Submit(context.Background(), tenant("t_1"), ports.SubmitApplicationInput{
		PropertyID: property.ID,
		TenantName: "Wanjiku",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.fanout.enqueued) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(f.fanout.enqueued))
	}
	n := f.fanout.enqueued[0]
	if n.UserID != "ll_owner" {
		t.Errorf("recipient must be the stored owner, got %q", n.UserID)
	}
	if n.Type != domain.NotificationTenantInterest {
		t.Errorf("expected type %q, got %q", domain.NotificationTenantInterest, n.Type)
	}
	if !strings.Contains(n.Message, "Wanjiku") || !strings.Contains(n.Message, property.Title) {
		t.Errorf("message must name the tenant and the listing, got %q", n.Message)
	}
}

func TestApplicationService_Submit_FallbackTenantName(t *testing.T) {
	f, property := newApplicationFixture(t)

	err := f.svc.Submit(context.Background(), tenant("t_1"), ports.SubmitApplicationInput{
		PropertyID: property.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(f.fanout.enqueued[0].Message, "A tenant") {
		t.Errorf("missing name must fall back to %q, got %q", "A tenant", f.fanout.enqueued[0].Message)
	}
}

func TestApplicationService_Submit_LandlordForbidden(t *testing.T) {
	f, property := newApplicationFixture(t)

	err := f.svc.Submit(context.Background(), landlord("ll_2"), ports.SubmitApplicationInput{
		PropertyID: property.ID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(f.fanout.enqueued) != 0 {
		t.Error("forbidden submission must not notify anyone")
	}
}

func TestApplicationService_Submit_UnknownProperty(t *testing.T) {
	f, _ := newApplicationFixture(t)

	err := f.svc.Submit(context.Background(), tenant("t_1"), ports.SubmitApplicationInput{
		PropertyID: "missing",
	})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
	if len(f.fanout.enqueued) != 0 {
		t.Error("failed submission must not notify anyone")
	}
}
