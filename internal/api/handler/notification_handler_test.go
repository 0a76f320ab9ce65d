package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

type stubNotificationService struct {
	listFn        func(ctx context.Context, actor ports.Actor) ([]*domain.Notification, error)
	markReadFn    func(ctx context.Context, actor ports.Actor, id string) (*domain.Notification, error)
	markAllReadFn func(ctx context.Context, actor ports.Actor) error
}

func (s *stubNotificationService) ListForUser(ctx context.Context, actor ports.Actor) ([]*domain.Notification, error) {
	return s.listFn(ctx, actor)
}

func (s *stubNotificationService) MarkRead(ctx context.Context, actor ports.Actor, id string) (*domain.Notification, error) {
	return s.markReadFn(ctx, actor, id)
}

func (s *stubNotificationService) MarkAllRead(ctx context.Context, actor ports.Actor) error {
	return s.markAllReadFn(ctx, actor)
}

func TestNotificationHandler_List_CamelCasePayload(t *testing.T) {
	e := newTestEcho()
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	stub := &stubNotificationService{
		listFn: func(ctx context.Context, actor ports.Actor) ([]*domain.Notification, error) {
			if actor.ID != "t_1" || actor.Role != domain.RoleTenant {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return []*domain.Notification{
				{
					ID:        "notif_1",
					UserID:    "t_1",
					Title:     "New Property Listed!",
					Message:   "msg",
					Type:      domain.NotificationNewListing,
					IsRead:    false,
					CreatedAt: created,
				},
			}, nil
		},
	}
	handler := NewNotificationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "t_1", domain.RoleTenant)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(resp))
	}
	n := resp[0]
	if n["userId"] != "t_1" {
		t.Errorf("expected camelCase userId, got %+v", n)
	}
	if isRead, ok := n["isRead"].(bool); !ok || isRead {
		t.Errorf("expected isRead=false, got %v", n["isRead"])
	}
	if _, ok := n["createdAt"]; !ok {
		t.Errorf("expected createdAt, got %+v", n)
	}
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubNotificationService{
		markReadFn: func(ctx context.Context, actor ports.Actor, id string) (*domain.Notification, error) {
			return nil, domain.ErrNotificationNotFound
		},
	}
	handler := NewNotificationHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/xyz/read", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "t_1", domain.RoleTenant)
	c.SetParamNames("id")
	c.SetParamValues("xyz")

	_ = handler.MarkRead(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubNotificationService{
		markAllReadFn: func(ctx context.Context, actor ports.Actor) error {
			called = true
			if actor.ID != "ll_1" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return nil
		},
	}
	handler := NewNotificationHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/mark-all-read", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "ll_1", domain.RoleLandlord)

	if err := handler.MarkAllRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("service must be called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "All notifications marked as read") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
