package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/pkg/config"
)

type nopFanout struct{}

func (nopFanout) Enqueue(*domain.Notification)        {}
func (nopFanout) EnqueueBatch([]*domain.Notification) {}

var (
	routerOnce sync.Once
	testRouter *echo.Echo
	routerErr  error
)

// sharedRouter wires one real router against unconnected clients. The
// mongo driver and go-redis both defer dialing, so routes that perform
// no I/O (probes, auth gating) can be exercised without live stores.
// A single instance is shared because the prometheus middleware
// registers its collectors globally.
func sharedRouter(t *testing.T) *echo.Echo {
	t.Helper()

	routerOnce.Do(func() {
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
		if err != nil {
			routerErr = err
			return
		}
		rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

		cfg := &config.Config{
			Port:      "8080",
			Env:       "test",
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		}
		testRouter = NewRouter(cfg, client.Database("kejaplug_test"), rdb, nopFanout{}, zerolog.Nop())
	})
	if routerErr != nil {
		t.Fatalf("router setup: %v", routerErr)
	}
	return testRouter
}

func TestRouter_LivenessUnderAPIPrefix(t *testing.T) {
	e := sharedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/health: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "OK") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_RootLivenessKept(t *testing.T) {
	e := sharedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: expected 200, got %d", rec.Code)
	}
}

func TestRouter_PropertyMutationRequiresToken(t *testing.T) {
	e := sharedRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}
