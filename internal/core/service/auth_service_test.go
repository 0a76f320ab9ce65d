package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	byID      map[string]*domain.User
	nextID    int
	createErr error // if set, Create returns this error
	listErr   error // if set, ListIDsByRole returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, phone string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name = name
	u.Phone = phone
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListIDsByRole(_ context.Context, role string) ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var ids []string
	for id, u := range r.byID {
		if u.Role == role {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testSecret = "test-secret"

func registerInput(email, role string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:    email,
		Password: "hunter22",
		Name:     "Wanjiku",
		Role:     role,
		Phone:    "+254700000000",
	}
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, user, err := svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.ID == "" {
		t.Error("expected user to have an id")
	}
	if user.Role != domain.RoleTenant {
		t.Errorf("expected role %q, got %q", domain.RoleTenant, user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, user, err := svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[user.ID]
	if stored.PasswordHash == "hunter22" {
		t.Fatal("password must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestAuthService_Register_TokenCarriesClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, user, err := svc.Register(context.Background(), registerInput("w@example.com", domain.RoleLandlord))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID {
		t.Errorf("user_id claim: want %q, got %v", user.ID, claims["user_id"])
	}
	if claims["email"] != "w@example.com" {
		t.Errorf("email claim: want %q, got %v", "w@example.com", claims["email"])
	}
	if claims["role"] != domain.RoleLandlord {
		t.Errorf("role claim: want %q, got %v", domain.RoleLandlord, claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must carry an expiry")
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, user, err := svc.Register(context.Background(), registerInput("  Wanjiku@Example.COM ", domain.RoleTenant))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "wanjiku@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", user.Email)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same address with different casing must still collide.
	_, _, err := svc.Register(context.Background(), registerInput("W@Example.com", domain.RoleLandlord))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(repo.byID))
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, err := svc.Register(context.Background(), registerInput("w@example.com", "admin"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("invalid registration must not store anything")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	cases := []ports.RegisterInput{
		{Password: "x", Name: "n", Role: domain.RoleTenant},                           // no email
		{Email: "a@b.com", Name: "n", Role: domain.RoleTenant},                        // no password
		{Email: "a@b.com", Password: "x", Role: domain.RoleTenant},                    // no name
		{Email: "a@b.com", Password: "x", Name: "n"},                                  // no role
	}
	for i, in := range cases {
		if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, _, _ = svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))

	token, user, err := svc.Login(context.Background(), "w@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.Email != "w@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, _, _ = svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))

	if _, _, err := svc.Login(context.Background(), "W@EXAMPLE.COM", "hunter22"); err != nil {
		t.Errorf("login with different casing must succeed, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, _, _ = svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))

	_, _, err := svc.Login(context.Background(), "w@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	// An unknown account must be indistinguishable from a bad password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile tests
// ---------------------------------------------------------------------------

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)
	_, user, _ := svc.Register(context.Background(), registerInput("w@example.com", domain.RoleTenant))

	updated, err := svc.UpdateProfile(context.Background(), user.ID, "  New Name ", " +254711111111 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected trimmed name, got %q", updated.Name)
	}
	if updated.Phone != "+254711111111" {
		t.Errorf("expected trimmed phone, got %q", updated.Phone)
	}
	// Immutable fields stay put.
	if updated.Email != "w@example.com" || updated.Role != domain.RoleTenant {
		t.Errorf("email/role must not change: %+v", updated)
	}
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Profile(context.Background(), "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
