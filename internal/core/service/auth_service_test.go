package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, login string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("test-secret", "test-issuer", "test-audience", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func register(t *testing.T, svc *AuthService, username, email, password string) *ports.AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		FullName: "Test User",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return result
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result := register(t, svc, "alice", "alice@example.com", "pass1234")

	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("new accounts must get role User, got %s", result.User.Role)
	}
	if !result.User.IsActive {
		t.Fatalf("new accounts must be active")
	}
	if result.User.PasswordHash == "pass1234" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateUsernameOrEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	register(t, svc, "bob", "bob@example.com", "pass1234")

	cases := []struct {
		name     string
		username string
		email    string
	}{
		{"same username", "bob", "other@example.com"},
		{"same email", "robert", "bob@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), ports.RegisterInput{
				Username: tc.username,
				Email:    tc.email,
				Password: "pass1234",
			})
			if err != domain.ErrUserExists {
				t.Fatalf("expected ErrUserExists, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	register(t, svc, "carol", "carol@example.com", "s3cret99")

	for _, login := range []string{"carol", "carol@example.com"} {
		result, err := svc.Login(context.Background(), login, "s3cret99")
		if err != nil {
			t.Fatalf("Login(%q) returned error: %v", login, err)
		}
		if result.Token == "" {
			t.Fatalf("Login(%q): expected token", login)
		}
		if result.User.LastLogin == nil {
			t.Fatalf("Login(%q): LastLogin not stamped", login)
		}
	}
}

// A wrong password, an unknown user and a disabled account must all produce
// the same error so callers cannot tell which accounts exist.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	result := register(t, svc, "dave", "dave@example.com", "correct-pass")

	if err := svc.SetUserActive(context.Background(), result.User.ID+1000, false); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for unknown account, got %v", err)
	}

	disabled := register(t, svc, "erin", "erin@example.com", "correct-pass")
	if err := svc.SetUserActive(context.Background(), disabled.User.ID, false); err != nil {
		t.Fatalf("SetUserActive returned error: %v", err)
	}

	cases := []struct {
		name     string
		login    string
		password string
	}{
		{"wrong password", "dave", "wrong-pass"},
		{"unknown user", "nobody", "correct-pass"},
		{"disabled account", "erin", "correct-pass"},
		{"empty password", "dave", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tc.login, tc.password); err != domain.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	result := register(t, svc, "frank", "frank@example.com", "old-pass1")
	id := result.User.ID

	if err := svc.ChangePassword(context.Background(), id, "wrong", "new-pass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), id, "old-pass1", "new-pass1"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, err := svc.Login(context.Background(), "frank", "old-pass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "frank", "new-pass1"); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}
}

func TestAuthService_SetUserRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	result := register(t, svc, "grace", "grace@example.com", "pass1234")
	id := result.User.ID

	if err := svc.SetUserRole(context.Background(), id, "SuperAdmin"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	if err := svc.SetUserRole(context.Background(), id, domain.RoleAdmin); err != nil {
		t.Fatalf("SetUserRole returned error: %v", err)
	}
	user, err := svc.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role not updated, got %s", user.Role)
	}
}
