package ports

import (
	"context"
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// RegisterInput carries the fields a new account is created from.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
}

// AuthResult is returned after a successful register or login.
type AuthResult struct {
	Token   string
	Expires time.Time
	User    *domain.User
}

// AuthService implements registration, login and password management.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login accepts a username or an email as the login identifier. A missing
	// user, a wrong password and a disabled account are indistinguishable to
	// the caller.
	Login(ctx context.Context, login, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	GetUser(ctx context.Context, userID uint) (*domain.User, error)

	// Admin account management.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SetUserRole(ctx context.Context, userID uint, role string) error
	SetUserActive(ctx context.Context, userID uint, active bool) error
}

// Identity is the decoded, verified content of a bearer token.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// TokenService issues and validates signed identity tokens. It is stateless.
type TokenService interface {
	Issue(user *domain.User) (token string, expires time.Time, err error)
	// Validate fails closed: any signature, expiry, issuer, audience or
	// structural problem yields (nil, false) rather than an error.
	Validate(token string) (*Identity, bool)
}
