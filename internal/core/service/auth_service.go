package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// AuthService implements registration, login and password changes.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register creates an account with role User and returns a fresh token.
// Username and email are checked as two independent uniqueness probes; the
// unique indexes on the store back them up against races.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if taken, err := s.users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUserExists
	}
	if taken, err := s.users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Address:      in.Address,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expires, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return &ports.AuthResult{Token: token, Expires: expires, User: created}, nil
}

// Login authenticates by username or email. A missing user, a wrong password
// and a disabled account all surface as ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, login, password string) (*ports.AuthResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, login)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, Expires: expires, User: user}, nil
}

// ChangePassword replaces the stored hash after verifying the current password.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.PasswordHash = hash
	user.UpdatedAt = &now
	return s.users.Update(ctx, user)
}

func (s *AuthService) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// SetUserRole changes an account's role. Caller authorization is enforced at
// the transport layer (admin-only route).
func (s *AuthService) SetUserRole(ctx context.Context, userID uint, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	user.Role = role
	user.UpdatedAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", userID).Str("role", role).Msg("user role changed")
	return nil
}

// SetUserActive enables or disables an account. Disabled accounts cannot log in.
func (s *AuthService) SetUserActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	user.IsActive = active
	user.UpdatedAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", userID).Bool("active", active).Msg("user status changed")
	return nil
}
