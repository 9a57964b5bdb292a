package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"globetrotter/internal/auth"
	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/model"
	"globetrotter/internal/repository"
)

// bcryptCost matches the original deployment's work factor.
const bcryptCost = 8

// Identity summarizes an authenticated user. It never carries the password
// hash.
type Identity struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
}

// AuthService handles registration, authentication and session termination.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, roleNames []string) error
	Login(ctx context.Context, username, password string) (*Identity, error)
	Logout(ctx context.Context, userID uint) error
}

type authService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, jwtService *auth.JWTService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		users:      users,
		roles:      roles,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register validates uniqueness and role names, hashes the password and
// persists the user with its resolved role set. The plaintext password is
// never stored or logged.
func (s *authService) Register(ctx context.Context, username, email, password string, roleNames []string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return apperrors.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	roles, err := s.resolveRoles(ctx, roleNames)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Roles:        roles,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// resolveRoles maps requested role names to catalog entries, rejecting names
// outside the closed catalog. An empty request resolves to the default role.
func (s *authService) resolveRoles(ctx context.Context, roleNames []string) ([]model.Role, error) {
	if len(roleNames) == 0 {
		role, err := s.roles.FindByName(ctx, model.RoleUser)
		if err != nil {
			return nil, fmt.Errorf("resolve default role: %w", err)
		}
		return []model.Role{*role}, nil
	}

	for _, name := range roleNames {
		if !model.ValidRoleName(name) {
			return nil, apperrors.ErrRoleNotFound
		}
	}

	roles, err := s.roles.FindByNames(ctx, roleNames)
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}
	if len(roles) != len(roleNames) {
		return nil, apperrors.ErrRoleNotFound
	}
	return roles, nil
}

// Login verifies the credentials, issues a session token and binds it to the
// caller's session.
func (s *authService) Login(ctx context.Context, username, password string) (*Identity, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	tokenID, token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.sessions.Bind(ctx, user.ID, tokenID, auth.TokenExpiry); err != nil {
		return nil, fmt.Errorf("bind session: %w", err)
	}

	return &Identity{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Roles:       user.Authorities(),
		AccessToken: token,
	}, nil
}

// Logout clears the caller's session binding. Terminating an already
// terminated session succeeds.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	return s.sessions.Clear(ctx, userID)
}
