package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new account after checking that the email is free. The
// pre-insert lookup gives the friendly error; the unique constraint on
// users.email catches the race between two concurrent registrations, and the
// repository reports that as domain.ErrEmailTaken too.
func (s *AuthService) Register(ctx context.Context, email, username, fullName, password string) (*domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &domain.User{
		Email:          email,
		Username:       username,
		FullName:       fullName,
		HashedPassword: hash,
		IsAdmin:        false,
		IsActive:       true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a bearer token with the account email
// as subject. Unknown email and wrong password collapse into the same error
// so the response never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !CheckPassword(password, user.HashedPassword) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}
