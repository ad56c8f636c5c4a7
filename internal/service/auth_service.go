package service

import (
	"context"

	"postboard/internal/auth"
	"postboard/internal/models"
	"postboard/internal/repository"
)

// AuthService registers accounts and exchanges credentials for session tokens.
type AuthService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens auth.TokenCodec
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenCodec) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register stores a new user with a hashed password. Inputs are stored as given;
// a taken email surfaces as the repository's CONFLICT error.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: digest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns a session token for the user owning email when password matches.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(password, user.Password)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}
