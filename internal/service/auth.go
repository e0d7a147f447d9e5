package service

import (
	"context"
	"errors"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/internal/security"
	"time"
)

type AuthService struct {
	userRepo repo.User
	tokens   *security.TokenProvider
}

func NewAuthService(repos *repo.Repositories, tokens *security.TokenProvider) *AuthService {
	return &AuthService{
		userRepo: repos.User,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.UserOutputModel, string, time.Time, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	input := &entity.CreateUserInput{Name: name, Email: email, PasswordHash: hash}
	id, err := s.userRepo.CreateUser(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, "", time.Time{}, ErrEmailAlreadyTaken
		}

		return nil, "", time.Time{}, err
	}

	user, err := s.userRepo.GetUserById(ctx, id.String())
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Issue(user.Id, user.Name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return mapUser(user), token, expiresAt, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.UserOutputModel, string, time.Time, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}

		return nil, "", time.Time{}, err
	}

	if err := security.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Id, user.Name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return mapUser(user), token, expiresAt, nil
}

func (s *AuthService) GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return mapUser(user), nil
}
