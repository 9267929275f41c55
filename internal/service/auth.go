package service

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-platform/internal/auth"
	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/dto"
	"ecommerce-platform/internal/model"
	"ecommerce-platform/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register checks the email before inserting. Two concurrent registrations
// can both pass the check; the unique index on users.email rejects the
// second insert with the same ErrorDuplicateUser.
func (s *authServiceImpl) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorDuplicateUser
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := auth.ComparePassword(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, common.ErrorInvalidCredentials
	}

	return s.respond(user)
}

func (s *authServiceImpl) respond(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
