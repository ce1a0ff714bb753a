package user

import (
	"context"
	"errors"
	"fmt"

	"souqStore/domain"
	"souqStore/pkg/logger"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint64) error
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *userService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if user.Name == "" {
		return nil, errors.New("name is required")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("failed to create user", err)
		return nil, err
	}

	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.userRepo.FindAll(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	if id == 0 {
		return domain.User{}, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	if user.Name == "" {
		return domain.User{}, errors.New("name is required")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("failed to update user", err)
		return domain.User{}, err
	}

	return s.userRepo.FindByID(ctx, user.ID)
}

func (s *userService) DeleteUser(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.userRepo.Delete(ctx, id)
}
