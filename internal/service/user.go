package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/repository"
	"intouch/pkg/auth"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.Int64("userID", id), zap.Error(err))
		return nil, errors.New("failed to load user")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("failed to update user", zap.Int64("userID", id), zap.Error(err))
		return errors.New("failed to update user")
	}
	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.Int64("userID", id), zap.Error(err))
		return errors.New("failed to update password")
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		return ErrWrongPassword
	}

	newHash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return errors.New("failed to update password")
	}

	if err := s.repo.UpdatePassword(ctx, id, newHash); err != nil {
		s.logger.Error("failed to store password", zap.Int64("userID", id), zap.Error(err))
		return errors.New("failed to update password")
	}

	return nil
}
