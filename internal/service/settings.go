package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/repository"
)

var ErrUnknownPlan = errors.New("unknown subscription plan")

type SettingsServiceImpl struct {
	repo   repository.SettingsRepository
	logger *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Get returns stored settings, or the defaults for users who never saved any.
func (s *SettingsServiceImpl) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		s.logger.Error("failed to load settings", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to load settings")
	}
	return settings, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, userID int64, dto domain.UpdateSettingsDTO) (*domain.UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if dto.Language != nil {
		settings.Language = *dto.Language
	}
	if dto.EmailNotifications != nil {
		settings.EmailNotifications = *dto.EmailNotifications
	}
	if dto.SMSNotifications != nil {
		settings.SMSNotifications = *dto.SMSNotifications
	}
	if dto.MarketingEmails != nil {
		settings.MarketingEmails = *dto.MarketingEmails
	}
	if dto.ProfileVisibility != nil {
		settings.ProfileVisibility = *dto.ProfileVisibility
	}
	if dto.AutoRespond != nil {
		settings.AutoRespond = *dto.AutoRespond
	}
	if dto.AutoRespondMessage != nil {
		settings.AutoRespondMessage = *dto.AutoRespondMessage
	}
	if dto.WorkingHours != nil {
		settings.WorkingHours = *dto.WorkingHours
	}
	if dto.Timezone != nil {
		settings.Timezone = *dto.Timezone
	}
	settings.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, *settings); err != nil {
		s.logger.Error("failed to save settings", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to save settings")
	}

	return settings, nil
}

// GetSubscription defaults to the free plan for users without a stored one.
func (s *SettingsServiceImpl) GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.Subscription{UserID: userID, Plan: domain.PlanFree}, nil
		}
		s.logger.Error("failed to load subscription", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to load subscription")
	}
	return sub, nil
}

func (s *SettingsServiceImpl) ChangePlan(ctx context.Context, userID int64, plan domain.SubscriptionPlan) (*domain.Subscription, error) {
	if !plan.IsValid() {
		return nil, ErrUnknownPlan
	}

	sub := domain.Subscription{
		UserID:    userID,
		Plan:      plan,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.SaveSubscription(ctx, sub); err != nil {
		s.logger.Error("failed to save subscription", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to change plan")
	}

	return &sub, nil
}
