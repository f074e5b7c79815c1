package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"intouch/internal/domain"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

func (r *SettingsRepo) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, language, email_notifications, sms_notifications, marketing_emails,
		       profile_visibility, auto_respond, auto_respond_message,
		       working_hours_start, working_hours_end, timezone, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var s domain.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.Language,
		&s.EmailNotifications,
		&s.SMSNotifications,
		&s.MarketingEmails,
		&s.ProfileVisibility,
		&s.AutoRespond,
		&s.AutoRespondMessage,
		&s.WorkingHours.Start,
		&s.WorkingHours.End,
		&s.Timezone,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s domain.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, language, email_notifications, sms_notifications, marketing_emails,
			profile_visibility, auto_respond, auto_respond_message,
			working_hours_start, working_hours_end, timezone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			email_notifications = EXCLUDED.email_notifications,
			sms_notifications = EXCLUDED.sms_notifications,
			marketing_emails = EXCLUDED.marketing_emails,
			profile_visibility = EXCLUDED.profile_visibility,
			auto_respond = EXCLUDED.auto_respond,
			auto_respond_message = EXCLUDED.auto_respond_message,
			working_hours_start = EXCLUDED.working_hours_start,
			working_hours_end = EXCLUDED.working_hours_end,
			timezone = EXCLUDED.timezone,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		s.UserID,
		s.Language,
		s.EmailNotifications,
		s.SMSNotifications,
		s.MarketingEmails,
		s.ProfileVisibility,
		s.AutoRespond,
		s.AutoRespondMessage,
		s.WorkingHours.Start,
		s.WorkingHours.End,
		s.Timezone,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}

func (r *SettingsRepo) GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error) {
	query := `SELECT user_id, plan, updated_at FROM subscriptions WHERE user_id = $1`

	var sub domain.Subscription
	err := r.db.QueryRow(ctx, query, userID).Scan(&sub.UserID, &sub.Plan, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching subscription: %w", err)
	}

	return &sub, nil
}

func (r *SettingsRepo) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, plan, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET plan = EXCLUDED.plan, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, sub.UserID, sub.Plan, time.Now())
	if err != nil {
		return fmt.Errorf("saving subscription: %w", err)
	}

	return nil
}
