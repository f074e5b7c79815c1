package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"intouch/internal/domain"
)

// ErrNotFound is returned by every repository when the requested record does
// not exist. Services translate it into user-facing not-found messages.
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	User       UserRepository
	Specialist SpecialistRepository
	Session    SessionRepository
	Settings   SettingsRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Specialist: NewSpecialistRepository(db),
		Session:    NewSessionRepository(db),
		Settings:   NewSettingsRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type SpecialistRepository interface {
	CreateProfile(ctx context.Context, userID int64, profile domain.SpecialistProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.SpecialistProfile, error)
	UpdateProfile(ctx context.Context, userID int64, dto domain.UpdateProfileDTO) error
	UpdateServices(ctx context.Context, userID int64, services []string) error
	UpdatePhoto(ctx context.Context, userID int64, photoURL string) error

	// GetAll returns the joined read model in stable roster order
	// (profile creation order).
	GetAll(ctx context.Context) ([]domain.Specialist, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID int64) error
}

type SettingsRepository interface {
	Get(ctx context.Context, userID int64) (*domain.UserSettings, error)
	Save(ctx context.Context, settings domain.UserSettings) error
	GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error)
	SaveSubscription(ctx context.Context, sub domain.Subscription) error
}
