package service

import (
	"context"

	"go.uber.org/zap"

	"intouch/config"
	"intouch/internal/cache"
	"intouch/internal/domain"
	"intouch/internal/i18n"
	"intouch/internal/repository"
	"intouch/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	RosterCache cache.RosterCache
	Notifier    Notifier
}

type Services struct {
	User       UserService
	Auth       AuthService
	Specialist SpecialistService
	Search     SearchService
	Message    MessageService
	Settings   SettingsService
}

func NewServices(deps Deps) *Services {
	specialist := NewSpecialistService(deps.Repos.Specialist, deps.Repos.User, deps.FileStorage, deps.RosterCache, deps.Logger)

	return &Services{
		User:       NewUserService(deps.Repos.User, deps.Logger),
		Auth:       NewAuthService(deps.Repos.Session, deps.Repos.User, deps.Repos.Specialist, deps.Config.JWT, deps.Logger),
		Specialist: specialist,
		Search:     NewSearchService(specialist, deps.Logger),
		Message:    NewMessageService(deps.Notifier, deps.Logger),
		Settings:   NewSettingsService(deps.Repos.Settings, deps.Logger),
	}
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type SpecialistService interface {
	GetAll(ctx context.Context) ([]domain.Specialist, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.SpecialistProfile, error)
	CreateProfile(ctx context.Context, userID int64, dto domain.CreateProfileDTO) (*domain.SpecialistProfile, error)
	UpdateProfile(ctx context.Context, userID int64, dto domain.UpdateProfileDTO) (*domain.SpecialistProfile, error)
	UpdateServices(ctx context.Context, userID int64, services []string) error

	UploadPhoto(ctx context.Context, userID int64, photo []byte, filename string) (string, error)
	DeletePhoto(ctx context.Context, userID int64) error
}

type SearchService interface {
	// Search runs one filter step against the current roster: it computes
	// the visible subset, the search suggestions, and the recipient
	// selection after the auto-sync rule is applied to the prior
	// selection.
	Search(ctx context.Context, criteria domain.FilterCriteria, selected []string) (*domain.SearchResult, error)
	Suggest(ctx context.Context, term string, selected []string) ([]domain.Suggestion, error)
}

type MessageService interface {
	Compose(draft domain.MessageDraft) (*domain.ComposeResult, error)
	ContactSpecialist(ctx context.Context, req domain.ContactRequest, lang i18n.Language) error
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) (*domain.UserSettings, error)
	Update(ctx context.Context, userID int64, dto domain.UpdateSettingsDTO) (*domain.UserSettings, error)
	GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error)
	ChangePlan(ctx context.Context, userID int64, plan domain.SubscriptionPlan) (*domain.Subscription, error)
}

// Notifier delivers transactional email through an external provider. Both
// notification paths (specialist notification and customer confirmation) sit
// behind this single interface.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
