package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"intouch/internal/domain"
)

// In-process implementations of the repository interfaces. They back tests
// and local demos; semantics mirror the Postgres implementations, including
// roster order (profile creation order) and case-insensitive email lookup.

func NewMemoryRepositories() *Repositories {
	users := NewMemoryUserRepository()
	specialists := NewMemorySpecialistRepository()
	specialists.BindUsers(users)

	return &Repositories{
		User:       users,
		Specialist: specialists,
		Session:    NewMemorySessionRepository(),
		Settings:   NewMemorySettingsRepository(),
	}
}

type MemoryUserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  []domain.User
}

func NewMemoryUserRepository() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1}
}

func (r *MemoryUserRepo) Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	user := domain.User{
		ID:           r.nextID,
		Email:        strings.ToLower(dto.Email),
		PasswordHash: passwordHash,
		Role:         dto.Role,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		CompanyName:  dto.CompanyName,
		CompanyCode:  dto.CompanyCode,
		Phone:        dto.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.nextID++
	r.users = append(r.users, user)

	return user.ID, nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		u := &r.users[i]
		if dto.FirstName != nil {
			u.FirstName = *dto.FirstName
		}
		if dto.LastName != nil {
			u.LastName = *dto.LastName
		}
		if dto.CompanyName != nil {
			u.CompanyName = *dto.CompanyName
		}
		if dto.CompanyCode != nil {
			u.CompanyCode = *dto.CompanyCode
		}
		if dto.Phone != nil {
			u.Phone = *dto.Phone
		}
		if dto.IsActive != nil {
			u.IsActive = *dto.IsActive
		}
		u.UpdatedAt = time.Now()
		return nil
	}
	return ErrNotFound
}

func (r *MemoryUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].PasswordHash = passwordHash
			r.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

type MemorySpecialistRepo struct {
	mu       sync.RWMutex
	profiles []domain.SpecialistProfile
	users    *MemoryUserRepo
}

func NewMemorySpecialistRepository() *MemorySpecialistRepo {
	return &MemorySpecialistRepo{}
}

// BindUsers wires the user store used for the joined read model.
func (r *MemorySpecialistRepo) BindUsers(users *MemoryUserRepo) {
	r.users = users
}

func (r *MemorySpecialistRepo) CreateProfile(ctx context.Context, userID int64, profile domain.SpecialistProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	profile.UserID = userID
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.profiles = append(r.profiles, profile)

	return nil
}

func (r *MemorySpecialistRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SpecialistProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.profiles {
		if r.profiles[i].UserID == userID {
			p := r.profiles[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemorySpecialistRepo) UpdateProfile(ctx context.Context, userID int64, dto domain.UpdateProfileDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].UserID != userID {
			continue
		}
		p := &r.profiles[i]
		if dto.Profession != nil {
			p.Profession = *dto.Profession
		}
		if dto.Categories != nil {
			p.Categories = dto.Categories
		}
		if dto.Services != nil {
			p.Services = dto.Services
		}
		if dto.Cities != nil {
			p.Coverage = domain.CitiesCoverage(*dto.Cities)
		}
		if dto.Phone != nil {
			p.Phone = *dto.Phone
		}
		if dto.Description != nil {
			p.Description = *dto.Description
		}
		if dto.HourlyRate != nil {
			p.HourlyRate = *dto.HourlyRate
		}
		if dto.Experience != nil {
			p.Experience = *dto.Experience
		}
		p.UpdatedAt = time.Now()
		return nil
	}
	return ErrNotFound
}

func (r *MemorySpecialistRepo) UpdateServices(ctx context.Context, userID int64, services []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].UserID == userID {
			r.profiles[i].Services = services
			r.profiles[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemorySpecialistRepo) UpdatePhoto(ctx context.Context, userID int64, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].UserID == userID {
			r.profiles[i].PhotoURL = photoURL
			r.profiles[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemorySpecialistRepo) GetAll(ctx context.Context) ([]domain.Specialist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specialists := make([]domain.Specialist, 0, len(r.profiles))
	for _, p := range r.profiles {
		sp := domain.Specialist{SpecialistProfile: p}
		if r.users != nil {
			if u, err := r.users.GetByID(ctx, p.UserID); err == nil {
				sp.Email = u.Email
				sp.FirstName = u.FirstName
				sp.LastName = u.LastName
				sp.CompanyName = u.CompanyName
				sp.CompanyCode = u.CompanyCode
			}
		}
		specialists = append(specialists, sp)
	}
	return specialists, nil
}

type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemorySessionRepository() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *MemorySessionRepo) Create(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *MemorySessionRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.RefreshToken == refreshToken {
			out := s
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemorySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

type MemorySettingsRepo struct {
	mu            sync.RWMutex
	settings      map[int64]domain.UserSettings
	subscriptions map[int64]domain.Subscription
}

func NewMemorySettingsRepository() *MemorySettingsRepo {
	return &MemorySettingsRepo{
		settings:      make(map[int64]domain.UserSettings),
		subscriptions: make(map[int64]domain.Subscription),
	}
}

func (r *MemorySettingsRepo) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.settings[userID]; ok {
		return &s, nil
	}
	return nil, ErrNotFound
}

func (r *MemorySettingsRepo) Save(ctx context.Context, s domain.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.UpdatedAt = time.Now()
	r.settings[s.UserID] = s
	return nil
}

func (r *MemorySettingsRepo) GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sub, ok := r.subscriptions[userID]; ok {
		return &sub, nil
	}
	return nil, ErrNotFound
}

func (r *MemorySettingsRepo) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.UpdatedAt = time.Now()
	r.subscriptions[sub.UserID] = sub
	return nil
}
