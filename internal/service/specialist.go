package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"intouch/internal/cache"
	"intouch/internal/domain"
	"intouch/internal/repository"
	"intouch/internal/storage"
)

var (
	ErrProfileNotFound = errors.New("specialist profile not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownCity     = errors.New("unknown city")
)

type SpecialistServiceImpl struct {
	repo        repository.SpecialistRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
	rosterCache cache.RosterCache
	logger      *zap.Logger
}

func NewSpecialistService(
	repo repository.SpecialistRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	rosterCache cache.RosterCache,
	logger *zap.Logger,
) *SpecialistServiceImpl {
	return &SpecialistServiceImpl{
		repo:        repo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		rosterCache: rosterCache,
		logger:      logger,
	}
}

// GetAll serves the roster from cache when possible and falls back to the
// joined database read. The roster is small enough to hold whole.
func (s *SpecialistServiceImpl) GetAll(ctx context.Context) ([]domain.Specialist, error) {
	if s.rosterCache != nil {
		if roster, ok := s.rosterCache.Get(ctx); ok {
			return roster, nil
		}
	}

	roster, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load specialist roster", zap.Error(err))
		return nil, errors.New("failed to load specialists")
	}

	if s.rosterCache != nil {
		s.rosterCache.Set(ctx, roster)
	}

	return roster, nil
}

func (s *SpecialistServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.SpecialistProfile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to load specialist profile", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to load profile")
	}
	return profile, nil
}

func (s *SpecialistServiceImpl) CreateProfile(ctx context.Context, userID int64, dto domain.CreateProfileDTO) (*domain.SpecialistProfile, error) {
	if err := validateTaxonomySelection(dto.Categories, dto.Services, dto.Cities); err != nil {
		return nil, err
	}

	profile := newProfile(dto)
	if err := s.repo.CreateProfile(ctx, userID, profile); err != nil {
		s.logger.Error("failed to create specialist profile", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to create profile")
	}

	s.invalidateRoster(ctx)

	return s.GetByUserID(ctx, userID)
}

func (s *SpecialistServiceImpl) UpdateProfile(ctx context.Context, userID int64, dto domain.UpdateProfileDTO) (*domain.SpecialistProfile, error) {
	var cities []string
	if dto.Cities != nil {
		cities = *dto.Cities
	}
	if err := validateTaxonomySelection(dto.Categories, dto.Services, cities); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, userID, dto); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to update specialist profile", zap.Int64("userID", userID), zap.Error(err))
		return nil, errors.New("failed to update profile")
	}

	s.invalidateRoster(ctx)

	return s.GetByUserID(ctx, userID)
}

func (s *SpecialistServiceImpl) UpdateServices(ctx context.Context, userID int64, services []string) error {
	if len(services) == 0 {
		return errors.New("at least one service is required")
	}

	if err := s.repo.UpdateServices(ctx, userID, services); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		s.logger.Error("failed to update services", zap.Int64("userID", userID), zap.Error(err))
		return errors.New("failed to update services")
	}

	s.invalidateRoster(ctx)
	return nil
}

func (s *SpecialistServiceImpl) UploadPhoto(ctx context.Context, userID int64, photo []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("file storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", fmt.Errorf("unsupported photo format %q", ext)
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, fmt.Sprintf("%d%s", userID, ext))
	if err != nil {
		s.logger.Error("failed to upload photo", zap.Int64("userID", userID), zap.Error(err))
		return "", errors.New("failed to upload photo")
	}

	if err := s.repo.UpdatePhoto(ctx, userID, url); err != nil {
		s.logger.Error("failed to save photo url", zap.Int64("userID", userID), zap.Error(err))
		return "", errors.New("failed to upload photo")
	}

	s.invalidateRoster(ctx)
	return url, nil
}

func (s *SpecialistServiceImpl) DeletePhoto(ctx context.Context, userID int64) error {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile.PhotoURL == "" {
		return nil
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, profile.PhotoURL); err != nil {
			s.logger.Warn("failed to delete photo object", zap.Int64("userID", userID), zap.Error(err))
		}
	}

	if err := s.repo.UpdatePhoto(ctx, userID, ""); err != nil {
		s.logger.Error("failed to clear photo url", zap.Int64("userID", userID), zap.Error(err))
		return errors.New("failed to delete photo")
	}

	s.invalidateRoster(ctx)
	return nil
}

func (s *SpecialistServiceImpl) invalidateRoster(ctx context.Context) {
	if s.rosterCache != nil {
		s.rosterCache.Invalidate(ctx)
	}
}

// newProfile applies the marketplace defaults for fields the signup form does
// not collect: 25 EUR/h, one year of experience, unverified. A profile without
// a profession inherits the first selected category as its headline, and one
// without cities covers all of Lithuania.
func newProfile(dto domain.CreateProfileDTO) domain.SpecialistProfile {
	profession := strings.TrimSpace(dto.Profession)
	if profession == "" && len(dto.Categories) > 0 {
		profession = dto.Categories[0]
	}

	return domain.SpecialistProfile{
		Type:        dto.Type,
		Profession:  profession,
		Categories:  dto.Categories,
		Services:    dto.Services,
		Coverage:    domain.CitiesCoverage(dto.Cities),
		Phone:       dto.Phone,
		Description: dto.Description,
		HourlyRate:  domain.DefaultHourlyRate,
		Experience:  domain.DefaultExperience,
		Verified:    false,
	}
}

func validateTaxonomySelection(categories, services, cities []string) error {
	for _, c := range categories {
		if !domain.IsCategory(c) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	for _, c := range cities {
		if !domain.IsCity(c) {
			return fmt.Errorf("%w: %q", ErrUnknownCity, c)
		}
	}
	if len(services) > 0 {
		known := make(map[string]bool)
		for _, cat := range categories {
			for _, svc := range domain.ServicesFor(cat) {
				known[svc] = true
			}
		}
		// Services are validated against the selected categories only when
		// categories accompany them; a bare service update trusts the stored
		// selection.
		if len(categories) > 0 {
			for _, svc := range services {
				if !known[svc] {
					return fmt.Errorf("service %q does not belong to the selected categories", svc)
				}
			}
		}
	}
	return nil
}
