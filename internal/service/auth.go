package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"intouch/config"
	"intouch/internal/domain"
	"intouch/internal/repository"
	"intouch/pkg/auth"
	"intouch/pkg/validator"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCompanyCode = errors.New("invalid company code")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

type AuthServiceImpl struct {
	sessionRepo    repository.SessionRepository
	userRepo       repository.UserRepository
	specialistRepo repository.SpecialistRepository
	jwtConfig      config.JWTConfig
	logger         *zap.Logger
}

func NewAuthService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	specialistRepo repository.SpecialistRepository,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		sessionRepo:    sessionRepo,
		userRepo:       userRepo,
		specialistRepo: specialistRepo,
		jwtConfig:      jwtConfig,
		logger:         logger,
	}
}

// Register creates the user account and, for specialists, the profile in the
// same flow. Category, city and service selections are captured at signup.
func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (int64, error) {
	existing, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err == nil && existing != nil {
		return 0, ErrEmailTaken
	}

	if dto.Role == domain.UserRoleSpecialist && dto.Profile == nil {
		return 0, errors.New("specialist registration requires a profile")
	}

	if dto.CompanyCode != "" && !validator.ValidateCompanyCode(dto.CompanyCode) {
		return 0, ErrInvalidCompanyCode
	}

	if dto.Phone != "" {
		if !validator.ValidatePhone(dto.Phone) {
			return 0, ErrInvalidPhone
		}
		dto.Phone = validator.FormatPhone(dto.Phone)
	}

	passwordHash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return 0, errors.New("failed to register user")
	}

	userID, err := s.userRepo.Create(ctx, domain.CreateUserDTO{
		Email:       dto.Email,
		Role:        dto.Role,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		CompanyName: dto.CompanyName,
		CompanyCode: dto.CompanyCode,
		Phone:       dto.Phone,
	}, passwordHash)
	if err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return 0, errors.New("failed to register user")
	}

	if dto.Profile != nil {
		profile := newProfile(*dto.Profile)
		if err := s.specialistRepo.CreateProfile(ctx, userID, profile); err != nil {
			s.logger.Error("failed to create specialist profile", zap.Int64("userID", userID), zap.Error(err))
			return 0, errors.New("failed to register specialist")
		}
	}

	return userID, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Warn("login for unknown email", zap.String("email", dto.Email))
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, errors.New("authentication failed")
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("failed to store session", zap.Error(err))
		return nil, errors.New("authentication failed")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if session.ExpiresAt.Before(time.Now()) {
		s.sessionRepo.Delete(ctx, session.ID)
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		s.logger.Error("session user not found", zap.Int64("userID", session.UserID), zap.Error(err))
		return nil, ErrInvalidToken
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		s.logger.Warn("failed to delete old session", zap.Error(err))
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, errors.New("failed to refresh tokens")
	}

	newSession := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, newSession); err != nil {
		s.logger.Error("failed to store session", zap.Error(err))
		return nil, errors.New("failed to refresh tokens")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		// Already logged out.
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		s.logger.Error("failed to delete session", zap.Error(err))
		return errors.New("logout failed")
	}

	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (int64, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) generateTokens(userID int64, role domain.UserRole) (*domain.Tokens, error) {
	accessClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	// The jti makes every refresh token unique. Without it two tokens issued
	// for the same user within the same second are byte-identical and session
	// rotation cannot invalidate the old one.
	refreshClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
