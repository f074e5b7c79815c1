package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intouch/config"
	"intouch/internal/domain"
	"intouch/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthServiceImpl, *repository.Repositories) {
	t.Helper()

	repos := repository.NewMemoryRepositories()
	jwtConfig := config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}

	return NewAuthService(repos.Session, repos.User, repos.Specialist, jwtConfig, zap.NewNop()), repos
}

func TestRegister_Customer(t *testing.T) {
	auth, repos := newAuthFixture(t)

	id, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:     "Ona@Example.com",
		Password:  "secret123",
		Role:      domain.UserRoleCustomer,
		FirstName: "Ona",
		LastName:  "Jonaitienė",
	})
	require.NoError(t, err)

	user, err := repos.User.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ona@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be hashed")
	assert.True(t, user.IsActive)
}

func TestRegister_SpecialistCreatesProfileInTheSameFlow(t *testing.T) {
	auth, repos := newAuthFixture(t)

	id, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:     "jonas@example.com",
		Password:  "secret123",
		Role:      domain.UserRoleSpecialist,
		FirstName: "Jonas",
		LastName:  "Petrauskas",
		Profile: &domain.CreateProfileDTO{
			Type:       domain.SpecialistTypeIndividual,
			Categories: []string{"Paslaugos"},
			Services:   []string{"Valymo paslaugos"},
			Cities:     []string{"Vilnius"},
		},
	})
	require.NoError(t, err)

	profile, err := repos.Specialist.GetByUserID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, float64(domain.DefaultHourlyRate), profile.HourlyRate)
	assert.Equal(t, domain.DefaultExperience, profile.Experience)
	assert.False(t, profile.Verified)
	assert.Equal(t, "Paslaugos", profile.Profession, "profession defaults to the first category")
}

func TestRegister_NormalizesPhone(t *testing.T) {
	auth, repos := newAuthFixture(t)

	id, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:     "ona@example.com",
		Password:  "secret123",
		Role:      domain.UserRoleCustomer,
		FirstName: "Ona",
		LastName:  "Jonaitienė",
		Phone:     "8 612 34567",
	})
	require.NoError(t, err)

	user, err := repos.User.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "+37061234567", user.Phone)
}

func TestRegister_RejectsInvalidPhone(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
		Phone:    "abc",
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestRegister_RejectsInvalidCompanyCode(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:       "statyba@example.com",
		Password:    "secret123",
		Role:        domain.UserRoleSpecialist,
		CompanyName: "UAB Statyba",
		CompanyCode: "12345",
		Profile: &domain.CreateProfileDTO{
			Type:       domain.SpecialistTypeBusiness,
			Categories: []string{"Statyba"},
			Services:   []string{"Mūrijimas"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidCompanyCode)
}

func TestRegister_SpecialistWithoutProfileFails(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), domain.RegisterRequest{
		Email:    "jonas@example.com",
		Password: "secret123",
		Role:     domain.UserRoleSpecialist,
	})
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	}
	_, err := auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = auth.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginAndParseToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	id, err := auth.Register(ctx, domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	})
	require.NoError(t, err)

	tokens, err := auth.Login(ctx, domain.LoginRequest{
		Email:    "ona@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	userID, role, err := auth.ParseToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.Equal(t, domain.UserRoleCustomer, role)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, domain.LoginRequest{
		Email:    "ona@example.com",
		Password: "wrong",
	}, "test-agent", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens_RotatesSession(t *testing.T) {
	auth, repos := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	})
	require.NoError(t, err)

	tokens, err := auth.Login(ctx, domain.LoginRequest{
		Email:    "ona@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	refreshed, err := auth.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is invalidated by rotation.
	_, err = repos.Session.GetByRefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = auth.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokens_RefreshTokensAreUnique(t *testing.T) {
	auth, _ := newAuthFixture(t)

	// Back-to-back issuances land within the same second, so the claims
	// must carry more than timestamps to produce distinct tokens. A
	// collision here would make session rotation store the token it just
	// rotated out.
	first, err := auth.generateTokens(1, domain.UserRoleCustomer)
	require.NoError(t, err)
	second, err := auth.generateTokens(1, domain.UserRoleCustomer)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestRefreshTokens_ImmediateRefreshAfterLogin(t *testing.T) {
	auth, repos := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	})
	require.NoError(t, err)

	tokens, err := auth.Login(ctx, domain.LoginRequest{
		Email:    "ona@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	refreshed, err := auth.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	require.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)

	// Only the rotated-in token resolves to a session.
	_, err = repos.Session.GetByRefreshToken(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
	_, err = repos.Session.GetByRefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLogout(t *testing.T) {
	auth, repos := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, domain.RegisterRequest{
		Email:    "ona@example.com",
		Password: "secret123",
		Role:     domain.UserRoleCustomer,
	})
	require.NoError(t, err)

	tokens, err := auth.Login(ctx, domain.LoginRequest{
		Email:    "ona@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, tokens.RefreshToken))

	_, err = repos.Session.GetByRefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Logging out twice is a no-op.
	assert.NoError(t, auth.Logout(ctx, tokens.RefreshToken))
}

func TestParseToken_Garbage(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.ParseToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
