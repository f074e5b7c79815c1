package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intouch/config"
	"intouch/internal/domain"
	"intouch/internal/repository"
	"intouch/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repository.NewMemoryRepositories()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SigningKey:      "test-signing-key",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	logger := zap.NewNop()

	services := service.NewServices(service.Deps{
		Repos:  repos,
		Logger: logger,
		Config: cfg,
	})

	router := gin.New()
	NewHandler(services, logger, cfg).InitRoutes(router)
	return router, repos
}

func seedSpecialist(t *testing.T, repos *repository.Repositories, email, firstName, lastName string, profile domain.SpecialistProfile) {
	t.Helper()
	ctx := context.Background()

	id, err := repos.User.Create(ctx, domain.CreateUserDTO{
		Email:     email,
		Role:      domain.UserRoleSpecialist,
		FirstName: firstName,
		LastName:  lastName,
	}, "hash")
	require.NoError(t, err)
	require.NoError(t, repos.Specialist.CreateProfile(ctx, id, profile))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	router, repos := newTestRouter(t)
	seedSpecialist(t, repos, "jonas@example.com", "Jonas", "Petrauskas", domain.SpecialistProfile{
		Type:       domain.SpecialistTypeIndividual,
		Profession: "Santechnikas",
		Categories: []string{"Statyba, remontas, medžiagos, NT"},
		Services:   []string{"Santechnikos darbai"},
		Coverage:   domain.CitiesCoverage([]string{"Vilnius"}),
	})

	w := doJSON(t, router, http.MethodPost, "/api/v1/search/", map[string]interface{}{
		"criteria": map[string]interface{}{
			"selected_cities": []string{"Vilnius"},
			"specialist_type": "individual",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.SearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Specialists, 1)
	assert.Equal(t, "jonas@example.com", resp.Data.Specialists[0].Email)
	assert.Equal(t, []string{"jonas@example.com"}, resp.Data.Selection)
}

func TestSelectionToggleEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/search/selection/toggle", map[string]interface{}{
		"selection": []string{"a@example.com"},
		"email":     "a@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Selection []string `json:"selection"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Selection)
}

func TestComposeEndpointLocalizesValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/messages/compose?lang=lt", map[string]interface{}{
		"recipients": []string{"a@example.com"},
		"body":       "   ",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Įveskite žinutę")

	w = doJSON(t, router, http.MethodPost, "/api/v1/messages/compose?lang=en", map[string]interface{}{
		"recipients": []string{},
		"body":       "Hello",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please select at least one recipient")
}

func TestTaxonomyEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/taxonomy/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vilnius")

	w = doJSON(t, router, http.MethodGet, "/api/v1/taxonomy/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paslaugos")
}

func TestAuthFlowOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":      "ona@example.com",
		"password":   "secret123",
		"role":       "customer",
		"first_name": "Ona",
		"last_name":  "Jonaitienė",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "ona@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.Tokens `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ona@example.com")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
