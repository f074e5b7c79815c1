package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intouch/internal/domain"
	"intouch/internal/i18n"
)

// getCategories returns the closed category list with the services of each.
func (h *Handler) getCategories(c *gin.Context) {
	type categoryEntry struct {
		Name     string   `json:"name"`
		Services []string `json:"services"`
	}

	categories := make([]categoryEntry, 0, len(domain.Categories))
	for _, name := range domain.Categories {
		categories = append(categories, categoryEntry{
			Name:     name,
			Services: domain.ServicesFor(name),
		})
	}

	successResponse(c, http.StatusOK, categories)
}

func (h *Handler) getCities(c *gin.Context) {
	successResponse(c, http.StatusOK, domain.Cities)
}

func (h *Handler) getTranslations(c *gin.Context) {
	lang := requestLanguage(c)
	successResponse(c, http.StatusOK, i18n.Table(lang))
}
