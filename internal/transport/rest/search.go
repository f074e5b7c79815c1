package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/service"
)

// searchRequest carries one filter step of the listing page: the full filter
// criteria plus the selection as it stood before this step.
type searchRequest struct {
	Criteria  domain.FilterCriteria `json:"criteria"`
	Selection []string              `json:"selection"`
}

func (h *Handler) search(c *gin.Context) {
	var input searchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	result, err := h.services.Search.Search(c.Request.Context(), input.Criteria, input.Selection)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, result)
}

func (h *Handler) suggest(c *gin.Context) {
	term := c.Query("term")
	selected := splitSelection(c.Query("selected"))

	suggestions, err := h.services.Search.Suggest(c.Request.Context(), term, selected)
	if err != nil {
		h.logger.Error("suggestions failed", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, suggestions)
}

// selectAllVisible adds every specialist matching the criteria to the
// selection; selections made under other filters are kept.
func (h *Handler) selectAllVisible(c *gin.Context) {
	input, filtered, ok := h.bindVisible(c)
	if !ok {
		return
	}

	selection := domain.NewRecipientSelection(input.Selection...)
	selection.SelectVisible(visibleEmails(filtered))

	successResponse(c, http.StatusOK, map[string]interface{}{
		"selection": selection.Emails(),
	})
}

// deselectAllVisible removes exactly the specialists matching the criteria,
// leaving the rest of the selection untouched.
func (h *Handler) deselectAllVisible(c *gin.Context) {
	input, filtered, ok := h.bindVisible(c)
	if !ok {
		return
	}

	selection := domain.NewRecipientSelection(input.Selection...)
	selection.DeselectVisible(visibleEmails(filtered))

	successResponse(c, http.StatusOK, map[string]interface{}{
		"selection": selection.Emails(),
	})
}

func (h *Handler) toggleRecipient(c *gin.Context) {
	var input struct {
		Selection []string `json:"selection"`
		Email     string   `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	selection := domain.NewRecipientSelection(input.Selection...)
	selection.Toggle(input.Email)

	successResponse(c, http.StatusOK, map[string]interface{}{
		"selection": selection.Emails(),
	})
}

func (h *Handler) bindVisible(c *gin.Context) (searchRequest, []domain.Specialist, bool) {
	var input searchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return input, nil, false
	}

	roster, err := h.services.Specialist.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load specialists", zap.Error(err))
		internalServerErrorResponse(c)
		return input, nil, false
	}

	return input, service.FilterSpecialists(roster, input.Criteria), true
}

func visibleEmails(specialists []domain.Specialist) []string {
	emails := make([]string, 0, len(specialists))
	for _, sp := range specialists {
		if sp.Email != "" {
			emails = append(emails, sp.Email)
		}
	}
	return emails
}

func splitSelection(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	selected := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			selected = append(selected, p)
		}
	}
	return selected
}
