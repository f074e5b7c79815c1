package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/i18n"
	"intouch/internal/service"
)

// composeMessage validates the draft and returns the mailto URI the client
// hands to the platform mail client. Validation failures come back with the
// localized message the page shows inline.
func (h *Handler) composeMessage(c *gin.Context) {
	var input domain.MessageDraft
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	lang := requestLanguage(c)

	result, err := h.services.Message.Compose(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			badRequestResponse(c, i18n.Translate(lang, "pleaseEnterMessage", nil))
		case errors.Is(err, service.ErrNoRecipients):
			badRequestResponse(c, i18n.Translate(lang, "pleaseSelectRecipients", nil))
		default:
			h.logger.Error("compose failed", zap.Error(err))
			internalServerErrorResponse(c)
		}
		return
	}

	successResponse(c, http.StatusOK, result)
}

func (h *Handler) contactSpecialist(c *gin.Context) {
	var input domain.ContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	lang := requestLanguage(c)

	if err := h.services.Message.ContactSpecialist(c.Request.Context(), input, lang); err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			badRequestResponse(c, i18n.Translate(lang, "pleaseEnterMessage", nil))
			return
		}
		h.logger.Error("contact request failed", zap.Error(err))
		errorResponse(c, http.StatusBadGateway, i18n.Translate(lang, "somethingWentWrong", nil))
		return
	}

	messageResponse(c, http.StatusOK, i18n.Translate(lang, "inquirySentBody", nil))
}
