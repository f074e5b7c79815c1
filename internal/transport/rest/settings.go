package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/service"
)

func (h *Handler) getSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	settings, err := h.services.Settings.Get(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

func (h *Handler) updateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	settings, err := h.services.Settings.Update(c.Request.Context(), userID, input)
	if err != nil {
		h.logger.Error("failed to update settings", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

func (h *Handler) getSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	sub, err := h.services.Settings.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load subscription", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, sub)
}

func (h *Handler) changePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input struct {
		Plan domain.SubscriptionPlan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	sub, err := h.services.Settings.ChangePlan(c.Request.Context(), userID, input.Plan)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlan) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("failed to change plan", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, sub)
}
