package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/service"
)

const maxPhotoSize = 5 << 20 // 5 MB

func (h *Handler) getSpecialists(c *gin.Context) {
	specialists, err := h.services.Specialist.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load specialists", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, specialists)
}

func (h *Handler) getMyProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	profile, err := h.services.Specialist.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			notFoundResponse(c, err.Error())
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

func (h *Handler) createProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	profile, err := h.services.Specialist.CreateProfile(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) || errors.Is(err, service.ErrUnknownCity) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("failed to create profile", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, profile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	profile, err := h.services.Specialist.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			notFoundResponse(c, err.Error())
		case errors.Is(err, service.ErrUnknownCategory), errors.Is(err, service.ErrUnknownCity):
			badRequestResponse(c, err.Error())
		default:
			h.logger.Error("failed to update profile", zap.Error(err))
			internalServerErrorResponse(c)
		}
		return
	}

	successResponse(c, http.StatusOK, profile)
}

func (h *Handler) updateServices(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input struct {
		Services []string `json:"services" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Specialist.UpdateServices(c.Request.Context(), userID, input.Services); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			notFoundResponse(c, err.Error())
			return
		}
		h.logger.Error("failed to update services", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "services updated")
}

func (h *Handler) uploadPhoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "photo file is required")
		return
	}
	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "photo is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	url, err := h.services.Specialist.UploadPhoto(c.Request.Context(), userID, data, fileHeader.Filename)
	if err != nil {
		h.logger.Error("failed to upload photo", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]string{
		"photo_url": url,
	})
}

func (h *Handler) deletePhoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Specialist.DeletePhoto(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			notFoundResponse(c, err.Error())
			return
		}
		h.logger.Error("failed to delete photo", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
