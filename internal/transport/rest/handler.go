package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intouch/config"
	"intouch/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/password", h.updatePassword)
		}

		specialists := api.Group("/specialists")
		{
			specialists.GET("/", h.getSpecialists)
			specialists.GET("/me", h.authMiddleware(), h.specialistMiddleware(), h.getMyProfile)

			me := specialists.Group("/me", h.authMiddleware(), h.specialistMiddleware())
			{
				me.POST("/", h.createProfile)
				me.PUT("/", h.updateProfile)
				me.PUT("/services", h.updateServices)
				me.POST("/photo", h.uploadPhoto)
				me.DELETE("/photo", h.deletePhoto)
			}
		}

		search := api.Group("/search")
		{
			search.POST("/", h.search)
			search.GET("/suggestions", h.suggest)

			selection := search.Group("/selection")
			{
				selection.POST("/select-all", h.selectAllVisible)
				selection.POST("/deselect-all", h.deselectAllVisible)
				selection.POST("/toggle", h.toggleRecipient)
			}
		}

		messages := api.Group("/messages")
		{
			messages.POST("/compose", h.composeMessage)
			messages.POST("/contact", h.contactSpecialist)
		}

		taxonomy := api.Group("/taxonomy")
		{
			taxonomy.GET("/categories", h.getCategories)
			taxonomy.GET("/cities", h.getCities)
		}

		api.GET("/translations", h.getTranslations)

		settings := api.Group("/settings")
		settings.Use(h.authMiddleware())
		{
			settings.GET("/", h.getSettings)
			settings.PUT("/", h.updateSettings)
			settings.GET("/subscription", h.getSubscription)
			settings.PUT("/subscription", h.changePlan)
		}
	}
}
