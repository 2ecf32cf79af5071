package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authRequired := AuthMiddleware(h.tokens, h.logger)

	// Публичные маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/verify", authRequired, h.verifyToken)
	}

	// Маршруты инцидентов: чтение публичное, создание требует токен
	incidents := api.Group("/incidents")
	{
		incidents.POST("", authRequired, h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.POST("/nearby/refresh", authRequired, h.refreshNearbyIncidents)
	}

	// Маршруты профиля и друзей
	profile := api.Group("/profile", authRequired)
	{
		profile.GET("/friends", h.listFriends)
		profile.GET("/requests", h.listFriendRequests)
		profile.POST("/send-request", h.sendFriendRequest)
		profile.POST("/respond-request", h.respondFriendRequest)
		profile.POST("/location-toggle", h.toggleLocation)
		profile.GET("/location-status", h.locationStatus)
		profile.POST("/location-update", h.updateLocation)
	}

	// Маршруты гео-чатов
	chats := api.Group("/chats", authRequired)
	{
		chats.POST("", h.createChat)
		chats.GET("/nearby", h.nearbyChats)
		chats.GET("/:id/comments", h.listComments)
		chats.POST("/:id/comments", h.createComment)
	}

	// Системные маршруты
	api.GET("/system/health", h.healthCheck)
	api.GET("/system/cache-stats", authRequired, h.cacheStats)
}
