package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService     service.AuthService
	incidentService service.IncidentService
	friendService   service.FriendService
	locationService service.LocationService
	chatService     service.ChatService
	cache           *service.LocationCache
	tokens          *auth.TokenManager
	logger          *logrus.Logger
	validate        *validator.Validate

	// для health-check, допускают nil в тестах
	db  *pgxpool.Pool
	rdb *redis.Client
}

type HandlerDeps struct {
	AuthService     service.AuthService
	IncidentService service.IncidentService
	FriendService   service.FriendService
	LocationService service.LocationService
	ChatService     service.ChatService
	Cache           *service.LocationCache
	Tokens          *auth.TokenManager
	Logger          *logrus.Logger
	DB              *pgxpool.Pool
	Redis           *redis.Client
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		authService:     deps.AuthService,
		incidentService: deps.IncidentService,
		friendService:   deps.FriendService,
		locationService: deps.LocationService,
		chatService:     deps.ChatService,
		cache:           deps.Cache,
		tokens:          deps.Tokens,
		logger:          deps.Logger,
		validate:        validator.New(),
		db:              deps.DB,
		rdb:             deps.Redis,
	}
}

// @Summary Get application health status
// @Description Get health status of the application, database and cache
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Failure 500 {object} map[string]string "Degraded"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	dbHealthy := h.db != nil && h.db.Ping(ctx) == nil
	redisHealthy := h.rdb != nil && h.rdb.Ping(ctx).Err() == nil

	status := http.StatusOK
	if !dbHealthy || !redisHealthy {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"status":   healthWord(dbHealthy && redisHealthy),
		"database": connWord(dbHealthy),
		"redis":    connWord(redisHealthy),
	})
}

func healthWord(ok bool) string {
	if ok {
		return "healthy"
	}
	return "unhealthy"
}

func connWord(ok bool) string {
	if ok {
		return "connected"
	}
	return "disconnected"
}

// @Summary Get location cache statistics
// @Description Get the number and list of tracked geo-cache buckets. Requires auth.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CacheStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/cache-stats [get]
func (h *Handler) cacheStats(c *gin.Context) {
	log := h.logger.WithField("method", "cacheStats")

	stats, err := h.cache.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get cache stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
