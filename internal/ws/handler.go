package ws

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LocationService определяет контракт ретрансляции локаций, нужный socket-слою
type LocationService interface {
	UpdateLocation(ctx context.Context, userID int64, email string, lat, lng float64) error
	FriendLocations(ctx context.Context, userID int64) ([]*models.FriendLocation, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler принимает socket-соединения: аутентифицирует рукопожатие,
// регистрирует клиента в Hub и диспетчеризует входящие события.
type Handler struct {
	hub       *Hub
	tokens    *auth.TokenManager
	locations LocationService
	logger    *logrus.Logger
}

func NewHandler(hub *Hub, tokens *auth.TokenManager, locations LocationService, logger *logrus.Logger) *Handler {
	return &Handler{
		hub:       hub,
		tokens:    tokens,
		locations: locations,
		logger:    logger,
	}
}

// Serve - gin-хендлер socket-эндпоинта. Токен принимается в query-параметре
// или в заголовке Authorization; без валидного токена соединение закрывается
// сразу, до какой-либо обработки.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if token == "" {
		h.logger.Warn("No token provided for socket connection")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	claims, err := h.tokens.VerifyToken(token)
	if err != nil {
		h.logger.WithError(err).Warn("Socket authentication failed")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade socket connection")
		return
	}

	client := newClient(h.hub, conn, claims.UserID, claims.Email, h.logger)
	h.hub.Register(client)

	client.logger.WithField("email", claims.Email).Info("Socket authenticated")

	go client.writePump()
	client.readPump(h.handleMessage)
}

// handleMessage декодирует конверт и выполняет событие. Любая ошибка
// обработки уходит событием error только отправителю и никогда не роняет хаб.
func (h *Handler) handleMessage(c *Client, raw []byte) {
	var env Envelope
	if err := decodeEnvelope(raw, &env); err != nil {
		c.logger.WithError(err).Warn("Failed to decode socket envelope")
		c.sendError("Invalid message format")
		return
	}

	ctx := context.Background()

	switch env.Event {
	case EventGetFriendLocations:
		locations, err := h.locations.FriendLocations(ctx, c.userID)
		if err != nil {
			c.logger.WithError(err).Error("Failed to fetch friend locations")
			c.sendError("Failed to fetch friend locations")
			return
		}
		c.sendEvent(EventFriendLocations, locations)

	case EventUpdateLocation:
		payload, err := DecodeUpdateLocation(env.Data)
		if err != nil {
			c.logger.WithError(err).Warn("Invalid update-location payload")
			c.sendError("Invalid location payload")
			return
		}
		if err := h.locations.UpdateLocation(ctx, c.userID, c.email, *payload.Latitude, *payload.Longitude); err != nil {
			c.logger.WithError(err).Error("Failed to update location")
			c.sendError("Failed to update location")
			return
		}

	default:
		c.logger.WithField("event", env.Event).Warn("Unknown socket event")
		c.sendError("Unknown event: " + env.Event)
	}
}
