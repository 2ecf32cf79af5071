package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service"
)

// @Summary Create chat
// @Description Create a geo-anchored chat room. Requires auth.
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat body CreateChatRequest true "Chat data"
// @Success 201 {object} models.Chat
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats [post]
func (h *Handler) createChat(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "createChat").WithField("user_id", userID)

	var input CreateChatRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat := &models.Chat{
		Title:     input.Title,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
	}
	if err := h.chatService.CreateChat(c.Request.Context(), chat); err != nil {
		log.WithError(err).Error("Failed to create chat in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, chat)
}

// @Summary Get nearby chats
// @Description Get chats within the given radius of a point. Requires auth.
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in meters (default 3000)"
// @Success 200 {array} models.Chat
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats/nearby [get]
func (h *Handler) nearbyChats(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyChats")

	lat, lng, radius, ok := parseGeoQuery(c)
	if !ok {
		return
	}

	chats, err := h.chatService.NearbyChats(c.Request.Context(), lat, lng, radius)
	if err != nil {
		log.WithError(err).Error("Failed to fetch nearby chats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, chats)
}

// @Summary Get chat comments
// @Description Get comments of a chat ordered oldest first. Requires auth.
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} map[string]string "Invalid chat id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Chat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	log := h.logger.WithField("method", "listComments")

	chatID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	comments, err := h.chatService.Comments(c.Request.Context(), chatID)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		log.WithError(err).Error("Failed to fetch comments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// @Summary Add chat comment
// @Description Post a comment to a chat. Requires auth.
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat ID"
// @Param comment body CreateCommentRequest true "Comment data"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Chat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats/{id}/comments [post]
func (h *Handler) createComment(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "createComment").WithField("user_id", userID)

	chatID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	var input CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := &models.Comment{
		ChatID:  chatID,
		UserID:  userID,
		Content: input.Content,
	}
	if err := h.chatService.AddComment(c.Request.Context(), comment); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		log.WithError(err).Error("Failed to create comment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
