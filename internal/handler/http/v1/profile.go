package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/location_sharing_system/internal/service"
)

// @Summary Get friends list
// @Description Get the caller's friends with their last known locations. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FriendLocation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/friends [get]
func (h *Handler) listFriends(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "listFriends").WithField("user_id", userID)

	friends, err := h.friendService.Friends(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}
	c.JSON(http.StatusOK, friends)
}

// @Summary Get friend requests
// @Description Get pending received and sent friend requests. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FriendRequests
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/requests [get]
func (h *Handler) listFriendRequests(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "listFriendRequests").WithField("user_id", userID)

	requests, err := h.friendService.Requests(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friend requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary Send friend request
// @Description Send a friend request to a user by email. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendFriendRequestRequest true "Friend request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation error, self request or duplicate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/send-request [post]
func (h *Handler) sendFriendRequest(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "sendFriendRequest").WithField("user_id", userID)

	var input SendFriendRequestRequest
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

	err := h.friendService.SendRequest(c.Request.Context(), userID, input.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Friend request sent successfully"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, service.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot send friend request to yourself"})
	case errors.Is(err, service.ErrAlreadyFriends):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You are already friends with this user"})
	case errors.Is(err, service.ErrDuplicateRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already sent a friend request to this user"})
	default:
		log.WithError(err).Error("Failed to send friend request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Respond to friend request
// @Description Accept or reject a pending friend request. Accept is atomic. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param response body RespondFriendRequestRequest true "Response"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/respond-request [post]
func (h *Handler) respondFriendRequest(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "respondFriendRequest").WithField("user_id", userID)

	var input RespondFriendRequestRequest
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

	accept := input.Action == "accept"
	err := h.friendService.RespondRequest(c.Request.Context(), userID, input.RequestID, accept)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Friend request not found"})
			return
		}
		log.WithError(err).Error("Failed to respond to friend request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request " + input.Action + "ed successfully"})
}

// @Summary Toggle location sharing
// @Description Enable or disable location sharing for the caller. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param toggle body LocationToggleRequest true "Toggle request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/location-toggle [post]
func (h *Handler) toggleLocation(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "toggleLocation").WithField("user_id", userID)

	var input LocationToggleRequest
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

	if err := h.locationService.SetLocationEnabled(c.Request.Context(), userID, *input.Enabled); err != nil {
		log.WithError(err).Error("Failed to toggle location sharing in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Get location sharing status
// @Description Get the caller's location sharing flag. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/location-status [get]
func (h *Handler) locationStatus(c *gin.Context) {
	userID, _ := principalFromContext(c)
	log := h.logger.WithField("method", "locationStatus").WithField("user_id", userID)

	enabled, err := h.locationService.LocationEnabled(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch location sharing state from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_location_enabled": enabled})
}

// @Summary Update location over HTTP
// @Description HTTP fallback for the socket update-location event. Requires auth.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationUpdateRequest true "Location update"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation error or sharing disabled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/location-update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	userID, email := principalFromContext(c)
	log := h.logger.WithField("method", "updateLocation").WithField("user_id", userID)

	var input LocationUpdateRequest
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

	err := h.locationService.UpdateLocation(c.Request.Context(), userID, email, *input.Latitude, *input.Longitude)
	if err != nil {
		if errors.Is(err, service.ErrLocationDisabled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location sharing is disabled"})
			return
		}
		log.WithError(err).Error("Failed to update location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
