package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseGeoQuery разбирает обязательные query-параметры lat/lng/radius
func parseGeoQuery(c *gin.Context) (lat, lng, radius float64, ok bool) {
	var err error
	lat, err = strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return 0, 0, 0, false
	}
	lng, err = strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return 0, 0, 0, false
	}
	radius, err = strconv.ParseFloat(c.DefaultQuery("radius", "3000"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
		return 0, 0, 0, false
	}
	return lat, lng, radius, true
}

// @Summary Create a new incident
// @Description Create a new incident and broadcast it to all connected clients. Requires auth.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

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

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get all incidents, newest first
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get nearby incidents
// @Description Get incidents within a radius of a point, served through the geo-cache
// @Tags Incidents
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters" default(3000)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	lat, lng, radius, ok := parseGeoQuery(c)
	if !ok {
		return
	}

	incidents, err := h.incidentService.NearbyIncidents(c.Request.Context(), lat, lng, radius)
	if err != nil {
		log.WithError(err).Error("Failed to fetch nearby incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby incidents"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Refresh nearby incidents
// @Description Bust the cache bucket for a point and return a fresh list
// @Tags Incidents
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters" default(3000)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby/refresh [post]
func (h *Handler) refreshNearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "refreshNearbyIncidents")

	lat, lng, radius, ok := parseGeoQuery(c)
	if !ok {
		return
	}

	incidents, err := h.incidentService.RefreshNearbyIncidents(c.Request.Context(), lat, lng, radius)
	if err != nil {
		log.WithError(err).Error("Failed to refresh nearby incidents in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby incidents"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}
