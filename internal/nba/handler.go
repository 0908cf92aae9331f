package nba

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the NBA tracker endpoint.
type Handler struct {
	service *Service
}

// NewHandler builds a handler over the tracker service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the tracker under the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/nba/tracker", h.tracker)
}

// tracker godoc
// @Summary NBA tracker
// @Description Top teams by net rating plus the MVP and ROY ladders.
// @Tags nba
// @Produce json
// @Success 200 {object} nba.TrackerResponse
// @Router /api/nba/tracker [get]
func (h *Handler) tracker(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tracker(c.Request.Context()))
}
