package villain

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/21javi21/corderos-app/internal/frame"
	"github.com/21javi21/corderos-app/logging"
)

// CreateVillainRequest is the payload for registering a villain. An empty
// frameType picks the default frame.
type CreateVillainRequest struct {
	Name      string `json:"name" binding:"required"`
	Image     string `json:"image" binding:"required"`
	FrameType string `json:"frameType"`
}

// UpdateVillainRequest replaces the editable fields of a villain.
type UpdateVillainRequest struct {
	Name      string `json:"name" binding:"required"`
	Image     string `json:"image" binding:"required"`
	FrameType string `json:"frameType"`
}

// RateRequest is one user's score for a villain. Score is validated by
// the registry so an out-of-range value reports the scale, not a generic
// binding failure.
type RateRequest struct {
	Rater string `json:"rater" binding:"required"`
	Score int    `json:"score"`
}

// StandingResponse is one gallery card: a villain plus its aggregate.
// Average is null until the first rating lands.
type StandingResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	FrameType string   `json:"frameType"`
	Average   *float64 `json:"average"`
	Count     int64    `json:"count"`
}

// AggregateResponse reports the mean score of one villain. Average is
// null when nobody has rated yet.
type AggregateResponse struct {
	VillainID uint     `json:"villainId"`
	Average   *float64 `json:"average"`
	Count     int64    `json:"count"`
}

// StyleResponse carries the resolved CSS custom properties for a
// villain's frame, ready to inline on the gallery card.
type StyleResponse struct {
	FrameType string            `json:"frameType"`
	Style     map[string]string `json:"style"`
}

// Handler serves the hall-of-hate endpoints.
type Handler struct {
	registry *Registry
	frames   frame.Library
}

// NewHandler builds a handler over the registry and the frame library
// loaded at startup.
func NewHandler(registry *Registry, frames frame.Library) *Handler {
	return &Handler{registry: registry, frames: frames}
}

// RegisterRoutes mounts the villain endpoints under the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/villains")
	{
		group.POST("", h.create)
		group.GET("", h.list)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.remove)
		group.POST("/:id/ratings", h.rate)
		group.GET("/:id/score", h.score)
		group.GET("/:id/style", h.style)
	}
	// The gallery paints every card client-side, so it gets the whole
	// frame library up front instead of one style call per villain.
	api.GET("/frames", h.listFrames)
}

// create godoc
// @Summary Register a villain
// @Description Add a villain to the hall of hate. Names are unique.
// @Tags villains
// @Accept json
// @Produce json
// @Param request body villain.CreateVillainRequest true "Villain to register"
// @Success 201 {object} villain.Villain
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/villains [post]
func (h *Handler) create(c *gin.Context) {
	var req CreateVillainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	v, err := h.registry.Create(req.Name, req.Image, req.FrameType)
	if err != nil {
		h.fail(c, err)
		return
	}
	logging.Log.Infof("villain %q registered with frame %q", v.Name, v.FrameType)
	c.JSON(http.StatusCreated, v)
}

// list godoc
// @Summary List the hall of hate
// @Description Every villain with its mean score, most hated first.
// @Tags villains
// @Produce json
// @Success 200 {array} villain.StandingResponse
// @Router /api/villains [get]
func (h *Handler) list(c *gin.Context) {
	standings, err := h.registry.Standings()
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]StandingResponse, 0, len(standings))
	for _, s := range standings {
		card := StandingResponse{
			ID:        s.ID,
			Name:      s.Name,
			Image:     s.Image,
			FrameType: s.FrameType,
			Count:     s.RatingCount,
		}
		if s.Average.Valid {
			avg := s.Average.Float64
			card.Average = &avg
		}
		out = append(out, card)
	}
	c.JSON(http.StatusOK, out)
}

// get godoc
// @Summary Fetch one villain
// @Tags villains
// @Produce json
// @Param id path int true "Villain id"
// @Success 200 {object} villain.Villain
// @Failure 404 {object} map[string]string
// @Router /api/villains/{id} [get]
func (h *Handler) get(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	v, err := h.registry.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// update godoc
// @Summary Edit a villain
// @Description Replace name, image and frame. Ratings are kept.
// @Tags villains
// @Accept json
// @Produce json
// @Param id path int true "Villain id"
// @Param request body villain.UpdateVillainRequest true "New villain fields"
// @Success 200 {object} villain.Villain
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/villains/{id} [put]
func (h *Handler) update(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	var req UpdateVillainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	v, err := h.registry.Update(id, req.Name, req.Image, req.FrameType)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// remove godoc
// @Summary Delete a villain
// @Description Remove a villain and every rating it received.
// @Tags villains
// @Param id path int true "Villain id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/villains/{id} [delete]
func (h *Handler) remove(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	if err := h.registry.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	logging.Log.Infof("villain %d deleted", id)
	c.Status(http.StatusNoContent)
}

// rate godoc
// @Summary Rate a villain
// @Description Record a 1-99 score. Rating twice overwrites the first.
// @Tags villains
// @Accept json
// @Produce json
// @Param id path int true "Villain id"
// @Param request body villain.RateRequest true "Rater and score"
// @Success 200 {object} villain.Rating
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/villains/{id}/ratings [post]
func (h *Handler) rate(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	rating, err := h.registry.Rate(id, req.Rater, req.Score)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// score godoc
// @Summary Aggregate score of a villain
// @Description Mean of all ratings; average is null with no ratings yet.
// @Tags villains
// @Produce json
// @Param id path int true "Villain id"
// @Success 200 {object} villain.AggregateResponse
// @Failure 404 {object} map[string]string
// @Router /api/villains/{id}/score [get]
func (h *Handler) score(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	agg, err := h.registry.AggregateScore(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := AggregateResponse{VillainID: agg.VillainID, Count: agg.Count}
	if agg.HasRatings() {
		avg := agg.Average
		resp.Average = &avg
	}
	c.JSON(http.StatusOK, resp)
}

// style godoc
// @Summary Frame style of a villain
// @Description CSS custom properties for the villain's card frame.
// @Tags villains
// @Produce json
// @Param id path int true "Villain id"
// @Success 200 {object} villain.StyleResponse
// @Failure 404 {object} map[string]string
// @Router /api/villains/{id}/style [get]
func (h *Handler) style(c *gin.Context) {
	id, ok := h.villainID(c)
	if !ok {
		return
	}
	v, err := h.registry.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, StyleResponse{
		FrameType: v.FrameType,
		Style:     frame.Resolve(h.frames, v.FrameType),
	})
}

// listFrames godoc
// @Summary Frame library
// @Description Every configured frame style, as loaded at startup.
// @Tags villains
// @Produce json
// @Success 200 {object} frame.Library
// @Router /api/frames [get]
func (h *Handler) listFrames(c *gin.Context) {
	c.JSON(http.StatusOK, h.frames)
}

func (h *Handler) villainID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid villain id"})
		return 0, false
	}
	return uint(id), true
}

// fail maps registry errors onto HTTP statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logging.Log.Errorf("villain request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
