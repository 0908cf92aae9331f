package wager

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/21javi21/corderos-app/logging"
)

// WagerRequest is the payload for creating or editing a wager. A missing
// multiplier counts as 1; an explicit one must be positive.
type WagerRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Multiplier  float64 `json:"multiplier" binding:"omitempty,gt=0"`
	Bettor1     string  `json:"bettor1"`
	Bettor2     string  `json:"bettor2"`
	Bettor3     string  `json:"bettor3"`
	Stake1      string  `json:"stake1"`
	Stake2      string  `json:"stake2"`
	Stake3      string  `json:"stake3"`
	Winner      string  `json:"winner"`
	Loser       string  `json:"loser"`
	Locked      bool    `json:"locked"`
}

func (req *WagerRequest) toModel() *Wager {
	multiplier := req.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	return &Wager{
		Description: req.Description,
		Category:    req.Category,
		Kind:        req.Type,
		Multiplier:  multiplier,
		Bettor1:     req.Bettor1,
		Bettor2:     req.Bettor2,
		Bettor3:     req.Bettor3,
		Stake1:      req.Stake1,
		Stake2:      req.Stake2,
		Stake3:      req.Stake3,
		Winner:      req.Winner,
		Loser:       req.Loser,
		Locked:      req.Locked,
	}
}

// Handler serves the apuestas endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler builds a handler over the repository.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes mounts the wager endpoints under the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/wagers")
	{
		group.POST("", h.create)
		group.GET("", h.list)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.remove)
	}
}

// create godoc
// @Summary Record a wager
// @Tags wagers
// @Accept json
// @Produce json
// @Param request body wager.WagerRequest true "Wager to record"
// @Success 201 {object} wager.Wager
// @Failure 400 {object} map[string]string
// @Router /api/wagers [post]
func (h *Handler) create(c *gin.Context) {
	var req WagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	w := req.toModel()
	if err := h.repo.Create(w); err != nil {
		h.fail(c, err)
		return
	}
	logging.Log.Infof("wager %d recorded: %s", w.ID, w.Description)
	c.JSON(http.StatusCreated, w)
}

// list godoc
// @Summary List wagers
// @Description Every wager in the ledger, newest first.
// @Tags wagers
// @Produce json
// @Success 200 {array} wager.Wager
// @Router /api/wagers [get]
func (h *Handler) list(c *gin.Context) {
	wagers, err := h.repo.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wagers)
}

// get godoc
// @Summary Fetch one wager
// @Tags wagers
// @Produce json
// @Param id path int true "Wager id"
// @Success 200 {object} wager.Wager
// @Failure 404 {object} map[string]string
// @Router /api/wagers/{id} [get]
func (h *Handler) get(c *gin.Context) {
	id, ok := h.wagerID(c)
	if !ok {
		return
	}
	w, err := h.repo.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// update godoc
// @Summary Edit a wager
// @Description Replace the wager terms. Locked wagers reject edits.
// @Tags wagers
// @Accept json
// @Produce json
// @Param id path int true "Wager id"
// @Param request body wager.WagerRequest true "New wager terms"
// @Success 200 {object} wager.Wager
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/wagers/{id} [put]
func (h *Handler) update(c *gin.Context) {
	id, ok := h.wagerID(c)
	if !ok {
		return
	}
	var req WagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	w, err := h.repo.Update(id, req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// remove godoc
// @Summary Delete a wager
// @Tags wagers
// @Param id path int true "Wager id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/wagers/{id} [delete]
func (h *Handler) remove(c *gin.Context) {
	id, ok := h.wagerID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) wagerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wager id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logging.Log.Errorf("wager request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
