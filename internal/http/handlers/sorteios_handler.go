package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
)

// SorteiosHandler handles draw queries. These endpoints are public.
type SorteiosHandler struct {
	store *simulator.Store
}

// NewSorteiosHandler creates a new draws handler
func NewSorteiosHandler(store *simulator.Store) *SorteiosHandler {
	return &SorteiosHandler{store: store}
}

// Current returns today's draw and its aggregates.
func (h *SorteiosHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.CurrentDraw())
}

// History pages through finalized draws.
func (h *SorteiosHandler) History(c *gin.Context) {
	page, perPage := pagination(c, 10)
	c.JSON(http.StatusOK, h.store.DrawHistory(page, perPage))
}

// Result returns the detailed outcome of one draw.
func (h *SorteiosHandler) Result(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sorteio inválido"})
		return
	}

	resultado, err := h.store.DrawResult(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resultado": resultado})
}

// Statistics returns lifetime draw statistics.
func (h *SorteiosHandler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Statistics())
}
