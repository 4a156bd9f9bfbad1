package handlers

import (
	"net/http"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/middleware"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the administrative endpoints.
type AdminHandler struct {
	store *simulator.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *simulator.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// requireAdmin aborts with 403 unless the session user is administrator.
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	if !h.store.IsAdmin(middleware.UserID(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acesso negado - Apenas administradores"})
		return false
	}
	return true
}

// triggerDrawRequest optionally names the draw date.
type triggerDrawRequest struct {
	DataSorteio string `json:"data_sorteio"`
}

// TriggerDraw resolves a draw manually.
func (h *AdminHandler) TriggerDraw(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req triggerDrawRequest
	// An empty body means "draw today".
	_ = c.ShouldBindJSON(&req)

	if err := h.store.TriggerDraw(req.DataSorteio); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sorteio executado com sucesso"})
}

// SchedulerStatus reports the draw scheduler state.
func (h *AdminHandler) SchedulerStatus(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.SchedulerStatus())
}

// Statistics returns backend-wide aggregates.
func (h *AdminHandler) Statistics(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.AdminStatistics())
}
