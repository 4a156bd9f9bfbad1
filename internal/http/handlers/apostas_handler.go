package handlers

import (
	"net/http"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/middleware"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
)

// ApostasHandler handles bet placement and listing.
type ApostasHandler struct {
	store *simulator.Store
}

// NewApostasHandler creates a new betting handler
func NewApostasHandler(store *simulator.Store) *ApostasHandler {
	return &ApostasHandler{store: store}
}

// placeBetRequest accepts both wire variants: the single-number mode sends
// a scalar `numero`, the two-number mode sends a `numeros` array.
type placeBetRequest struct {
	Numero  *int  `json:"numero"`
	Numeros []int `json:"numeros"`
}

func (r *placeBetRequest) chosen() []int {
	if len(r.Numeros) > 0 {
		return r.Numeros
	}
	if r.Numero != nil {
		return []int{*r.Numero}
	}
	return nil
}

// PlaceBet records a new wager on the current draw.
func (h *ApostasHandler) PlaceBet(c *gin.Context) {
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número da aposta é obrigatório"})
		return
	}

	numeros := req.chosen()
	if len(numeros) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número da aposta é obrigatório"})
		return
	}

	resp, err := h.store.PlaceBet(middleware.UserID(c), numeros)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MyBets pages through the user's bets.
func (h *ApostasHandler) MyBets(c *gin.Context) {
	page, perPage := pagination(c, 10)

	resp, err := h.store.MyBets(middleware.UserID(c), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TodayBets lists the user's bets on the current draw.
func (h *ApostasHandler) TodayBets(c *gin.Context) {
	resp, err := h.store.TodayBets(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AvailableNumbers lists the numbers still open to the user.
func (h *ApostasHandler) AvailableNumbers(c *gin.Context) {
	resp, err := h.store.AvailableNumbers(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
