package handlers

import (
	"net/http"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/middleware"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserHandler handles profile and balance operations.
type UserHandler struct {
	store *simulator.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store *simulator.Store) *UserHandler {
	return &UserHandler{store: store}
}

// Profile returns the user's profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.AuthResponse{User: user})
}

// UpdateProfile changes name and phone.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	user, err := h.store.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.AuthResponse{
		Message: "Perfil atualizado com sucesso",
		User:    user,
	})
}

// ChangePassword replaces the user's password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if err := h.store.ChangePassword(middleware.UserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso"})
}

// Balance returns the current balance.
func (h *UserHandler) Balance(c *gin.Context) {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saldo": user.Saldo})
}

// AddBalanceRequest is the add-balance request body.
type AddBalanceRequest struct {
	Valor decimal.Decimal `json:"valor"`
}

// AddBalance credits the user's account.
func (h *UserHandler) AddBalance(c *gin.Context) {
	var req AddBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor é obrigatório"})
		return
	}

	saldo, err := h.store.AddBalance(middleware.UserID(c), req.Valor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.AddBalanceResponse{
		Message: "Saldo adicionado com sucesso",
		Saldo:   saldo,
	})
}

// TransactionHistory pages through the user's ledger.
func (h *UserHandler) TransactionHistory(c *gin.Context) {
	page, perPage := pagination(c, 20)

	historico, err := h.store.Transactions(middleware.UserID(c), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, historico)
}
