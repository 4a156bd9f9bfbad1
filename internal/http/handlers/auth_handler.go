package handlers

import (
	"net/http"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/middleware"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/auth"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and session restoration.
type AuthHandler struct {
	store          *simulator.Store
	sessionService auth.SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *simulator.Store, sessionService auth.SessionService) *AuthHandler {
	return &AuthHandler{
		store:          store,
		sessionService: sessionService,
	}
}

// Register creates an account and opens a session for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados incompletos"})
		return
	}

	user, err := h.store.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, domain.AuthResponse{
		Message: "Usuário registrado com sucesso",
		User:    user,
	})
}

// Login authenticates the user and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email e senha são obrigatórios"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email e senha são obrigatórios"})
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.AuthResponse{
		Message: "Login realizado com sucesso",
		User:    user,
	})
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

// Me returns the user owning the session.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.AuthResponse{User: user})
}

func (h *AuthHandler) openSession(c *gin.Context, userID int) error {
	token, err := h.sessionService.GenerateToken(userID)
	if err != nil {
		return err
	}
	c.SetCookie(auth.SessionCookieName, token, int(h.sessionService.Expiry().Seconds()), "/", "", false, true)
	return nil
}
