package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/handlers"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/middleware"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/auth"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router          *gin.Engine
	sessionService  auth.SessionService
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	apostasHandler  *handlers.ApostasHandler
	sorteiosHandler *handlers.SorteiosHandler
	adminHandler    *handlers.AdminHandler
	addr            string
}

// NewServer creates a new HTTP server
func NewServer(
	sessionService auth.SessionService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	apostasHandler *handlers.ApostasHandler,
	sorteiosHandler *handlers.SorteiosHandler,
	adminHandler *handlers.AdminHandler,
	log *logger.Logger,
	addr string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(gin.Recovery())

	server := &Server{
		router:          router,
		sessionService:  sessionService,
		authHandler:     authHandler,
		userHandler:     userHandler,
		apostasHandler:  apostasHandler,
		sorteiosHandler: sorteiosHandler,
		adminHandler:    adminHandler,
		addr:            addr,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", s.authHandler.Register)
			authRoutes.POST("/login", s.authHandler.Login)
			authRoutes.POST("/logout", s.authHandler.Logout)
			authRoutes.GET("/me", middleware.SessionMiddleware(s.sessionService), s.authHandler.Me)
		}

		sorteioRoutes := api.Group("/sorteios")
		{
			sorteioRoutes.GET("/sorteio-atual", s.sorteiosHandler.Current)
			sorteioRoutes.GET("/historico", s.sorteiosHandler.History)
			sorteioRoutes.GET("/resultado/:id", s.sorteiosHandler.Result)
			sorteioRoutes.GET("/estatisticas", s.sorteiosHandler.Statistics)
		}

		protected := api.Group("/")
		protected.Use(middleware.SessionMiddleware(s.sessionService))
		{
			userRoutes := protected.Group("/user")
			{
				userRoutes.GET("/perfil", s.userHandler.Profile)
				userRoutes.PUT("/perfil", s.userHandler.UpdateProfile)
				userRoutes.PUT("/alterar-senha", s.userHandler.ChangePassword)
				userRoutes.GET("/saldo", s.userHandler.Balance)
				userRoutes.POST("/adicionar-saldo", s.userHandler.AddBalance)
				userRoutes.GET("/historico-transacoes", s.userHandler.TransactionHistory)
			}

			apostaRoutes := protected.Group("/apostas")
			{
				apostaRoutes.POST("/fazer-aposta", s.apostasHandler.PlaceBet)
				apostaRoutes.GET("/minhas-apostas", s.apostasHandler.MyBets)
				apostaRoutes.GET("/apostas-hoje", s.apostasHandler.TodayBets)
				apostaRoutes.GET("/numeros-disponiveis", s.apostasHandler.AvailableNumbers)
			}

			adminRoutes := protected.Group("/admin")
			{
				adminRoutes.POST("/executar-sorteio", s.adminHandler.TriggerDraw)
				adminRoutes.GET("/status-scheduler", s.adminHandler.SchedulerStatus)
				adminRoutes.GET("/estatisticas-admin", s.adminHandler.Statistics)
			}
		}
	}
}

// Router exposes the underlying engine, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.addr)
}
