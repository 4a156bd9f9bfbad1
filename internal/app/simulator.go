package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	httpserver "github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/http/handlers"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/auth"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
)

// SetupSimulator creates a new fx application running the development
// backend simulator.
func (a *application) SetupSimulator() {
	fmt.Println("[x] Starting Sistema de Bilhetes Simulator...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitStore,
			a.InitSessionService,
			a.InitAuthHandler,
			a.InitUserHandler,
			a.InitApostasHandler,
			a.InitSorteiosHandler,
			a.InitAdminHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RunHTTPServer),
	)

	app.Run()
}

func (a *application) InitStore() *simulator.Store {
	return simulator.NewStore(a.config.Betting)
}

func (a *application) InitSessionService() auth.SessionService {
	return auth.NewSessionService(&a.config.Simulator)
}

func (a *application) InitAuthHandler(store *simulator.Store, sessionService auth.SessionService) *handlers.AuthHandler {
	return handlers.NewAuthHandler(store, sessionService)
}

func (a *application) InitUserHandler(store *simulator.Store) *handlers.UserHandler {
	return handlers.NewUserHandler(store)
}

func (a *application) InitApostasHandler(store *simulator.Store) *handlers.ApostasHandler {
	return handlers.NewApostasHandler(store)
}

func (a *application) InitSorteiosHandler(store *simulator.Store) *handlers.SorteiosHandler {
	return handlers.NewSorteiosHandler(store)
}

func (a *application) InitAdminHandler(store *simulator.Store) *handlers.AdminHandler {
	return handlers.NewAdminHandler(store)
}

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	sessionService auth.SessionService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	apostasHandler *handlers.ApostasHandler,
	sorteiosHandler *handlers.SorteiosHandler,
	adminHandler *handlers.AdminHandler,
	log *logger.Logger,
) *httpserver.Server {
	addr := a.config.GetServerAddress()
	if a.config.Simulator.Port == "" {
		addr = ":5000" // default port
	}

	return httpserver.NewServer(sessionService, authHandler, userHandler, apostasHandler, sorteiosHandler, adminHandler, log, addr)
}

// RunHTTPServer starts the server inside the fx lifecycle.
func (a *application) RunHTTPServer(lc fx.Lifecycle, server *httpserver.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.WithError(err).Fatal("http server stopped")
				}
			}()
			return nil
		},
	})
}
