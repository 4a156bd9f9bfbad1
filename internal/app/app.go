package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
)

// Application provides application level setup
type Application interface {
	Setup()
	SetupSimulator()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Sistema de Bilhetes...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitActionLockManager,
			a.InitLotteryClient,
			a.InitSessionUseCase,
			a.InitTerminal,
		),
		fx.Invoke(a.RunTerminal),
	)

	app.Run()
}
