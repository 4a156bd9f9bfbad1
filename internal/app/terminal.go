package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/cli"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

func (a *application) InitTerminal(session domain.SessionUseCase) *cli.Terminal {
	return cli.NewTerminal(session, a.config, os.Stdin, os.Stdout)
}

// RunTerminal drives the terminal loop and shuts the application down
// when the user leaves.
func (a *application) RunTerminal(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	terminal *cli.Terminal,
	log *logger.Logger,
) {
	runCtx, cancel := context.WithCancel(a.ctx)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := terminal.Run(runCtx); err != nil {
					log.WithError(err).Error("terminal loop ended with error")
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}
