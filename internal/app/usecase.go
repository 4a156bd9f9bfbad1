package app

import (
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/lock"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/usecase/session"
)

func (a *application) InitSessionUseCase(
	api domain.LotteryAPI,
	log *logger.Logger,
	locks *lock.ActionLockManager,
) domain.SessionUseCase {
	return session.NewSessionUseCase(api, a.config, log, locks)
}
