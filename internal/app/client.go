package app

import (
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/external/lottery"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

func (a *application) InitLotteryClient(log *logger.Logger) (domain.LotteryAPI, error) {
	return lottery.NewClient(a.config.API, log)
}
