package session

import (
	"context"
	"strings"
	"sync"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// RefreshDashboard fans out the dashboard fetches in parallel. Each task
// updates its own slice of state on completion, so one failing fetch never
// discards data the others already loaded. Failures are aggregated into a
// single message.
func (uc *SessionUseCase) RefreshDashboard(ctx context.Context) error {
	if !uc.locks.TryLock(actionDashboard) {
		// A refresh is already running; piggyback on it.
		return nil
	}
	defer uc.locks.Unlock(actionDashboard)

	uc.mu.Lock()
	uc.state.Loading = true
	uc.mu.Unlock()

	opCtx, done := uc.track(actionDashboard, ctx)
	defer done()

	type task struct {
		name string
		run  func(context.Context) error
	}

	tasks := []task{
		{"sorteio atual", func(ctx context.Context) error {
			resp, err := uc.api.CurrentDraw(ctx)
			if err != nil {
				return err
			}
			uc.mu.Lock()
			uc.state.SorteioAtual = resp.Sorteio
			uc.state.EstatisticasSorteio = resp.Estatisticas
			uc.mu.Unlock()
			return nil
		}},
		{"apostas de hoje", func(ctx context.Context) error {
			resp, err := uc.api.TodayBets(ctx)
			if err != nil {
				return err
			}
			uc.mu.Lock()
			uc.state.ApostasHoje = resp.Apostas
			uc.mu.Unlock()
			return nil
		}},
		{"minhas apostas", func(ctx context.Context) error {
			resp, err := uc.api.MyBets(ctx, defaultPage, defaultPerPage)
			if err != nil {
				return err
			}
			uc.mu.Lock()
			uc.state.MinhasApostas = resp
			uc.mu.Unlock()
			return nil
		}},
	}

	if uc.betting.Mode == config.ModeSimples {
		tasks = append(tasks, task{"números disponíveis", func(ctx context.Context) error {
			resp, err := uc.api.AvailableNumbers(ctx)
			if err != nil {
				return err
			}
			uc.mu.Lock()
			uc.state.NumerosDisponiveis = resp.NumerosDisponiveis
			uc.mu.Unlock()
			return nil
		}})
	}

	var wg sync.WaitGroup
	var failMu sync.Mutex
	var failed []string

	for _, t := range tasks {
		wg.Add(1)
		go func(t task) {
			defer wg.Done()
			if err := t.run(opCtx); err != nil {
				uc.logger.Warn("dashboard fetch failed",
					zap.String("task", t.name),
					zap.Error(err))
				failMu.Lock()
				failed = append(failed, t.name)
				failMu.Unlock()
			}
		}(t)
	}
	wg.Wait()

	uc.mu.Lock()
	uc.state.Loading = false
	uc.mu.Unlock()

	if len(failed) > 0 {
		err := &domain.AppError{
			Kind:    domain.KindRequest,
			Code:    domain.ErrCodePartialLoad,
			Message: "Erro ao carregar dados: " + strings.Join(failed, ", "),
		}
		uc.mu.Lock()
		uc.state.ErrorMessage = err.Message
		uc.mu.Unlock()
		return err
	}
	return nil
}

// LoadHistory fetches the requested page of the user's bets and of the
// finalized draws.
func (uc *SessionUseCase) LoadHistory(ctx context.Context, page int) error {
	uc.clearMessages()

	if page < 1 {
		page = defaultPage
	}

	opCtx, done := uc.track(actionHistory, ctx)
	defer done()

	apostas, err := uc.api.MyBets(opCtx, page, defaultPerPage)
	if err != nil {
		return uc.failWith(err)
	}

	sorteios, err := uc.api.DrawHistory(opCtx, page, defaultPerPage)
	if err != nil {
		return uc.failWith(err)
	}

	uc.mu.Lock()
	uc.state.MinhasApostas = apostas
	uc.state.HistoricoSorteios = sorteios
	uc.mu.Unlock()
	return nil
}

// LoadStatistics fetches the public draw statistics.
func (uc *SessionUseCase) LoadStatistics(ctx context.Context) error {
	uc.clearMessages()

	opCtx, done := uc.track(actionStatistics, ctx)
	defer done()

	stats, err := uc.api.Statistics(opCtx)
	if err != nil {
		return uc.failWith(err)
	}

	uc.mu.Lock()
	uc.state.Estatisticas = stats
	uc.mu.Unlock()
	return nil
}
