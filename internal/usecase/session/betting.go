package session

import (
	"context"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlaceBet submits the current selection as a wager. Local preconditions
// are checked first; when any fails, no network call is made. A second
// trigger while one submission is outstanding is rejected. On failure the
// selection stays intact so the user can retry.
func (uc *SessionUseCase) PlaceBet(ctx context.Context) error {
	uc.clearMessages()

	uc.mu.Lock()
	if err := uc.validateBetLocked(); err != nil {
		uc.state.ErrorMessage = err.Message
		uc.mu.Unlock()
		return err
	}
	numeros := append([]int(nil), uc.state.Selection...)
	usuario := uc.state.User.Nome
	var sorteioData string
	if uc.state.SorteioAtual != nil {
		sorteioData = uc.state.SorteioAtual.DataSorteio
	}
	uc.mu.Unlock()

	if !uc.locks.TryLock(actionPlaceBet) {
		return uc.failWith(inFlightError())
	}
	defer uc.locks.Unlock(actionPlaceBet)

	opCtx, done := uc.track(actionPlaceBet, ctx)
	defer done()

	resp, err := uc.api.PlaceBet(opCtx, numeros)
	if err != nil {
		return uc.failWith(err)
	}

	comprovante := resp.Comprovante
	if comprovante == nil && resp.Aposta != nil {
		comprovante = &domain.Comprovante{
			ID:          resp.Aposta.ID,
			Data:        resp.Aposta.DataCriacao,
			Usuario:     usuario,
			Numeros:     resp.Aposta.NumerosEscolhidos,
			Valor:       "R$ " + resp.Aposta.ValorAposta.StringFixed(2),
			SorteioData: sorteioData,
		}
	}

	// Balance shown after a bet is always the freshly refetched server
	// value, never a local recomputation.
	user, userErr := uc.api.CurrentUser(opCtx)

	uc.mu.Lock()
	uc.state.Comprovante = comprovante
	uc.state.Selection = nil
	if userErr == nil {
		uc.state.User = user
	} else if uc.state.User != nil {
		uc.state.User.Saldo = resp.SaldoRestante
		uc.logger.Warn("user refetch after bet failed, using saldo_restante", zap.Error(userErr))
	}
	uc.state.Screen = domain.ScreenReceipt
	if resp.Message != "" {
		uc.state.SuccessMessage = resp.Message
	} else {
		uc.state.SuccessMessage = "Aposta realizada com sucesso"
	}
	uc.mu.Unlock()

	_ = uc.RefreshDashboard(ctx)
	return nil
}

// AddBalance credits the account. The amount must be positive; the new
// balance is always refetched from the server.
func (uc *SessionUseCase) AddBalance(ctx context.Context, valor decimal.Decimal) error {
	uc.clearMessages()

	uc.mu.Lock()
	authenticated := uc.state.User != nil
	uc.mu.Unlock()

	if !authenticated {
		return uc.failWith(domain.NewValidationError(domain.ErrCodeNotAuthenticated, "Usuário não autenticado"))
	}
	if !valor.IsPositive() {
		return uc.failWith(domain.NewValidationError(domain.ErrCodeInvalidAmount, "Valor deve ser maior que zero"))
	}

	if !uc.locks.TryLock(actionAddBalance) {
		return uc.failWith(inFlightError())
	}
	defer uc.locks.Unlock(actionAddBalance)

	opCtx, done := uc.track(actionAddBalance, ctx)
	defer done()

	resp, err := uc.api.AddBalance(opCtx, valor)
	if err != nil {
		return uc.failWith(err)
	}

	user, userErr := uc.api.CurrentUser(opCtx)

	uc.mu.Lock()
	if userErr == nil {
		uc.state.User = user
	} else if uc.state.User != nil {
		uc.state.User.Saldo = resp.Saldo
	}
	if resp.Message != "" {
		uc.state.SuccessMessage = resp.Message
	} else {
		uc.state.SuccessMessage = "Saldo adicionado com sucesso!"
	}
	uc.mu.Unlock()

	return nil
}
