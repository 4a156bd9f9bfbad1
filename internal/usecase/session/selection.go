package session

import (
	"fmt"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
)

// SelectNumber toggles a number's membership in the selection set.
// Selecting a number already present removes it. Selecting beyond the
// mode's required count leaves the set unchanged and surfaces a warning.
func (uc *SessionUseCase) SelectNumber(numero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state.ErrorMessage = ""
	uc.state.SuccessMessage = ""

	max := uc.betting.MaxNumber()
	if numero < 1 || numero > max {
		err := domain.NewValidationError(domain.ErrCodeInvalidRange,
			fmt.Sprintf("Número deve estar entre 1 e %d", max))
		uc.state.ErrorMessage = err.Message
		return err
	}

	for i, selected := range uc.state.Selection {
		if selected == numero {
			uc.state.Selection = append(uc.state.Selection[:i], uc.state.Selection[i+1:]...)
			return nil
		}
	}

	required := uc.betting.RequiredCount()
	if len(uc.state.Selection) >= required {
		err := domain.NewValidationError(domain.ErrCodeSelectionFull,
			fmt.Sprintf("Você pode selecionar apenas %d número(s)!", required))
		uc.state.ErrorMessage = err.Message
		return err
	}

	uc.state.Selection = append(uc.state.Selection, numero)
	return nil
}

// ClearSelection empties the selection set.
func (uc *SessionUseCase) ClearSelection() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state.Selection = nil
	uc.state.ErrorMessage = ""
	uc.state.SuccessMessage = ""
}

// CanPlaceBet reports whether the current selection and balance satisfy
// every local precondition for a bet submission.
func (uc *SessionUseCase) CanPlaceBet() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.validateBetLocked() == nil
}

// validateBetLocked checks the local preconditions of a bet. Callers must
// hold uc.mu. The server is the final authority and re-validates.
func (uc *SessionUseCase) validateBetLocked() *domain.AppError {
	if uc.state.User == nil {
		return domain.NewValidationError(domain.ErrCodeNotAuthenticated, "Usuário não autenticado")
	}

	required := uc.betting.RequiredCount()
	if len(uc.state.Selection) != required {
		return domain.NewValidationError(domain.ErrCodeInvalidSelection,
			fmt.Sprintf("Você deve selecionar exatamente %d número(s)!", required))
	}

	max := uc.betting.MaxNumber()
	seen := make(map[int]bool, len(uc.state.Selection))
	for _, numero := range uc.state.Selection {
		if numero < 1 || numero > max {
			return domain.NewValidationError(domain.ErrCodeInvalidRange,
				fmt.Sprintf("Número deve estar entre 1 e %d", max))
		}
		if seen[numero] {
			return domain.NewValidationError(domain.ErrCodeInvalidSelection, "Números devem ser distintos")
		}
		seen[numero] = true
	}

	stake := uc.betting.StakeAmount()
	if !uc.state.User.HasBalanceFor(stake) {
		return domain.NewValidationError(domain.ErrCodeInsufficientBalance,
			fmt.Sprintf("Saldo insuficiente! Você precisa de R$ %s para fazer uma aposta.", stake.StringFixed(2)))
	}

	return nil
}
