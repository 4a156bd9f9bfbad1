package session

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
)

func setupAuthenticated(uc *SessionUseCase, saldo float64, selection ...int) {
	uc.mu.Lock()
	uc.state.User = testUser(saldo)
	uc.state.Screen = domain.ScreenHome
	uc.state.Selection = selection
	uc.state.SorteioAtual = &domain.Sorteio{ID: 1, DataSorteio: "2025-06-01", Status: domain.SorteioAberto}
	uc.mu.Unlock()
}

func TestPlaceBetSuccess(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10, 7, 23)

	resp := &domain.PlaceBetResponse{
		Message: "Aposta realizada com sucesso",
		Aposta: &domain.Aposta{
			ID:                42,
			SorteioID:         1,
			NumerosEscolhidos: []int{7, 23},
			ValorAposta:       decimal.NewFromFloat(2.0),
			Status:            domain.ApostaAtiva,
			DataCriacao:       "01/06/2025 12:00",
		},
		SaldoRestante: decimal.NewFromFloat(8.0),
	}

	api.EXPECT().PlaceBet(gomock.Any(), []int{7, 23}).Return(resp, nil)
	api.EXPECT().CurrentUser(gomock.Any()).Return(testUser(8.0), nil)
	expectDashboard(api)

	err := uc.PlaceBet(context.Background())
	assert.NoError(t, err)

	state := uc.State()
	assert.Equal(t, domain.ScreenReceipt, state.Screen)
	assert.Empty(t, state.Selection)
	assert.NotNil(t, state.Comprovante)
	assert.Equal(t, 42, state.Comprovante.ID)
	assert.Equal(t, []int{7, 23}, state.Comprovante.Numeros)
	assert.Equal(t, "Maria Silva", state.Comprovante.Usuario)
	assert.True(t, state.User.Saldo.Equal(decimal.NewFromFloat(8.0)))
	assert.Equal(t, "Aposta realizada com sucesso", state.SuccessMessage)
}

func TestPlaceBetServerRejection(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10, 7, 23)

	api.EXPECT().
		PlaceBet(gomock.Any(), []int{7, 23}).
		Return(nil, domain.NewRequestError("Você já apostou nestes números hoje", 400))

	err := uc.PlaceBet(context.Background())
	assert.Error(t, err)

	// The selection survives a rejected submission so the user can retry.
	state := uc.State()
	assert.Equal(t, []int{7, 23}, state.Selection)
	assert.Equal(t, domain.ScreenHome, state.Screen)
	assert.Nil(t, state.Comprovante)
	assert.Equal(t, "Você já apostou nestes números hoje", state.ErrorMessage)
}

func TestPlaceBetInsufficientBalanceSkipsNetwork(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 1.50, 7, 23)

	err := uc.PlaceBet(context.Background())
	assert.Error(t, err)

	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeInsufficientBalance, appErr.Code)
	assert.Equal(t, "Saldo insuficiente! Você precisa de R$ 2.00 para fazer uma aposta.", appErr.Message)
}

func TestPlaceBetIncompleteSelection(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10, 7)

	err := uc.PlaceBet(context.Background())
	assert.Error(t, err)

	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeInvalidSelection, appErr.Code)
	assert.False(t, uc.CanPlaceBet())
}

func TestPlaceBetWhileInFlight(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10, 7, 23)

	// Simulate an outstanding submission holding the action lock.
	assert.True(t, uc.locks.TryLock(actionPlaceBet))
	defer uc.locks.Unlock(actionPlaceBet)

	err := uc.PlaceBet(context.Background())
	assert.Error(t, err)

	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeActionInFlight, appErr.Code)
	assert.Equal(t, []int{7, 23}, uc.State().Selection)
}

func TestPlaceBetBalanceFallback(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10, 7, 23)

	resp := &domain.PlaceBetResponse{
		Aposta: &domain.Aposta{
			ID:                42,
			NumerosEscolhidos: []int{7, 23},
			ValorAposta:       decimal.NewFromFloat(2.0),
		},
		SaldoRestante: decimal.NewFromFloat(8.0),
	}

	api.EXPECT().PlaceBet(gomock.Any(), []int{7, 23}).Return(resp, nil)
	api.EXPECT().CurrentUser(gomock.Any()).Return(nil, domain.NewTransportError("", assert.AnError))
	expectDashboard(api)

	err := uc.PlaceBet(context.Background())
	assert.NoError(t, err)

	state := uc.State()
	assert.True(t, state.User.Saldo.Equal(decimal.NewFromFloat(8.0)))
	assert.Equal(t, "Aposta realizada com sucesso", state.SuccessMessage)
}

func TestCanPlaceBet(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	assert.False(t, uc.CanPlaceBet())

	setupAuthenticated(uc, 10, 7, 23)
	assert.True(t, uc.CanPlaceBet())

	setupAuthenticated(uc, 1.0, 7, 23)
	assert.False(t, uc.CanPlaceBet())
}

func TestAddBalanceSuccess(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 5)

	api.EXPECT().
		AddBalance(gomock.Any(), decimal.NewFromFloat(20.0)).
		Return(&domain.AddBalanceResponse{Message: "Saldo adicionado com sucesso!", Saldo: decimal.NewFromFloat(25.0)}, nil)
	api.EXPECT().CurrentUser(gomock.Any()).Return(testUser(25.0), nil)

	err := uc.AddBalance(context.Background(), decimal.NewFromFloat(20.0))
	assert.NoError(t, err)

	state := uc.State()
	assert.True(t, state.User.Saldo.Equal(decimal.NewFromFloat(25.0)))
	assert.Equal(t, "Saldo adicionado com sucesso!", state.SuccessMessage)
}

func TestAddBalanceValidation(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	err := uc.AddBalance(context.Background(), decimal.NewFromFloat(10.0))
	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeNotAuthenticated, appErr.Code)

	setupAuthenticated(uc, 5)

	err = uc.AddBalance(context.Background(), decimal.Zero)
	appErr, _ = domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeInvalidAmount, appErr.Code)
}

func TestRefreshDashboardPartialFailure(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10)

	api.EXPECT().CurrentDraw(gomock.Any()).Return(nil, domain.NewTransportError("", assert.AnError))
	api.EXPECT().TodayBets(gomock.Any()).Return(&domain.TodayBetsResponse{
		Apostas: []domain.Aposta{{ID: 1, NumerosEscolhidos: []int{3, 4}}},
	}, nil)
	api.EXPECT().MyBets(gomock.Any(), 1, 10).Return(&domain.ApostaPage{Total: 1}, nil)

	err := uc.RefreshDashboard(context.Background())
	assert.Error(t, err)

	state := uc.State()
	// Data from the fetches that succeeded is kept.
	assert.Len(t, state.ApostasHoje, 1)
	assert.NotNil(t, state.MinhasApostas)
	assert.False(t, state.Loading)
	assert.Equal(t, "Erro ao carregar dados: sorteio atual", state.ErrorMessage)
}

func TestRefreshDashboardSimplesFetchesAvailable(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeSimples)
	setupAuthenticated(uc, 10)

	expectDashboard(api)
	api.EXPECT().AvailableNumbers(gomock.Any()).Return(&domain.AvailableNumbersResponse{
		NumerosDisponiveis: []int{1, 2, 3},
	}, nil)

	err := uc.RefreshDashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, uc.State().NumerosDisponiveis)
}

func TestLoadHistory(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)
	setupAuthenticated(uc, 10)

	api.EXPECT().MyBets(gomock.Any(), 2, 10).Return(&domain.ApostaPage{CurrentPage: 2}, nil)
	api.EXPECT().DrawHistory(gomock.Any(), 2, 10).Return(&domain.SorteioPage{CurrentPage: 2}, nil)

	err := uc.LoadHistory(context.Background(), 2)
	assert.NoError(t, err)

	state := uc.State()
	assert.Equal(t, 2, state.MinhasApostas.CurrentPage)
	assert.Equal(t, 2, state.HistoricoSorteios.CurrentPage)
}

func TestLoadStatistics(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	api.EXPECT().Statistics(gomock.Any()).Return(&domain.Estatisticas{
		Gerais: domain.EstatisticasGerais{TotalSorteios: 3, TotalApostas: 12},
	}, nil)

	err := uc.LoadStatistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, uc.State().Estatisticas.Gerais.TotalSorteios)
}
