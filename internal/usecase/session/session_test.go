package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain/mocks"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/lock"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

func testConfig(mode string) *config.Config {
	return &config.Config{
		API:     config.APIConfig{Timeout: 5 * time.Second},
		Betting: config.BettingConfig{Mode: mode, Stake: 2.0},
	}
}

func newTestUseCase(t *testing.T, mode string) (*SessionUseCase, *mocks.MockLotteryAPI) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockLotteryAPI(ctrl)
	log := logger.NewLogger("test", "debug")
	uc := NewSessionUseCase(api, testConfig(mode), log, lock.NewActionLockManager(log))
	return uc, api
}

func testUser(saldo float64) *domain.User {
	return &domain.User{
		ID:    123,
		Nome:  "Maria Silva",
		Email: "maria@example.com",
		Saldo: decimal.NewFromFloat(saldo),
	}
}

// expectDashboard registers the three parallel fetches the controller
// issues after every successful auth or bet.
func expectDashboard(api *mocks.MockLotteryAPI) {
	api.EXPECT().CurrentDraw(gomock.Any()).Return(&domain.CurrentDrawResponse{
		Sorteio: &domain.Sorteio{ID: 1, DataSorteio: "2025-06-01", Status: domain.SorteioAberto},
	}, nil)
	api.EXPECT().TodayBets(gomock.Any()).Return(&domain.TodayBetsResponse{}, nil)
	api.EXPECT().MyBets(gomock.Any(), 1, 10).Return(&domain.ApostaPage{}, nil)
}

func TestLoginSuccess(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	api.EXPECT().
		Login(gomock.Any(), domain.LoginRequest{Email: "maria@example.com", Password: "segredo"}).
		Return(&domain.AuthResponse{Message: "Login realizado com sucesso", User: testUser(25.50)}, nil)
	expectDashboard(api)

	err := uc.Login(context.Background(), "maria@example.com", "segredo")
	assert.NoError(t, err)

	state := uc.State()
	assert.Equal(t, domain.ScreenHome, state.Screen)
	assert.NotNil(t, state.User)
	assert.True(t, state.User.Saldo.Equal(decimal.NewFromFloat(25.50)))
	assert.Empty(t, state.ErrorMessage)
	assert.NotNil(t, state.SorteioAtual)
}

func TestLoginEmptyFields(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	err := uc.Login(context.Background(), "", "segredo")
	assert.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)

	state := uc.State()
	assert.Equal(t, domain.ScreenLogin, state.Screen)
	assert.Equal(t, "Email e senha são obrigatórios", state.ErrorMessage)
}

func TestLoginServerError(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRequestError("Email ou senha incorretos", 401))

	err := uc.Login(context.Background(), "maria@example.com", "errada")
	assert.Error(t, err)

	state := uc.State()
	assert.Equal(t, domain.ScreenLogin, state.Screen)
	assert.Nil(t, state.User)
	assert.Equal(t, "Email ou senha incorretos", state.ErrorMessage)
}

func TestRegisterSuccess(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	req := domain.RegisterRequest{
		Nome:     "Maria Silva",
		Email:    "maria@example.com",
		Telefone: "11999990000",
		Password: "segredo",
	}
	api.EXPECT().
		Register(gomock.Any(), req).
		Return(&domain.AuthResponse{Message: "Cadastro realizado com sucesso", User: testUser(2.0)}, nil)
	expectDashboard(api)

	err := uc.Register(context.Background(), req)
	assert.NoError(t, err)

	state := uc.State()
	assert.Equal(t, domain.ScreenHome, state.Screen)
	assert.Equal(t, "Cadastro realizado com sucesso", state.SuccessMessage)
}

func TestRegisterMissingFields(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	err := uc.Register(context.Background(), domain.RegisterRequest{Nome: "Maria"})
	assert.Error(t, err)

	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)
	assert.Equal(t, domain.ScreenLogin, uc.State().Screen)
}

func TestLogoutResetsStateEvenOnFailure(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	uc.mu.Lock()
	uc.state.User = testUser(10)
	uc.state.Screen = domain.ScreenHome
	uc.state.Selection = []int{7, 23}
	uc.state.SuccessMessage = "Aposta realizada com sucesso"
	uc.mu.Unlock()

	api.EXPECT().Logout(gomock.Any()).Return(domain.NewTransportError("", assert.AnError))

	err := uc.Logout(context.Background())
	assert.Error(t, err)

	state := uc.State()
	assert.Equal(t, domain.ScreenLogin, state.Screen)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Selection)
	assert.Empty(t, state.SuccessMessage)
}

func TestStartWithoutSession(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	api.EXPECT().CurrentUser(gomock.Any()).Return(nil, domain.NewRequestError("Usuário não autenticado", 401))

	uc.Start(context.Background())

	state := uc.State()
	assert.Equal(t, domain.ScreenLogin, state.Screen)
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestStartRestoresSession(t *testing.T) {
	uc, api := newTestUseCase(t, config.ModeDupla)

	api.EXPECT().CurrentUser(gomock.Any()).Return(testUser(15), nil)
	expectDashboard(api)

	uc.Start(context.Background())

	state := uc.State()
	assert.Equal(t, domain.ScreenHome, state.Screen)
	assert.NotNil(t, state.User)
}

func TestSelectNumberToggle(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	assert.NoError(t, uc.SelectNumber(5))
	assert.Equal(t, []int{5}, uc.State().Selection)

	// Selecting the same number again removes it.
	assert.NoError(t, uc.SelectNumber(5))
	assert.Empty(t, uc.State().Selection)
}

func TestSelectNumberBeyondLimit(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	assert.NoError(t, uc.SelectNumber(5))
	assert.NoError(t, uc.SelectNumber(10))

	err := uc.SelectNumber(12)
	assert.Error(t, err)
	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeSelectionFull, appErr.Code)

	state := uc.State()
	assert.Equal(t, []int{5, 10}, state.Selection)
	assert.Equal(t, "Você pode selecionar apenas 2 número(s)!", state.ErrorMessage)
}

func TestSelectNumberOutOfRange(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	tests := []struct {
		name   string
		numero int
	}{
		{"below_lower_bound", 0},
		{"above_upper_bound", 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.SelectNumber(tt.numero)
			assert.Error(t, err)
			appErr, _ := domain.IsAppError(err)
			assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
		})
	}
}

func TestSelectNumberSimplesMode(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeSimples)

	assert.NoError(t, uc.SelectNumber(300))

	err := uc.SelectNumber(301)
	assert.Error(t, err)
	assert.Equal(t, []int{300}, uc.State().Selection)

	assert.NoError(t, uc.SelectNumber(300))
	assert.NoError(t, uc.SelectNumber(500))
	assert.Error(t, uc.SelectNumber(501))
}

func TestClearSelection(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	_ = uc.SelectNumber(5)
	_ = uc.SelectNumber(10)
	uc.ClearSelection()

	assert.Empty(t, uc.State().Selection)
}

func TestNavigateToGuards(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	// Without a session protected screens are unreachable.
	err := uc.NavigateTo(domain.ScreenHome)
	assert.Error(t, err)
	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, domain.ErrCodeNotAuthenticated, appErr.Code)

	// The receipt screen needs a receipt.
	assert.Error(t, uc.NavigateTo(domain.ScreenReceipt))

	assert.NoError(t, uc.NavigateTo(domain.ScreenRegister))
	assert.Equal(t, domain.ScreenRegister, uc.State().Screen)

	uc.mu.Lock()
	uc.state.User = testUser(10)
	uc.mu.Unlock()

	assert.NoError(t, uc.NavigateTo(domain.ScreenHistory))
	assert.Error(t, uc.NavigateTo(domain.ScreenLogin))
}

func TestStateReturnsCopy(t *testing.T) {
	uc, _ := newTestUseCase(t, config.ModeDupla)

	_ = uc.SelectNumber(5)

	state := uc.State()
	state.Selection[0] = 42

	assert.Equal(t, []int{5}, uc.State().Selection)
}
