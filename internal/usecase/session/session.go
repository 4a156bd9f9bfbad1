package session

import (
	"context"
	"sync"
	"time"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/lock"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Action names used by the in-flight guard.
const (
	actionStart      = "start"
	actionLogin      = "login"
	actionRegister   = "register"
	actionLogout     = "logout"
	actionPlaceBet   = "place_bet"
	actionAddBalance = "add_balance"
	actionDashboard  = "dashboard"
	actionHistory    = "history"
	actionStatistics = "statistics"
)

const defaultTimeout = 30 * time.Second

// SessionUseCase implements domain.SessionUseCase. It is the single owner
// of the application state; every mutation happens under uc.mu and no
// network call is made while holding it.
type SessionUseCase struct {
	api     domain.LotteryAPI
	betting config.BettingConfig
	timeout time.Duration
	logger  *logger.Logger
	locks   *lock.ActionLockManager

	mu    sync.Mutex
	state domain.SessionState

	cancelMu sync.Mutex
	cancels  map[string]context.CancelFunc
	closed   bool
}

// NewSessionUseCase creates the session controller. The initial screen is
// login until Start or Login succeeds.
func NewSessionUseCase(api domain.LotteryAPI, cfg *config.Config, log *logger.Logger, locks *lock.ActionLockManager) *SessionUseCase {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SessionUseCase{
		api:     api,
		betting: cfg.Betting,
		timeout: timeout,
		logger:  log,
		locks:   locks,
		state:   domain.SessionState{Screen: domain.ScreenLogin},
		cancels: make(map[string]context.CancelFunc),
	}
}

// Start checks for an existing session cookie. On success the dashboard is
// loaded and the home screen becomes active; otherwise the controller stays
// on the login screen.
func (uc *SessionUseCase) Start(ctx context.Context) {
	uc.mu.Lock()
	uc.state.Loading = true
	uc.mu.Unlock()

	opCtx, done := uc.track(actionStart, ctx)
	user, err := uc.api.CurrentUser(opCtx)
	done()

	uc.mu.Lock()
	uc.state.Loading = false
	if err != nil {
		uc.state.User = nil
		uc.state.Screen = domain.ScreenLogin
		uc.mu.Unlock()
		uc.logger.Debug("no active session", zap.Error(err))
		return
	}
	uc.state.User = user
	uc.state.Screen = domain.ScreenHome
	uc.mu.Unlock()

	_ = uc.RefreshDashboard(ctx)
}

// Login authenticates the user. On success the screen transitions to home
// and the dashboard is loaded; on failure the error message is surfaced and
// the screen stays on login.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string) error {
	uc.clearMessages()

	if email == "" || password == "" {
		return uc.failWith(domain.NewValidationError(domain.ErrCodeRequiredField, "Email e senha são obrigatórios"))
	}

	if !uc.locks.TryLock(actionLogin) {
		return uc.failWith(inFlightError())
	}
	defer uc.locks.Unlock(actionLogin)

	opCtx, done := uc.track(actionLogin, ctx)
	defer done()

	resp, err := uc.api.Login(opCtx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return uc.failWith(err)
	}

	uc.mu.Lock()
	uc.state.User = resp.User
	uc.state.Screen = domain.ScreenHome
	uc.state.ErrorMessage = ""
	uc.mu.Unlock()

	_ = uc.RefreshDashboard(ctx)
	return nil
}

// Register creates an account. The backend opens a session on success, so
// the effect is the same as a successful login.
func (uc *SessionUseCase) Register(ctx context.Context, req domain.RegisterRequest) error {
	uc.clearMessages()

	if req.Nome == "" || req.Email == "" || req.Telefone == "" || req.Password == "" {
		return uc.failWith(domain.NewValidationError(domain.ErrCodeRequiredField, "Todos os campos são obrigatórios"))
	}

	if !uc.locks.TryLock(actionRegister) {
		return uc.failWith(inFlightError())
	}
	defer uc.locks.Unlock(actionRegister)

	opCtx, done := uc.track(actionRegister, ctx)
	defer done()

	resp, err := uc.api.Register(opCtx, req)
	if err != nil {
		return uc.failWith(err)
	}

	uc.mu.Lock()
	uc.state.User = resp.User
	uc.state.Screen = domain.ScreenHome
	uc.state.SuccessMessage = resp.Message
	uc.mu.Unlock()

	_ = uc.RefreshDashboard(ctx)
	return nil
}

// Logout ends the session. The local state is cleared and the screen
// returns to login even when the network call fails.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	uc.clearMessages()
	uc.cancelAll()

	opCtx, done := uc.track(actionLogout, ctx)
	err := uc.api.Logout(opCtx)
	done()

	uc.mu.Lock()
	uc.state = domain.SessionState{Screen: domain.ScreenLogin}
	uc.mu.Unlock()

	if err != nil {
		uc.logger.Warn("logout request failed, local session cleared anyway", zap.Error(err))
	}
	return err
}

// NavigateTo performs a pure local screen switch. No network call is made.
func (uc *SessionUseCase) NavigateTo(screen domain.Screen) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state.ErrorMessage = ""
	uc.state.SuccessMessage = ""

	switch screen {
	case domain.ScreenLogin, domain.ScreenRegister:
		if uc.state.User != nil {
			return domain.NewValidationError(domain.ErrCodeInvalidSelection, "Sessão ativa")
		}
	case domain.ScreenHome, domain.ScreenHistory, domain.ScreenStatistics:
		if uc.state.User == nil {
			return domain.NewValidationError(domain.ErrCodeNotAuthenticated, "Usuário não autenticado")
		}
	case domain.ScreenReceipt:
		if uc.state.Comprovante == nil {
			return domain.NewValidationError(domain.ErrCodeInvalidSelection, "Nenhum comprovante disponível")
		}
	default:
		return domain.NewValidationError(domain.ErrCodeInvalidSelection, "Tela desconhecida")
	}

	uc.state.Screen = screen
	return nil
}

// State returns a copy of the current application state.
func (uc *SessionUseCase) State() domain.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state := uc.state
	state.Selection = append([]int(nil), uc.state.Selection...)
	state.NumerosDisponiveis = append([]int(nil), uc.state.NumerosDisponiveis...)
	state.ApostasHoje = append([]domain.Aposta(nil), uc.state.ApostasHoje...)
	return state
}

// Close cancels every in-flight request. The controller must not be used
// afterwards.
func (uc *SessionUseCase) Close() {
	uc.cancelMu.Lock()
	uc.closed = true
	for action, cancel := range uc.cancels {
		cancel()
		delete(uc.cancels, action)
	}
	uc.cancelMu.Unlock()
}

// track derives a per-request context with the configured timeout and
// registers its cancel function so Close and Logout can abort in-flight
// work. The returned release must be called when the request settles.
func (uc *SessionUseCase) track(action string, ctx context.Context) (context.Context, func()) {
	opCtx, cancel := context.WithTimeout(ctx, uc.timeout)

	uc.cancelMu.Lock()
	uc.cancels[action] = cancel
	uc.cancelMu.Unlock()

	release := func() {
		cancel()
		uc.cancelMu.Lock()
		delete(uc.cancels, action)
		uc.cancelMu.Unlock()
	}
	return opCtx, release
}

func (uc *SessionUseCase) cancelAll() {
	uc.cancelMu.Lock()
	for action, cancel := range uc.cancels {
		cancel()
		delete(uc.cancels, action)
	}
	uc.cancelMu.Unlock()
}

// clearMessages drops the previous error and success messages. Every user
// action starts here.
func (uc *SessionUseCase) clearMessages() {
	uc.mu.Lock()
	uc.state.ErrorMessage = ""
	uc.state.SuccessMessage = ""
	uc.mu.Unlock()
}

// failWith stores the user-facing message of err and re-returns it.
func (uc *SessionUseCase) failWith(err error) error {
	uc.mu.Lock()
	uc.state.ErrorMessage = domain.DisplayMessage(err)
	uc.state.Loading = false
	uc.mu.Unlock()
	return err
}

func inFlightError() *domain.AppError {
	return domain.NewValidationError(domain.ErrCodeActionInFlight, "Operação já em andamento")
}
