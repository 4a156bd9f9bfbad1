package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Screen identifies which screen the presentation layer should render.
// Exactly one screen is active at a time.
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenRegister   Screen = "register"
	ScreenHome       Screen = "home"
	ScreenHistory    Screen = "history"
	ScreenStatistics Screen = "statistics"
	ScreenReceipt    Screen = "receipt"
)

// SessionState is the full application state owned by the session
// controller. The presentation layer reads it and renders; it never
// mutates it directly.
type SessionState struct {
	Screen Screen

	User                *User
	SorteioAtual        *Sorteio
	EstatisticasSorteio *EstatisticasSorteio
	ApostasHoje         []Aposta
	MinhasApostas       *ApostaPage
	HistoricoSorteios   *SorteioPage
	Estatisticas        *Estatisticas
	NumerosDisponiveis  []int

	Selection   []int
	Comprovante *Comprovante

	Loading        bool
	ErrorMessage   string
	SuccessMessage string
}

// SessionUseCase owns the in-memory application state and the legal
// sequence of screens. It is the only component that talks to the
// LotteryAPI. Every method that performs a network call catches the
// failure itself, stores the user-facing message in the state and then
// returns the error for programmatic callers; nothing propagates
// unhandled to the rendering layer.
type SessionUseCase interface {
	// Start attempts to restore a session from the transport credential.
	Start(ctx context.Context)

	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req RegisterRequest) error
	Logout(ctx context.Context) error

	SelectNumber(numero int) error
	ClearSelection()
	CanPlaceBet() bool
	PlaceBet(ctx context.Context) error

	AddBalance(ctx context.Context, valor decimal.Decimal) error

	RefreshDashboard(ctx context.Context) error
	LoadHistory(ctx context.Context, page int) error
	LoadStatistics(ctx context.Context) error

	NavigateTo(screen Screen) error

	// State returns a copy of the current application state.
	State() SessionState

	// Close cancels every in-flight request and releases the controller.
	Close()
}
