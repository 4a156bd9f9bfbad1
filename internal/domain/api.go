package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=api.go -destination=mocks/mock_api.go -package=mocks

// LotteryAPI is the full backend surface consumed by the controller.
// Every method is a thin parameter-to-request mapping; validation lives in
// the controller, re-validation lives on the server.
type LotteryAPI interface {
	// auth
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)

	// user
	Profile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Balance(ctx context.Context) (decimal.Decimal, error)
	AddBalance(ctx context.Context, valor decimal.Decimal) (*AddBalanceResponse, error)
	TransactionHistory(ctx context.Context, page, perPage int) (*TransacaoPage, error)

	// betting
	PlaceBet(ctx context.Context, numeros []int) (*PlaceBetResponse, error)
	MyBets(ctx context.Context, page, perPage int) (*ApostaPage, error)
	TodayBets(ctx context.Context) (*TodayBetsResponse, error)
	AvailableNumbers(ctx context.Context) (*AvailableNumbersResponse, error)

	// draws
	CurrentDraw(ctx context.Context) (*CurrentDrawResponse, error)
	DrawHistory(ctx context.Context, page, perPage int) (*SorteioPage, error)
	DrawResult(ctx context.Context, sorteioID int) (*ResultadoSorteio, error)
	Statistics(ctx context.Context) (*Estatisticas, error)

	// admin
	TriggerDraw(ctx context.Context, dataSorteio string) error
	SchedulerStatus(ctx context.Context) (*SchedulerStatus, error)
	AdminStatistics(ctx context.Context) (*AdminStatistics, error)
}

// RegisterRequest is the body of the register call.
type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Password string `json:"password"`
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register, login and get-current-user.
type AuthResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// UpdateProfileRequest is the body of the profile update call.
type UpdateProfileRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// ChangePasswordRequest is the body of the change-password call.
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}

// AddBalanceResponse is returned by the add-balance call.
type AddBalanceResponse struct {
	Message string          `json:"message"`
	Saldo   decimal.Decimal `json:"saldo"`
}

// PlaceBetResponse is returned by a successful bet placement.
type PlaceBetResponse struct {
	Message       string          `json:"message"`
	Aposta        *Aposta         `json:"aposta,omitempty"`
	Comprovante   *Comprovante    `json:"comprovante,omitempty"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
}

// ApostaPage is a paginated list of the user's bets.
type ApostaPage struct {
	Apostas     []Aposta `json:"apostas"`
	Total       int      `json:"total"`
	Pages       int      `json:"pages"`
	CurrentPage int      `json:"current_page"`
}

// TransacaoPage is a paginated slice of the balance ledger.
type TransacaoPage struct {
	Transacoes  []Transacao `json:"transacoes"`
	Total       int         `json:"total"`
	Pages       int         `json:"pages"`
	CurrentPage int         `json:"current_page"`
}

// TodayBetsResponse lists the user's bets on the current draw.
type TodayBetsResponse struct {
	Apostas      []Aposta `json:"apostas"`
	Sorteio      *Sorteio `json:"sorteio"`
	TotalApostas int      `json:"total_apostas"`
}

// AvailableNumbersResponse lists numbers still open to the user for the
// current draw. Only meaningful in single-number mode.
type AvailableNumbersResponse struct {
	NumerosDisponiveis []int  `json:"numeros_disponiveis"`
	NumerosApostados   []int  `json:"numeros_apostados"`
	TotalDisponiveis   int    `json:"total_disponiveis"`
	Message            string `json:"message,omitempty"`
}

// EstatisticasSorteio carries per-draw aggregates served with the current
// draw.
type EstatisticasSorteio struct {
	TotalApostas    int             `json:"total_apostas"`
	TotalArrecadado decimal.Decimal `json:"total_arrecadado"`
	Apostadores     int             `json:"apostadores"`
}

// CurrentDrawResponse wraps the current draw and its aggregates.
type CurrentDrawResponse struct {
	Sorteio      *Sorteio             `json:"sorteio"`
	Estatisticas *EstatisticasSorteio `json:"estatisticas,omitempty"`
}

// SorteioHistorico is a finalized draw enriched with winner figures.
type SorteioHistorico struct {
	Sorteio
	TotalGanhadores   int             `json:"total_ganhadores"`
	PremioPorGanhador decimal.Decimal `json:"premio_por_ganhador"`
}

// SorteioPage is a paginated list of finalized draws.
type SorteioPage struct {
	Sorteios    []SorteioHistorico `json:"sorteios"`
	Total       int                `json:"total"`
	Pages       int                `json:"pages"`
	CurrentPage int                `json:"current_page"`
}

// SchedulerStatus reports the state of the backend's draw scheduler.
type SchedulerStatus struct {
	Ativo           bool   `json:"ativo"`
	HorarioSorteio  string `json:"horario_sorteio"`
	ProximaExecucao string `json:"proxima_execucao"`
}

// AdminStatistics aggregates backend-wide figures for administrators.
type AdminStatistics struct {
	TotalUsuarios   int             `json:"total_usuarios"`
	ApostasHoje     int             `json:"apostas_hoje"`
	ArrecadadoHoje  decimal.Decimal `json:"arrecadado_hoje"`
	SorteiosAbertos int             `json:"sorteios_abertos"`
}
