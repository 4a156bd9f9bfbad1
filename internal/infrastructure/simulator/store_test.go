package simulator

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
)

func duplaStore() *Store {
	return NewStore(config.BettingConfig{Mode: config.ModeDupla, Stake: 2.0})
}

func simplesStore() *Store {
	return NewStore(config.BettingConfig{Mode: config.ModeSimples, Stake: 2.0})
}

func register(t *testing.T, s *Store, nome, email string) *domain.User {
	t.Helper()
	user, err := s.Register(domain.RegisterRequest{
		Nome:     nome,
		Email:    email,
		Telefone: "11999990000",
		Password: "segredo",
	})
	assert.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	s := duplaStore()

	user := register(t, s, "Maria Silva", "maria@example.com")
	assert.Equal(t, 1, user.ID)
	assert.True(t, user.Saldo.Equal(decimal.NewFromFloat(2.0)))

	// The first account is the administrator.
	assert.True(t, s.IsAdmin(user.ID))

	second := register(t, s, "João Souza", "joao@example.com")
	assert.False(t, s.IsAdmin(second.ID))
}

func TestRegisterValidation(t *testing.T) {
	s := duplaStore()

	_, err := s.Register(domain.RegisterRequest{Nome: "Maria"})
	storeErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, storeErr.Status)
	assert.Equal(t, "Dados incompletos", storeErr.Message)

	register(t, s, "Maria Silva", "maria@example.com")
	_, err = s.Register(domain.RegisterRequest{
		Nome: "Outra Maria", Email: "maria@example.com", Telefone: "1", Password: "x",
	})
	assert.EqualError(t, err, "Email já cadastrado")
}

func TestAuthenticate(t *testing.T) {
	s := duplaStore()
	register(t, s, "Maria Silva", "maria@example.com")

	user, err := s.Authenticate("maria@example.com", "segredo")
	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.Nome)

	_, err = s.Authenticate("maria@example.com", "errada")
	assert.EqualError(t, err, "Email ou senha incorretos")

	_, err = s.Authenticate("ninguem@example.com", "segredo")
	assert.EqualError(t, err, "Email ou senha incorretos")
}

func TestChangePassword(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	err := s.ChangePassword(user.ID, domain.ChangePasswordRequest{SenhaAtual: "errada", NovaSenha: "nova"})
	assert.EqualError(t, err, "Senha atual incorreta")

	err = s.ChangePassword(user.ID, domain.ChangePasswordRequest{SenhaAtual: "segredo", NovaSenha: "nova"})
	assert.NoError(t, err)

	_, err = s.Authenticate("maria@example.com", "nova")
	assert.NoError(t, err)
}

func TestAddBalanceAndLedger(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	saldo, err := s.AddBalance(user.ID, decimal.NewFromFloat(20.0))
	assert.NoError(t, err)
	assert.True(t, saldo.Equal(decimal.NewFromFloat(22.0)))

	page, err := s.Transactions(user.ID, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, domain.TransacaoCredito, page.Transacoes[0].Tipo)
}

func TestPlaceBet(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")
	_, _ = s.AddBalance(user.ID, decimal.NewFromFloat(10.0))

	resp, err := s.PlaceBet(user.ID, []int{23, 7})
	assert.NoError(t, err)
	assert.Equal(t, "Aposta realizada com sucesso", resp.Message)
	// Numbers are stored sorted.
	assert.Equal(t, []int{7, 23}, resp.Aposta.NumerosEscolhidos)
	assert.Equal(t, []int{7, 23}, resp.Comprovante.Numeros)
	assert.Equal(t, "R$ 2.00", resp.Comprovante.Valor)
	assert.True(t, resp.SaldoRestante.Equal(decimal.NewFromFloat(10.0)))

	// Same combination, any order, is rejected for the same draw.
	_, err = s.PlaceBet(user.ID, []int{7, 23})
	assert.EqualError(t, err, "Você já apostou nestes números hoje")

	// A different combination is fine.
	_, err = s.PlaceBet(user.ID, []int{7, 24})
	assert.NoError(t, err)
}

func TestPlaceBetValidation(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	tests := []struct {
		name    string
		numeros []int
		message string
	}{
		{"wrong_count", []int{7}, "Você deve escolher exatamente 2 número(s)"},
		{"out_of_range", []int{7, 61}, "Número deve estar entre 1 e 60"},
		{"duplicated", []int{7, 7}, "Números devem ser distintos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.PlaceBet(user.ID, tt.numeros)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestPlaceBetInsufficientBalance(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	// Initial balance covers exactly one stake.
	_, err := s.PlaceBet(user.ID, []int{7, 23})
	assert.NoError(t, err)

	_, err = s.PlaceBet(user.ID, []int{8, 24})
	assert.EqualError(t, err, "Saldo insuficiente")
}

func TestMyBetsPagination(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")
	_, _ = s.AddBalance(user.ID, decimal.NewFromFloat(50.0))

	for i := 1; i <= 12; i++ {
		_, err := s.PlaceBet(user.ID, []int{i, i + 20})
		assert.NoError(t, err)
	}

	page, err := s.MyBets(user.ID, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Apostas, 10)
	// Newest first.
	assert.Equal(t, []int{12, 32}, page.Apostas[0].NumerosEscolhidos)
	assert.NotNil(t, page.Apostas[0].Sorteio)

	page, err = s.MyBets(user.ID, 2, 10)
	assert.NoError(t, err)
	assert.Len(t, page.Apostas, 2)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestTodayBets(t *testing.T) {
	s := duplaStore()
	maria := register(t, s, "Maria Silva", "maria@example.com")
	joao := register(t, s, "João Souza", "joao@example.com")

	_, _ = s.PlaceBet(maria.ID, []int{7, 23})
	_, _ = s.PlaceBet(joao.ID, []int{8, 24})

	resp, err := s.TodayBets(maria.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.TotalApostas)
	assert.Equal(t, []int{7, 23}, resp.Apostas[0].NumerosEscolhidos)
	assert.NotNil(t, resp.Sorteio)
}

func TestTriggerDraw(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")
	_, _ = s.PlaceBet(user.ID, []int{7, 23})

	err := s.TriggerDraw("not-a-date")
	assert.EqualError(t, err, "Formato de data inválido. Use YYYY-MM-DD")

	err = s.TriggerDraw("")
	assert.NoError(t, err)

	err = s.TriggerDraw("")
	assert.EqualError(t, err, "Sorteio já foi realizado")

	resp := s.CurrentDraw()
	assert.Equal(t, domain.SorteioFinalizado, resp.Sorteio.Status)
	assert.Len(t, resp.Sorteio.NumerosSorteados, 2)
	for _, n := range resp.Sorteio.NumerosSorteados {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 60)
	}
	assert.NotEqual(t, resp.Sorteio.NumerosSorteados[0], resp.Sorteio.NumerosSorteados[1])
}

func TestWinnerCrediting(t *testing.T) {
	s := duplaStore()
	maria := register(t, s, "Maria Silva", "maria@example.com")
	joao := register(t, s, "João Souza", "joao@example.com")

	_, _ = s.PlaceBet(maria.ID, []int{7, 23})
	_, _ = s.PlaceBet(joao.ID, []int{8, 24})

	// Settle the draw with a fixed outcome.
	s.mu.Lock()
	sorteio := s.currentSorteioLocked()
	sorteio.NumerosSorteados = []int{7, 23}
	sorteio.Status = domain.SorteioSorteado
	sorteio.PremioTotal = sorteio.TotalArrecadado.Mul(taxaPremioDupla)
	s.finalizeLocked(sorteio)
	s.mu.Unlock()

	winner, err := s.GetUser(maria.ID)
	assert.NoError(t, err)
	// 2 stakes of 2.00 collected, 90% paid out to the single winner.
	assert.True(t, winner.Saldo.Equal(decimal.NewFromFloat(3.6)), "saldo was %s", winner.Saldo)

	loser, err := s.GetUser(joao.ID)
	assert.NoError(t, err)
	assert.True(t, loser.Saldo.Equal(decimal.Zero))

	page, _ := s.MyBets(maria.ID, 1, 10)
	assert.Equal(t, domain.ApostaGanhadora, page.Apostas[0].Status)

	page, _ = s.MyBets(joao.ID, 1, 10)
	assert.Equal(t, domain.ApostaPerdedora, page.Apostas[0].Status)

	result, err := s.DrawResult(sorteio.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalGanhadores)
	assert.Equal(t, "Maria Silva", result.Ganhadores[0].UsuarioNome)

	history := s.DrawHistory(1, 10)
	assert.Equal(t, 1, history.Total)
	assert.Equal(t, 1, history.Sorteios[0].TotalGanhadores)
}

func TestDrawResultErrors(t *testing.T) {
	s := duplaStore()
	register(t, s, "Maria Silva", "maria@example.com")

	_, err := s.DrawResult(99)
	storeErr := err.(*Error)
	assert.Equal(t, http.StatusNotFound, storeErr.Status)

	resp := s.CurrentDraw()
	_, err = s.DrawResult(resp.Sorteio.ID)
	assert.EqualError(t, err, "Sorteio ainda não foi realizado")
}

func TestAvailableNumbersSimples(t *testing.T) {
	s := simplesStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	_, err := s.PlaceBet(user.ID, []int{42})
	assert.NoError(t, err)

	resp, err := s.AvailableNumbers(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []int{42}, resp.NumerosApostados)
	assert.Equal(t, 499, resp.TotalDisponiveis)
	assert.NotContains(t, resp.NumerosDisponiveis, 42)
}

func TestAvailableNumbersClosedDraw(t *testing.T) {
	s := simplesStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	assert.NoError(t, s.TriggerDraw(""))

	resp, err := s.AvailableNumbers(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, resp.NumerosDisponiveis)
	assert.Equal(t, "Sorteio não está aberto para apostas", resp.Message)
}

func TestBetAfterDrawClosed(t *testing.T) {
	s := duplaStore()
	user := register(t, s, "Maria Silva", "maria@example.com")

	assert.NoError(t, s.TriggerDraw(""))

	_, err := s.PlaceBet(user.ID, []int{7, 23})
	assert.EqualError(t, err, "Sorteio não está aberto para apostas")
}

func TestAdminStatistics(t *testing.T) {
	s := duplaStore()
	maria := register(t, s, "Maria Silva", "maria@example.com")
	register(t, s, "João Souza", "joao@example.com")

	_, _ = s.PlaceBet(maria.ID, []int{7, 23})

	stats := s.AdminStatistics()
	assert.Equal(t, 2, stats.TotalUsuarios)
	assert.Equal(t, 1, stats.SorteiosAbertos)
	assert.Equal(t, 1, stats.ApostasHoje)
	assert.True(t, stats.ArrecadadoHoje.Equal(decimal.NewFromFloat(2.0)))
}

func TestSchedulerStatus(t *testing.T) {
	s := duplaStore()

	status := s.SchedulerStatus()
	assert.True(t, status.Ativo)
	assert.Equal(t, "20:00", status.HorarioSorteio)
	assert.NotEmpty(t, status.ProximaExecucao)
}
