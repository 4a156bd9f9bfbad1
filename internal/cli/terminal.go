package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
)

// Terminal is a thin presentation shim over the session controller. It
// renders the controller state after every command and never holds
// state of its own.
type Terminal struct {
	session domain.SessionUseCase
	betting *config.BettingConfig
	in      io.Reader
	out     io.Writer
}

// NewTerminal creates a new terminal front-end
func NewTerminal(session domain.SessionUseCase, cfg *config.Config, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		session: session,
		betting: &cfg.Betting,
		in:      in,
		out:     out,
	}
}

// Run reads commands until EOF, "sair" or context cancellation.
func (t *Terminal) Run(ctx context.Context) error {
	t.session.Start(ctx)
	t.render()

	scanner := bufio.NewScanner(t.in)
	for {
		fmt.Fprint(t.out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "sair" {
			break
		}

		t.dispatch(ctx, line)
		t.render()
	}

	t.session.Close()
	return scanner.Err()
}

func (t *Terminal) dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "login":
		if len(args) != 2 {
			t.usage("login <email> <senha>")
			return
		}
		_ = t.session.Login(ctx, args[0], args[1])
	case "registrar":
		if len(args) == 0 {
			_ = t.session.NavigateTo(domain.ScreenRegister)
			return
		}
		if len(args) != 4 {
			t.usage("registrar <nome> <email> <telefone> <senha>")
			return
		}
		_ = t.session.Register(ctx, domain.RegisterRequest{
			Nome:     args[0],
			Email:    args[1],
			Telefone: args[2],
			Password: args[3],
		})
	case "logout":
		_ = t.session.Logout(ctx)
	case "numero":
		if len(args) != 1 {
			t.usage("numero <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			t.usage("numero <n>")
			return
		}
		_ = t.session.SelectNumber(n)
	case "limpar":
		t.session.ClearSelection()
	case "apostar":
		_ = t.session.PlaceBet(ctx)
	case "saldo":
		if len(args) != 1 {
			t.usage("saldo <valor>")
			return
		}
		valor, err := decimal.NewFromString(args[0])
		if err != nil {
			t.usage("saldo <valor>")
			return
		}
		_ = t.session.AddBalance(ctx, valor)
	case "atualizar":
		_ = t.session.RefreshDashboard(ctx)
	case "historico":
		page := 1
		if len(args) == 1 {
			if p, err := strconv.Atoi(args[0]); err == nil {
				page = p
			}
		}
		if err := t.session.NavigateTo(domain.ScreenHistory); err == nil {
			_ = t.session.LoadHistory(ctx, page)
		}
	case "estatisticas":
		if err := t.session.NavigateTo(domain.ScreenStatistics); err == nil {
			_ = t.session.LoadStatistics(ctx)
		}
	case "voltar":
		state := t.session.State()
		if state.User != nil {
			_ = t.session.NavigateTo(domain.ScreenHome)
		} else {
			_ = t.session.NavigateTo(domain.ScreenLogin)
		}
	default:
		fmt.Fprintf(t.out, "Comando desconhecido: %s\n", cmd)
	}
}

func (t *Terminal) usage(u string) {
	fmt.Fprintf(t.out, "Uso: %s\n", u)
}

func (t *Terminal) render() {
	state := t.session.State()

	fmt.Fprintln(t.out)
	if state.ErrorMessage != "" {
		fmt.Fprintf(t.out, "[!] %s\n", state.ErrorMessage)
	}
	if state.SuccessMessage != "" {
		fmt.Fprintf(t.out, "[ok] %s\n", state.SuccessMessage)
	}

	switch state.Screen {
	case domain.ScreenLogin:
		fmt.Fprintln(t.out, "=== Login ===")
		fmt.Fprintln(t.out, "Comandos: login <email> <senha> | registrar | sair")
	case domain.ScreenRegister:
		fmt.Fprintln(t.out, "=== Cadastro ===")
		fmt.Fprintln(t.out, "Comandos: registrar <nome> <email> <telefone> <senha> | voltar | sair")
	case domain.ScreenHome:
		t.renderHome(state)
	case domain.ScreenHistory:
		t.renderHistory(state)
	case domain.ScreenStatistics:
		t.renderStatistics(state)
	case domain.ScreenReceipt:
		t.renderReceipt(state)
	}
}

func (t *Terminal) renderHome(state domain.SessionState) {
	fmt.Fprintln(t.out, "=== Sistema de Bilhetes ===")
	if state.User != nil {
		fmt.Fprintf(t.out, "Usuário: %s | Saldo: R$ %s\n", state.User.Nome, state.User.Saldo.StringFixed(2))
	}
	if state.SorteioAtual != nil {
		fmt.Fprintf(t.out, "Sorteio de %s (%s)\n", state.SorteioAtual.DataSorteio, state.SorteioAtual.Status)
	}
	if state.EstatisticasSorteio != nil {
		fmt.Fprintf(t.out, "Apostas no sorteio: %d | Arrecadado: R$ %s\n",
			state.EstatisticasSorteio.TotalApostas, state.EstatisticasSorteio.TotalArrecadado.StringFixed(2))
	}
	if len(state.Selection) > 0 {
		fmt.Fprintf(t.out, "Seleção: %v (de %d)\n", state.Selection, t.betting.RequiredCount())
	}
	if len(state.ApostasHoje) > 0 {
		fmt.Fprintf(t.out, "Suas apostas de hoje: %d\n", len(state.ApostasHoje))
	}
	fmt.Fprintln(t.out, "Comandos: numero <n> | limpar | apostar | saldo <valor> | atualizar | historico | estatisticas | logout | sair")
}

func (t *Terminal) renderHistory(state domain.SessionState) {
	fmt.Fprintln(t.out, "=== Histórico ===")
	if state.MinhasApostas != nil {
		fmt.Fprintf(t.out, "Minhas apostas (página %d de %d):\n", state.MinhasApostas.CurrentPage, state.MinhasApostas.Pages)
		for _, a := range state.MinhasApostas.Apostas {
			fmt.Fprintf(t.out, "  #%d %v R$ %s [%s]\n", a.ID, a.NumerosEscolhidos, a.ValorAposta.StringFixed(2), a.Status)
		}
	}
	if state.HistoricoSorteios != nil {
		fmt.Fprintln(t.out, "Sorteios realizados:")
		for _, s := range state.HistoricoSorteios.Sorteios {
			fmt.Fprintf(t.out, "  %s -> %v\n", s.DataSorteio, s.NumerosSorteados)
		}
	}
	fmt.Fprintln(t.out, "Comandos: historico <página> | voltar | sair")
}

func (t *Terminal) renderStatistics(state domain.SessionState) {
	fmt.Fprintln(t.out, "=== Estatísticas ===")
	if state.Estatisticas != nil {
		fmt.Fprintf(t.out, "Total de sorteios: %d | Total de apostas: %d\n",
			state.Estatisticas.Gerais.TotalSorteios, state.Estatisticas.Gerais.TotalApostas)
		for _, c := range state.Estatisticas.CombinacoesMaisSorteadas {
			fmt.Fprintf(t.out, "  %v sorteada %d vez(es)\n", c.Numeros, c.Vezes)
		}
	}
	fmt.Fprintln(t.out, "Comandos: voltar | sair")
}

func (t *Terminal) renderReceipt(state domain.SessionState) {
	fmt.Fprintln(t.out, "=== Comprovante ===")
	if c := state.Comprovante; c != nil {
		fmt.Fprintf(t.out, "Aposta #%d\n", c.ID)
		fmt.Fprintf(t.out, "Data: %s\n", c.Data)
		fmt.Fprintf(t.out, "Apostador: %s\n", c.Usuario)
		fmt.Fprintf(t.out, "Números: %v\n", c.Numeros)
		fmt.Fprintf(t.out, "Valor: %s\n", c.Valor)
		fmt.Fprintf(t.out, "Sorteio: %s\n", c.SorteioData)
	}
	fmt.Fprintln(t.out, "Comandos: voltar | sair")
}
