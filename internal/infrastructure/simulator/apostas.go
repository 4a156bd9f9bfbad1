package simulator

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
)

// PlaceBet validates and records a wager on the current draw, debiting the
// fixed stake.
func (s *Store) PlaceBet(userID int, numeros []int) (*domain.PlaceBetResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[userID]
	if !ok {
		return nil, newError(http.StatusUnauthorized, "Usuário não autenticado")
	}

	required := s.betting.RequiredCount()
	max := s.betting.MaxNumber()

	if len(numeros) != required {
		return nil, newError(http.StatusBadRequest,
			fmt.Sprintf("Você deve escolher exatamente %d número(s)", required))
	}
	seen := make(map[int]bool, len(numeros))
	for _, n := range numeros {
		if n < 1 || n > max {
			return nil, newError(http.StatusBadRequest,
				fmt.Sprintf("Número deve estar entre 1 e %d", max))
		}
		if seen[n] {
			return nil, newError(http.StatusBadRequest, "Números devem ser distintos")
		}
		seen[n] = true
	}

	sorteio := s.currentSorteioLocked()
	if sorteio.Status != domain.SorteioAberto {
		return nil, newError(http.StatusBadRequest, "Sorteio não está aberto para apostas")
	}

	key := combinationKey(numeros)
	for _, id := range s.apostasSeq {
		aposta := s.apostas[id]
		if aposta.SorteioID == sorteio.ID && s.apostaOwner[id] == userID && combinationKey(aposta.NumerosEscolhidos) == key {
			return nil, newError(http.StatusBadRequest, "Você já apostou nestes números hoje")
		}
	}

	stake := s.betting.StakeAmount()
	if record.user.Saldo.LessThan(stake) {
		return nil, newError(http.StatusBadRequest, "Saldo insuficiente")
	}

	record.user.Saldo = record.user.Saldo.Sub(stake)
	s.recordTransacaoLocked(userID, domain.TransacaoDebito, stake, "Aposta realizada")

	sorted := append([]int(nil), numeros...)
	sort.Ints(sorted)

	aposta := &domain.Aposta{
		ID:                s.nextApostaID,
		SorteioID:         sorteio.ID,
		NumerosEscolhidos: sorted,
		ValorAposta:       stake,
		Status:            domain.ApostaAtiva,
		DataCriacao:       s.now().Format(time.RFC3339),
	}
	s.nextApostaID++
	s.apostas[aposta.ID] = aposta
	s.apostasSeq = append(s.apostasSeq, aposta.ID)
	s.apostaOwner[aposta.ID] = userID

	sorteio.TotalArrecadado = sorteio.TotalArrecadado.Add(stake)
	sorteio.TotalApostas++

	copied := *aposta
	return &domain.PlaceBetResponse{
		Message: "Aposta realizada com sucesso",
		Aposta:  &copied,
		Comprovante: &domain.Comprovante{
			ID:          aposta.ID,
			Data:        s.now().Format("02/01/2006 15:04"),
			Usuario:     record.user.Nome,
			Numeros:     sorted,
			Valor:       formatValor(stake),
			SorteioData: sorteio.DataSorteio,
		},
		SaldoRestante: record.user.Saldo,
	}, nil
}

// MyBets pages through all of the user's bets, newest first, each carrying
// its draw.
func (s *Store) MyBets(userID, page, perPage int) (*domain.ApostaPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, newError(http.StatusUnauthorized, "Usuário não autenticado")
	}

	var minhas []domain.Aposta
	for i := len(s.apostasSeq) - 1; i >= 0; i-- {
		id := s.apostasSeq[i]
		if s.apostaOwner[id] != userID {
			continue
		}
		aposta := *s.apostas[id]
		if sorteio, ok := s.sorteios[aposta.SorteioID]; ok {
			copied := *sorteio
			aposta.Sorteio = &copied
		}
		minhas = append(minhas, aposta)
	}

	items, total, pages, current := paginate(minhas, page, perPage)
	return &domain.ApostaPage{
		Apostas:     items,
		Total:       total,
		Pages:       pages,
		CurrentPage: current,
	}, nil
}

// TodayBets lists the user's bets on the current draw, ordered by the
// chosen numbers.
func (s *Store) TodayBets(userID int) (*domain.TodayBetsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, newError(http.StatusUnauthorized, "Usuário não autenticado")
	}

	sorteio := s.currentSorteioLocked()

	hoje := []domain.Aposta{}
	for _, id := range s.apostasSeq {
		if s.apostaOwner[id] == userID && s.apostas[id].SorteioID == sorteio.ID {
			hoje = append(hoje, *s.apostas[id])
		}
	}
	sort.Slice(hoje, func(i, j int) bool {
		return combinationKey(hoje[i].NumerosEscolhidos) < combinationKey(hoje[j].NumerosEscolhidos)
	})

	copied := *sorteio
	return &domain.TodayBetsResponse{
		Apostas:      hoje,
		Sorteio:      &copied,
		TotalApostas: len(hoje),
	}, nil
}

// AvailableNumbers lists the numbers the user has not yet played on the
// current draw.
func (s *Store) AvailableNumbers(userID int) (*domain.AvailableNumbersResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, newError(http.StatusUnauthorized, "Usuário não autenticado")
	}

	sorteio := s.currentSorteioLocked()
	if sorteio.Status != domain.SorteioAberto {
		return &domain.AvailableNumbersResponse{
			NumerosDisponiveis: []int{},
			NumerosApostados:   []int{},
			Message:            "Sorteio não está aberto para apostas",
		}, nil
	}

	apostados := make(map[int]bool)
	for _, id := range s.apostasSeq {
		if s.apostaOwner[id] == userID && s.apostas[id].SorteioID == sorteio.ID {
			for _, n := range s.apostas[id].NumerosEscolhidos {
				apostados[n] = true
			}
		}
	}

	resp := &domain.AvailableNumbersResponse{
		NumerosDisponiveis: []int{},
		NumerosApostados:   []int{},
	}

	// Numbers block the board only in single-number mode; in the
	// two-number variant the same number may appear in other pairs.
	blocking := s.betting.Mode == config.ModeSimples

	for n := 1; n <= s.betting.MaxNumber(); n++ {
		if apostados[n] {
			resp.NumerosApostados = append(resp.NumerosApostados, n)
			if blocking {
				continue
			}
		}
		resp.NumerosDisponiveis = append(resp.NumerosDisponiveis, n)
	}
	resp.TotalDisponiveis = len(resp.NumerosDisponiveis)

	return resp, nil
}
