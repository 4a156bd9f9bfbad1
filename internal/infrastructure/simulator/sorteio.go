package simulator

import (
	"net/http"
	"sort"
	"time"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// fixed prize of the single-number variant
var premioSimples = decimal.NewFromInt(500)

// share of the pool paid out in the two-number variant
var taxaPremioDupla = decimal.NewFromFloat(0.9)

// currentSorteioLocked returns today's draw, creating it when absent.
func (s *Store) currentSorteioLocked() *domain.Sorteio {
	return s.sorteioForDateLocked(s.now().Format(dateLayout))
}

func (s *Store) sorteioForDateLocked(date string) *domain.Sorteio {
	if id, ok := s.byDate[date]; ok {
		return s.sorteios[id]
	}

	sorteio := &domain.Sorteio{
		ID:          s.nextSorteioID,
		DataSorteio: date,
		Status:      domain.SorteioAberto,
		DataCriacao: s.now().Format(time.RFC3339),
	}
	s.nextSorteioID++
	s.sorteios[sorteio.ID] = sorteio
	s.byDate[date] = sorteio.ID
	return sorteio
}

// CurrentDraw returns today's draw and its aggregates.
func (s *Store) CurrentDraw() *domain.CurrentDrawResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorteio := s.currentSorteioLocked()
	copied := *sorteio

	apostadores := make(map[int]bool)
	for _, id := range s.apostasSeq {
		if s.apostas[id].SorteioID == sorteio.ID {
			apostadores[s.apostaOwner[id]] = true
		}
	}

	return &domain.CurrentDrawResponse{
		Sorteio: &copied,
		Estatisticas: &domain.EstatisticasSorteio{
			TotalApostas:    sorteio.TotalApostas,
			TotalArrecadado: sorteio.TotalArrecadado,
			Apostadores:     len(apostadores),
		},
	}
}

// DrawHistory pages through finalized draws, newest first.
func (s *Store) DrawHistory(page, perPage int) *domain.SorteioPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var finalizados []domain.SorteioHistorico
	for id := s.nextSorteioID - 1; id >= 1; id-- {
		sorteio, ok := s.sorteios[id]
		if !ok || sorteio.Status == domain.SorteioAberto {
			continue
		}

		ganhadores := s.apostasGanhadorasLocked(sorteio)
		historico := domain.SorteioHistorico{
			Sorteio:         *sorteio,
			TotalGanhadores: len(ganhadores),
		}
		if len(ganhadores) > 0 {
			historico.PremioPorGanhador = sorteio.PremioTotal.Div(decimal.NewFromInt(int64(len(ganhadores))))
		}
		finalizados = append(finalizados, historico)
	}

	items, total, pages, current := paginate(finalizados, page, perPage)
	return &domain.SorteioPage{
		Sorteios:    items,
		Total:       total,
		Pages:       pages,
		CurrentPage: current,
	}
}

// DrawResult returns the detailed outcome of one draw.
func (s *Store) DrawResult(id int) (*domain.ResultadoSorteio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorteio, ok := s.sorteios[id]
	if !ok {
		return nil, newError(http.StatusNotFound, "Sorteio não encontrado")
	}
	if sorteio.Status == domain.SorteioAberto {
		return nil, newError(http.StatusBadRequest, "Sorteio ainda não foi realizado")
	}

	ganhadoras := s.apostasGanhadorasLocked(sorteio)
	resultado := &domain.ResultadoSorteio{
		Sorteio:         *sorteio,
		Ganhadores:      []domain.Ganhador{},
		TotalGanhadores: len(ganhadoras),
	}

	var premio decimal.Decimal
	if len(ganhadoras) > 0 {
		premio = sorteio.PremioTotal.Div(decimal.NewFromInt(int64(len(ganhadoras))))
	}
	for _, aposta := range ganhadoras {
		owner := s.users[s.apostaOwner[aposta.ID]]
		resultado.Ganhadores = append(resultado.Ganhadores, domain.Ganhador{
			UsuarioNome:       owner.user.Nome,
			NumerosEscolhidos: aposta.NumerosEscolhidos,
			DataAposta:        aposta.DataCriacao,
			PremioRecebido:    premio,
		})
	}

	return resultado, nil
}

// Statistics aggregates lifetime figures across draws.
func (s *Store) Statistics() *domain.Estatisticas {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.Estatisticas{
		CombinacoesMaisSorteadas: []domain.CombinacaoSorteada{},
		NumerosMaisSorteados:     []domain.NumeroSorteado{},
	}

	combinacoes := make(map[string]*domain.CombinacaoSorteada)
	numeros := make(map[int]int)

	for _, sorteio := range s.sorteios {
		if sorteio.Status == domain.SorteioAberto {
			continue
		}
		stats.Gerais.TotalSorteios++
		stats.Gerais.TotalArrecadado = stats.Gerais.TotalArrecadado.Add(sorteio.TotalArrecadado)
		stats.Gerais.TotalPremiado = stats.Gerais.TotalPremiado.Add(sorteio.PremioTotal)

		key := combinationKey(sorteio.NumerosSorteados)
		if entry, ok := combinacoes[key]; ok {
			entry.Vezes++
		} else {
			sorted := append([]int(nil), sorteio.NumerosSorteados...)
			sort.Ints(sorted)
			combinacoes[key] = &domain.CombinacaoSorteada{Numeros: sorted, Vezes: 1}
		}
		for _, n := range sorteio.NumerosSorteados {
			numeros[n]++
		}
	}
	stats.Gerais.TotalApostas = len(s.apostas)

	if stats.Gerais.TotalArrecadado.IsPositive() {
		stats.Gerais.TaxaPremio = stats.Gerais.TotalPremiado.
			Div(stats.Gerais.TotalArrecadado).
			Mul(decimal.NewFromInt(100))
	}

	for _, entry := range combinacoes {
		stats.CombinacoesMaisSorteadas = append(stats.CombinacoesMaisSorteadas, *entry)
	}
	sort.Slice(stats.CombinacoesMaisSorteadas, func(i, j int) bool {
		return stats.CombinacoesMaisSorteadas[i].Vezes > stats.CombinacoesMaisSorteadas[j].Vezes
	})
	if len(stats.CombinacoesMaisSorteadas) > 10 {
		stats.CombinacoesMaisSorteadas = stats.CombinacoesMaisSorteadas[:10]
	}

	for numero, vezes := range numeros {
		stats.NumerosMaisSorteados = append(stats.NumerosMaisSorteados, domain.NumeroSorteado{Numero: numero, Vezes: vezes})
	}
	sort.Slice(stats.NumerosMaisSorteados, func(i, j int) bool {
		if stats.NumerosMaisSorteados[i].Vezes == stats.NumerosMaisSorteados[j].Vezes {
			return stats.NumerosMaisSorteados[i].Numero < stats.NumerosMaisSorteados[j].Numero
		}
		return stats.NumerosMaisSorteados[i].Vezes > stats.NumerosMaisSorteados[j].Vezes
	})
	if len(stats.NumerosMaisSorteados) > 20 {
		stats.NumerosMaisSorteados = stats.NumerosMaisSorteados[:20]
	}

	return stats
}

// TriggerDraw resolves the draw for the given date (today when empty):
// random numbers are drawn, winners are credited, everyone else loses.
func (s *Store) TriggerDraw(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return newError(http.StatusBadRequest, "Formato de data inválido. Use YYYY-MM-DD")
	}

	sorteio := s.sorteioForDateLocked(date)
	if sorteio.Status != domain.SorteioAberto {
		return newError(http.StatusBadRequest, "Sorteio já foi realizado")
	}

	sorteio.NumerosSorteados = s.drawNumbersLocked()
	sorteio.Status = domain.SorteioSorteado
	sorteio.DataSorteioRealizado = s.now().Format(time.RFC3339)

	if s.betting.Mode == config.ModeSimples {
		sorteio.PremioTotal = premioSimples
	} else {
		sorteio.PremioTotal = sorteio.TotalArrecadado.Mul(taxaPremioDupla)
	}

	s.finalizeLocked(sorteio)
	return nil
}

// finalizeLocked settles every bet of the draw and credits the winners.
func (s *Store) finalizeLocked(sorteio *domain.Sorteio) {
	ganhadoras := s.apostasGanhadorasLocked(sorteio)

	var premio decimal.Decimal
	if len(ganhadoras) > 0 {
		premio = sorteio.PremioTotal.Div(decimal.NewFromInt(int64(len(ganhadoras))))
	}

	winners := make(map[int]bool, len(ganhadoras))
	for _, aposta := range ganhadoras {
		winners[aposta.ID] = true
		aposta.Status = domain.ApostaGanhadora

		ownerID := s.apostaOwner[aposta.ID]
		s.users[ownerID].user.Saldo = s.users[ownerID].user.Saldo.Add(premio)
		s.recordTransacaoLocked(ownerID, domain.TransacaoCredito, premio, "Prêmio do sorteio")
	}

	for _, id := range s.apostasSeq {
		aposta := s.apostas[id]
		if aposta.SorteioID == sorteio.ID && !winners[aposta.ID] {
			aposta.Status = domain.ApostaPerdedora
		}
	}

	sorteio.Status = domain.SorteioFinalizado
}

// apostasGanhadorasLocked returns the bets matching the drawn numbers.
func (s *Store) apostasGanhadorasLocked(sorteio *domain.Sorteio) []*domain.Aposta {
	if len(sorteio.NumerosSorteados) == 0 {
		return nil
	}

	key := combinationKey(sorteio.NumerosSorteados)
	var ganhadoras []*domain.Aposta
	for _, id := range s.apostasSeq {
		aposta := s.apostas[id]
		if aposta.SorteioID == sorteio.ID && combinationKey(aposta.NumerosEscolhidos) == key {
			ganhadoras = append(ganhadoras, aposta)
		}
	}
	return ganhadoras
}

// drawNumbersLocked picks the mode's count of distinct random numbers.
func (s *Store) drawNumbersLocked() []int {
	count := s.betting.RequiredCount()
	max := s.betting.MaxNumber()

	picked := make(map[int]bool, count)
	numeros := make([]int, 0, count)
	for len(numeros) < count {
		n := s.rng.Intn(max) + 1
		if !picked[n] {
			picked[n] = true
			numeros = append(numeros, n)
		}
	}
	sort.Ints(numeros)
	return numeros
}

// SchedulerStatus mimics the real backend's daily 20:00 draw schedule.
func (s *Store) SchedulerStatus() *domain.SchedulerStatus {
	now := s.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}

	return &domain.SchedulerStatus{
		Ativo:           true,
		HorarioSorteio:  "20:00",
		ProximaExecucao: next.Format(time.RFC3339),
	}
}

// AdminStatistics aggregates backend-wide figures.
func (s *Store) AdminStatistics() *domain.AdminStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.AdminStatistics{TotalUsuarios: len(s.users)}

	hoje := s.now().Format(dateLayout)
	for _, sorteio := range s.sorteios {
		if sorteio.Status == domain.SorteioAberto {
			stats.SorteiosAbertos++
		}
		if sorteio.DataSorteio == hoje {
			stats.ApostasHoje = sorteio.TotalApostas
			stats.ArrecadadoHoje = sorteio.TotalArrecadado
		}
	}
	return stats
}

func combinationKey(numeros []int) string {
	sorted := append([]int(nil), numeros...)
	sort.Ints(sorted)

	key := make([]byte, 0, len(sorted)*4)
	for _, n := range sorted {
		key = append(key, byte(n>>8), byte(n), ',')
	}
	return string(key)
}
