package domain

import (
	"github.com/shopspring/decimal"
)

// SorteioStatus is the lifecycle state of a draw.
type SorteioStatus string

const (
	SorteioAberto     SorteioStatus = "aberto"
	SorteioSorteado   SorteioStatus = "sorteado"
	SorteioFinalizado SorteioStatus = "finalizado"
)

// Sorteio represents a scheduled daily draw. The client never mutates a
// draw; every fetch replaces the cached copy wholesale.
type Sorteio struct {
	ID                   int             `json:"id"`
	DataSorteio          string          `json:"data_sorteio"`
	Status               SorteioStatus   `json:"status"`
	NumerosSorteados     []int           `json:"numeros_sorteados"`
	TotalArrecadado      decimal.Decimal `json:"total_arrecadado"`
	PremioTotal          decimal.Decimal `json:"premio_total"`
	TotalApostas         int             `json:"total_apostas"`
	DataCriacao          string          `json:"data_criacao"`
	DataSorteioRealizado string          `json:"data_sorteio_realizado,omitempty"`
}

// Aberto reports whether the draw still accepts bets.
func (s *Sorteio) Aberto() bool {
	return s.Status == SorteioAberto
}

// Ganhador describes one winning bet inside a draw result.
type Ganhador struct {
	UsuarioNome       string          `json:"usuario_nome"`
	NumerosEscolhidos []int           `json:"numeros_escolhidos"`
	DataAposta        string          `json:"data_aposta"`
	PremioRecebido    decimal.Decimal `json:"premio_recebido"`
}

// ResultadoSorteio is the detailed outcome of a finalized draw.
type ResultadoSorteio struct {
	Sorteio
	Ganhadores      []Ganhador `json:"ganhadores"`
	TotalGanhadores int        `json:"total_ganhadores"`
}

// EstatisticasGerais aggregates lifetime draw figures.
type EstatisticasGerais struct {
	TotalSorteios   int             `json:"total_sorteios"`
	TotalApostas    int             `json:"total_apostas"`
	TotalArrecadado decimal.Decimal `json:"total_arrecadado"`
	TotalPremiado   decimal.Decimal `json:"total_premiado"`
	TaxaPremio      decimal.Decimal `json:"taxa_premio"`
}

// CombinacaoSorteada counts how often a number combination was drawn.
type CombinacaoSorteada struct {
	Numeros []int `json:"numeros"`
	Vezes   int   `json:"vezes"`
}

// NumeroSorteado counts how often an individual number was drawn.
type NumeroSorteado struct {
	Numero int `json:"numero"`
	Vezes  int `json:"vezes"`
}

// Estatisticas is the public statistics projection served by the backend.
type Estatisticas struct {
	Gerais                   EstatisticasGerais   `json:"estatisticas_gerais"`
	CombinacoesMaisSorteadas []CombinacaoSorteada `json:"combinacoes_mais_sorteadas"`
	NumerosMaisSorteados     []NumeroSorteado     `json:"numeros_mais_sorteados"`
}
