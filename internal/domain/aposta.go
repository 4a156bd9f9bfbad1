package domain

import (
	"github.com/shopspring/decimal"
)

// ApostaStatus is the lifecycle state of a bet.
type ApostaStatus string

const (
	ApostaAtiva     ApostaStatus = "ativa"
	ApostaGanhadora ApostaStatus = "ganhadora"
	ApostaPerdedora ApostaStatus = "perdedora"
)

// Aposta represents a wager on one or more numbers for a specific draw.
// Bets are created server-side only; the client never mutates one after
// creation except through a full refetch.
type Aposta struct {
	ID                int             `json:"id"`
	SorteioID         int             `json:"sorteio_id"`
	NumerosEscolhidos []int           `json:"numeros_escolhidos"`
	ValorAposta       decimal.Decimal `json:"valor_aposta"`
	Status            ApostaStatus    `json:"status"`
	DataCriacao       string          `json:"data_criacao"`
	Sorteio           *Sorteio        `json:"sorteio,omitempty"`
}

// Comprovante is the ephemeral confirmation of a just-placed bet. It lives
// only for the lifetime of the receipt screen.
type Comprovante struct {
	ID          int    `json:"id"`
	Data        string `json:"data"`
	Usuario     string `json:"usuario"`
	Numeros     []int  `json:"numeros"`
	Valor       string `json:"valor"`
	SorteioData string `json:"sorteio_data"`
}
