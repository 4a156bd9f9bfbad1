package domain

import (
	"github.com/shopspring/decimal"
)

// User represents the authenticated player as returned by the backend.
// The backend is the authority on every field; the client only caches it.
type User struct {
	ID       int             `json:"id"`
	Nome     string          `json:"nome"`
	Email    string          `json:"email"`
	Telefone string          `json:"telefone"`
	Saldo    decimal.Decimal `json:"saldo"`
}

// HasBalanceFor reports whether the cached balance covers the given stake.
// Advisory only, the server re-validates on placement.
func (u *User) HasBalanceFor(stake decimal.Decimal) bool {
	return u.Saldo.GreaterThanOrEqual(stake)
}

// Transacao is one entry of the user's balance ledger as exposed by the
// transaction history endpoint.
type Transacao struct {
	ID          int             `json:"id"`
	Tipo        string          `json:"tipo"`
	Valor       decimal.Decimal `json:"valor"`
	Descricao   string          `json:"descricao"`
	DataCriacao string          `json:"data_criacao"`
}

// Transaction types used by the ledger.
const (
	TransacaoCredito = "credito"
	TransacaoDebito  = "debito"
)
