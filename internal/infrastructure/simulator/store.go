package simulator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/shopspring/decimal"
)

// Error is a store failure carrying the HTTP status the handler should
// answer with. Message is the user-facing `error` field of the response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

type userRecord struct {
	user      domain.User
	senhaHash string
	admin     bool
}

// Store is the in-memory backing of the development backend. It implements
// the minimum of the real backend's behavior needed to honor the REST
// contract: stake debit, duplicate-bet rejection, random draw resolution
// and winner crediting. It is test tooling, not a production ledger.
type Store struct {
	mu      sync.Mutex
	betting config.BettingConfig
	rng     *rand.Rand
	now     func() time.Time

	users       map[int]*userRecord
	byEmail     map[string]int
	sorteios    map[int]*domain.Sorteio
	byDate      map[string]int
	apostas     map[int]*domain.Aposta
	apostasSeq  []int
	apostaOwner map[int]int
	transacoes  map[int][]domain.Transacao

	nextUserID      int
	nextSorteioID   int
	nextApostaID    int
	nextTransacaoID int
}

// NewStore creates an empty store for the given betting mode.
func NewStore(betting config.BettingConfig) *Store {
	return &Store{
		betting:         betting,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		now:             time.Now,
		users:           make(map[int]*userRecord),
		byEmail:         make(map[string]int),
		sorteios:        make(map[int]*domain.Sorteio),
		byDate:          make(map[string]int),
		apostas:         make(map[int]*domain.Aposta),
		apostaOwner:     make(map[int]int),
		transacoes:      make(map[int][]domain.Transacao),
		nextUserID:      1,
		nextSorteioID:   1,
		nextApostaID:    1,
		nextTransacaoID: 1,
	}
}

func hashSenha(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// Register creates an account. The first registered user is the
// administrator, mirroring the demo convention of the real backend.
func (s *Store) Register(req domain.RegisterRequest) (*domain.User, error) {
	if req.Nome == "" || req.Email == "" || req.Telefone == "" || req.Password == "" {
		return nil, newError(http.StatusBadRequest, "Dados incompletos")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[req.Email]; exists {
		return nil, newError(http.StatusBadRequest, "Email já cadastrado")
	}

	record := &userRecord{
		user: domain.User{
			ID:       s.nextUserID,
			Nome:     req.Nome,
			Email:    req.Email,
			Telefone: req.Telefone,
			Saldo:    decimal.NewFromFloat(2.0),
		},
		senhaHash: hashSenha(req.Password),
		admin:     s.nextUserID == 1,
	}
	s.nextUserID++

	s.users[record.user.ID] = record
	s.byEmail[record.user.Email] = record.user.ID

	user := record.user
	return &user, nil
}

// Authenticate validates credentials and returns the user.
func (s *Store) Authenticate(email, senha string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, newError(http.StatusUnauthorized, "Email ou senha incorretos")
	}
	record := s.users[id]
	if record.senhaHash != hashSenha(senha) {
		return nil, newError(http.StatusUnauthorized, "Email ou senha incorretos")
	}

	user := record.user
	return &user, nil
}

// GetUser returns the user by id.
func (s *Store) GetUser(id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getUserLocked(id)
}

func (s *Store) getUserLocked(id int) (*domain.User, error) {
	record, ok := s.users[id]
	if !ok {
		return nil, newError(http.StatusNotFound, "Usuário não encontrado")
	}
	user := record.user
	return &user, nil
}

// IsAdmin reports whether the user may call the admin endpoints.
func (s *Store) IsAdmin(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.users[id]
	return ok && record.admin
}

// UpdateProfile changes name and phone.
func (s *Store) UpdateProfile(id int, req domain.UpdateProfileRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return nil, newError(http.StatusNotFound, "Usuário não encontrado")
	}
	if req.Nome != "" {
		record.user.Nome = req.Nome
	}
	if req.Telefone != "" {
		record.user.Telefone = req.Telefone
	}

	user := record.user
	return &user, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *Store) ChangePassword(id int, req domain.ChangePasswordRequest) error {
	if req.NovaSenha == "" {
		return newError(http.StatusBadRequest, "Nova senha é obrigatória")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return newError(http.StatusNotFound, "Usuário não encontrado")
	}
	if record.senhaHash != hashSenha(req.SenhaAtual) {
		return newError(http.StatusBadRequest, "Senha atual incorreta")
	}

	record.senhaHash = hashSenha(req.NovaSenha)
	return nil
}

// AddBalance credits the account and records a ledger entry.
func (s *Store) AddBalance(id int, valor decimal.Decimal) (decimal.Decimal, error) {
	if !valor.IsPositive() {
		return decimal.Zero, newError(http.StatusBadRequest, "Valor deve ser maior que zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return decimal.Zero, newError(http.StatusNotFound, "Usuário não encontrado")
	}

	record.user.Saldo = record.user.Saldo.Add(valor)
	s.recordTransacaoLocked(id, domain.TransacaoCredito, valor, "Adição de saldo")

	return record.user.Saldo, nil
}

// Transactions pages through the user's ledger, newest first.
func (s *Store) Transactions(id, page, perPage int) (*domain.TransacaoPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return nil, newError(http.StatusNotFound, "Usuário não encontrado")
	}

	all := s.transacoes[id]
	reversed := make([]domain.Transacao, len(all))
	for i, t := range all {
		reversed[len(all)-1-i] = t
	}

	items, total, pages, current := paginate(reversed, page, perPage)
	return &domain.TransacaoPage{
		Transacoes:  items,
		Total:       total,
		Pages:       pages,
		CurrentPage: current,
	}, nil
}

func (s *Store) recordTransacaoLocked(userID int, tipo string, valor decimal.Decimal, descricao string) {
	s.transacoes[userID] = append(s.transacoes[userID], domain.Transacao{
		ID:          s.nextTransacaoID,
		Tipo:        tipo,
		Valor:       valor,
		Descricao:   descricao,
		DataCriacao: s.now().Format(time.RFC3339),
	})
	s.nextTransacaoID++
}

// paginate slices items the way the backend does: 1-based page, total item
// and page counts alongside.
func paginate[T any](items []T, page, perPage int) ([]T, int, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	total := len(items)
	pages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= total {
		return []T{}, total, pages, page
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return items[start:end], total, pages, page
}

func formatValor(v decimal.Decimal) string {
	return fmt.Sprintf("R$ %s", v.StringFixed(2))
}
