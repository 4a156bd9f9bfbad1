package lottery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/domain"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type clientImpl struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

// NewClient creates a LotteryAPI bound to a fixed backend origin. The
// session cookie issued on login is held in the client's jar and attached
// to every subsequent call automatically. No retries are performed; a
// failed request requires an explicit repeated user action.
func NewClient(cfg config.APIConfig, log *logger.Logger) (domain.LotteryAPI, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		logger: log,
	}, nil
}

func (c *clientImpl) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.sendRequest(ctx, http.MethodPost, "/auth/register", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.sendRequest(ctx, http.MethodPost, "/auth/login", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) Logout(ctx context.Context) error {
	return c.sendRequest(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *clientImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	var resp domain.AuthResponse
	err := c.sendRequest(ctx, http.MethodGet, "/auth/me", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *clientImpl) Profile(ctx context.Context) (*domain.User, error) {
	var resp domain.AuthResponse
	err := c.sendRequest(ctx, http.MethodGet, "/user/perfil", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *clientImpl) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error) {
	var resp domain.AuthResponse
	err := c.sendRequest(ctx, http.MethodPut, "/user/perfil", req, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *clientImpl) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	return c.sendRequest(ctx, http.MethodPut, "/user/alterar-senha", req, nil)
}

func (c *clientImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	var resp struct {
		Saldo decimal.Decimal `json:"saldo"`
	}
	err := c.sendRequest(ctx, http.MethodGet, "/user/saldo", nil, &resp)
	if err != nil {
		return decimal.Zero, err
	}
	return resp.Saldo, nil
}

func (c *clientImpl) AddBalance(ctx context.Context, valor decimal.Decimal) (*domain.AddBalanceResponse, error) {
	body := map[string]decimal.Decimal{"valor": valor}
	var resp domain.AddBalanceResponse
	err := c.sendRequest(ctx, http.MethodPost, "/user/adicionar-saldo", body, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) TransactionHistory(ctx context.Context, page, perPage int) (*domain.TransacaoPage, error) {
	path := fmt.Sprintf("/user/historico-transacoes?page=%d&per_page=%d", page, perPage)
	var resp domain.TransacaoPage
	err := c.sendRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) PlaceBet(ctx context.Context, numeros []int) (*domain.PlaceBetResponse, error) {
	// Single-number mode sends a scalar, two-number mode sends the pair.
	var body any
	if len(numeros) == 1 {
		body = map[string]int{"numero": numeros[0]}
	} else {
		body = map[string][]int{"numeros": numeros}
	}

	var resp domain.PlaceBetResponse
	err := c.sendRequest(ctx, http.MethodPost, "/apostas/fazer-aposta", body, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) MyBets(ctx context.Context, page, perPage int) (*domain.ApostaPage, error) {
	path := fmt.Sprintf("/apostas/minhas-apostas?page=%d&per_page=%d", page, perPage)
	var resp domain.ApostaPage
	err := c.sendRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) TodayBets(ctx context.Context) (*domain.TodayBetsResponse, error) {
	var resp domain.TodayBetsResponse
	err := c.sendRequest(ctx, http.MethodGet, "/apostas/apostas-hoje", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) AvailableNumbers(ctx context.Context) (*domain.AvailableNumbersResponse, error) {
	var resp domain.AvailableNumbersResponse
	err := c.sendRequest(ctx, http.MethodGet, "/apostas/numeros-disponiveis", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) CurrentDraw(ctx context.Context) (*domain.CurrentDrawResponse, error) {
	var resp domain.CurrentDrawResponse
	err := c.sendRequest(ctx, http.MethodGet, "/sorteios/sorteio-atual", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) DrawHistory(ctx context.Context, page, perPage int) (*domain.SorteioPage, error) {
	path := fmt.Sprintf("/sorteios/historico?page=%d&per_page=%d", page, perPage)
	var resp domain.SorteioPage
	err := c.sendRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) DrawResult(ctx context.Context, sorteioID int) (*domain.ResultadoSorteio, error) {
	var resp struct {
		Resultado *domain.ResultadoSorteio `json:"resultado"`
	}
	err := c.sendRequest(ctx, http.MethodGet, fmt.Sprintf("/sorteios/resultado/%d", sorteioID), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Resultado, nil
}

func (c *clientImpl) Statistics(ctx context.Context) (*domain.Estatisticas, error) {
	var resp domain.Estatisticas
	err := c.sendRequest(ctx, http.MethodGet, "/sorteios/estatisticas", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) TriggerDraw(ctx context.Context, dataSorteio string) error {
	body := map[string]string{}
	if dataSorteio != "" {
		body["data_sorteio"] = dataSorteio
	}
	return c.sendRequest(ctx, http.MethodPost, "/admin/executar-sorteio", body, nil)
}

func (c *clientImpl) SchedulerStatus(ctx context.Context) (*domain.SchedulerStatus, error) {
	var resp domain.SchedulerStatus
	err := c.sendRequest(ctx, http.MethodGet, "/admin/status-scheduler", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *clientImpl) AdminStatistics(ctx context.Context) (*domain.AdminStatistics, error) {
	var resp domain.AdminStatistics
	err := c.sendRequest(ctx, http.MethodGet, "/admin/estatisticas-admin", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// method to send HTTP requests and normalize responses
func (c *clientImpl) sendRequest(ctx context.Context, method, path string, bodyData any, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return c.fail(method, path, domain.NewTransportError("", fmt.Errorf("failed to marshal request body: %w", err)))
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return c.fail(method, path, domain.NewTransportError("", fmt.Errorf("failed to create request: %w", err)))
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(method, path, domain.NewTransportError("", fmt.Errorf("http request failed: %w", err)))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(method, path, domain.NewTransportError("", fmt.Errorf("failed to read response: %w", err)))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		// The error message comes from the server payload when present.
		_ = json.Unmarshal(respBody, &errResp)
		return c.fail(method, path, domain.NewRequestError(errResp.Error, resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return c.fail(method, path, domain.NewTransportError("", fmt.Errorf("failed to decode response: %w", err)))
		}
	}

	return nil
}

// fail logs the failure before re-raising it to the caller. The client
// never swallows errors and never retries.
func (c *clientImpl) fail(method, path string, err *domain.AppError) error {
	c.logger.Error("api request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("kind", string(err.Kind)),
		zap.Int("status", err.HTTPStatus),
		zap.Error(err))
	return err
}
