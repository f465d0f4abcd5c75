// Пакет odoo — адаптер авторитетного хранилища заказов: Odoo ERP по JSON-RPC.
// Корзина — sale.order в состоянии draft, продажа — sale.order.line
// подтверждённого заказа (state ∈ {sale, done}).
package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paquirobles/cuadros-reserve/pkg/metrics"
)

// Config — параметры подключения к Odoo.
type Config struct {
	BaseURL  string        // например, http://odoo:8069
	DB       string        // имя базы
	Username string        // технический пользователь
	APIKey   string        // API-ключ (вместо пароля)
	Timeout  time.Duration // таймаут одного вызова
}

// Client — минимальный JSON-RPC клиент Odoo (endpoint /jsonrpc, execute_kw).
// Аутентификация ленивая: uid запрашивается при первом вызове и переиспользуется.
type Client struct {
	cfg   Config
	httpc *http.Client

	reqID atomic.Int64

	authMu sync.Mutex
	uid    int64 // 0 — ещё не аутентифицированы
}

// NewClient — конструктор клиента.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: timeout},
	}
}

// rpcRequest/rpcResponse — обёртки протокола JSON-RPC 2.0, который говорит Odoo.
type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Message string `json:"message"`
	} `json:"data"`
}

func (e *rpcError) Error() string {
	if e.Data.Message != "" {
		return fmt.Sprintf("odoo rpc error %d: %s", e.Code, e.Data.Message)
	}
	return fmt.Sprintf("odoo rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call — один JSON-RPC вызов; result декодируется в out (если out != nil).
func (c *Client) call(ctx context.Context, service, method string, args []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      c.reqID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/jsonrpc", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("odoo call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read rpc response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("odoo http status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("decode rpc result: %w", err)
		}
	}
	return nil
}

// authenticate — получает uid технического пользователя (однократно).
func (c *Client) authenticate(ctx context.Context) (int64, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.uid != 0 {
		return c.uid, nil
	}

	var uid int64
	err := c.call(ctx, "common", "authenticate",
		[]any{c.cfg.DB, c.cfg.Username, c.cfg.APIKey, map[string]any{}}, &uid)
	if err != nil {
		return 0, fmt.Errorf("odoo authenticate: %w", err)
	}
	if uid == 0 {
		return 0, fmt.Errorf("odoo authenticate: invalid credentials")
	}
	c.uid = uid
	return uid, nil
}

// executeKw — execute_kw по модели: searchRead/create/unlink ходят через него.
func (c *Client) executeKw(ctx context.Context, model, method string, args []any, kwargs map[string]any, out any) error {
	uid, err := c.authenticate(ctx)
	if err != nil {
		metrics.StoreRequests.WithLabelValues(method, "error").Inc()
		return err
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	callErr := c.call(ctx, "object", "execute_kw",
		[]any{c.cfg.DB, uid, c.cfg.APIKey, model, method, args, kwargs}, out)
	if callErr != nil {
		metrics.StoreRequests.WithLabelValues(method, "error").Inc()
		return callErr
	}
	metrics.StoreRequests.WithLabelValues(method, "ok").Inc()
	return nil
}

// searchRead — поиск записей модели с выборкой полей.
func (c *Client) searchRead(ctx context.Context, model string, filter []any, fields []string, out any) error {
	return c.executeKw(ctx, model, "search_read",
		[]any{filter}, map[string]any{"fields": fields}, out)
}

// searchCount — количество записей модели по фильтру.
func (c *Client) searchCount(ctx context.Context, model string, filter []any) (int, error) {
	var n int
	if err := c.executeKw(ctx, model, "search_count", []any{filter}, nil, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// create — создание записи, возвращает id.
func (c *Client) create(ctx context.Context, model string, values map[string]any) (int64, error) {
	var id int64
	if err := c.executeKw(ctx, model, "create", []any{values}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// unlink — удаление записей по id (пакетный примитив хранилища).
func (c *Client) unlink(ctx context.Context, model string, ids []int64) error {
	var ok bool
	return c.executeKw(ctx, model, "unlink", []any{ids}, nil, &ok)
}
