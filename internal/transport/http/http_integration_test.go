//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/paquirobles/cuadros-reserve/internal/cache/memory"
	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/testutil"
	rest "github.com/paquirobles/cuadros-reserve/internal/transport/http"
	"github.com/paquirobles/cuadros-reserve/internal/usecase"
	"github.com/paquirobles/cuadros-reserve/pkg/httpx"
	"github.com/paquirobles/cuadros-reserve/pkg/logger"
	"github.com/paquirobles/cuadros-reserve/pkg/validate"
)

// Сквозной стенд: настоящий движок и роутер, in-memory хранилище.
func newIntegrationServer(t *testing.T) (*testutil.FakeOrderStore, *usecase.ReservationEngine, *httptest.Server) {
	t.Helper()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	store := testutil.NewFakeOrderStore()
	engine := usecase.NewReservationEngine(
		store,
		cachemem.NewStatusCache(100, time.Minute),
		cachemem.NewCartCountCache(100, time.Minute),
		usecase.NewSoldChecker(store),
		validate.NewConfirmationValidator(),
		logg,
		usecase.Limits{},
	)

	h := rest.NewHandler(engine, logg)
	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return store, engine, ts
}

func doRequest(t *testing.T, method, url, owner string, body []byte) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body == nil {
		req, err = http.NewRequest(method, url, http.NoBody)
	} else {
		req, err = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)
	if owner != "" {
		req.Header.Set(httpx.HeaderOwnerID, owner)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// 1) Полный жизненный цикл: добавить → корзина → удалить → корзина пуста
func TestHTTP_CartLifecycle_E2E(t *testing.T) {
	_, _, ts := newIntegrationServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL+"/cart/items", "owner-1", []byte(`{"product_id":"cuadro-9"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var added domain.AddResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	require.NotEmpty(t, added.LineID)
	require.Contains(t, added.Message, "first")

	resp = doRequest(t, http.MethodGet, ts.URL+"/cart", "owner-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart domain.Cart
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "cuadro-9", cart.Lines[0].ProductID)

	resp = doRequest(t, http.MethodDelete, ts.URL+"/cart/items/"+added.LineID, "owner-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/cart", "owner-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cart = domain.Cart{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	require.Empty(t, cart.Lines)
}

// 2) Конкуренция за товар: четвёртый покупатель получает 409
func TestHTTP_HighDemand_E2E(t *testing.T) {
	_, _, ts := newIntegrationServer(t)

	for _, owner := range []string{"a", "b", "c"} {
		resp := doRequest(t, http.MethodPost, ts.URL+"/cart/items", owner, []byte(`{"product_id":"cuadro-1"}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, http.MethodPost, ts.URL+"/cart/items", "d", []byte(`{"product_id":"cuadro-1"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

// 3) Продажа терминальна: после подтверждения добавление отвечает 410,
// а товар виден в списке проданных
func TestHTTP_SoldIsTerminal_E2E(t *testing.T) {
	store, engine, ts := newIntegrationServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL+"/cart/items", "buyer", []byte(`{"product_id":"cuadro-5"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var added domain.AddResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	resp.Body.Close()

	// подтверждение продажи приходит событием, как из Kafka
	store.ConfirmOrder(added.OrderID)
	raw := []byte(`{"order_id":"` + added.OrderID + `","state":"sale","product_ids":["cuadro-5"]}`)
	require.NoError(t, engine.ApplyConfirmation(context.Background(), raw))

	resp = doRequest(t, http.MethodPost, ts.URL+"/cart/items", "late-buyer", []byte(`{"product_id":"cuadro-5"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusGone, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/products/sold", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sold struct {
		ProductIDs []string `json:"product_ids"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sold))
	require.Contains(t, sold.ProductIDs, "cuadro-5")
}

// 4) Недоступное хранилище → 503, корзина не меняется
func TestHTTP_BackendDown_E2E(t *testing.T) {
	store, _, ts := newIntegrationServer(t)

	store.FailNext(1)
	resp := doRequest(t, http.MethodPost, ts.URL+"/cart/items", "owner-1", []byte(`{"product_id":"cuadro-2"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/cart", "owner-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart domain.Cart
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	require.Empty(t, cart.Lines)
}
