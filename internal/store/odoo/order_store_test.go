package odoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeOdoo — минимальный JSON-RPC сервер: authenticate + execute_kw
// с ответами, задаваемыми по паре model/method.
type fakeOdoo struct {
	t *testing.T
	// результат по ключу "model.method"; вызовы фиксируются в calls
	results map[string]any
	calls   []fakeCall
}

type fakeCall struct {
	Model  string
	Method string
	Args   []any
}

func (f *fakeOdoo) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(f.t, "/jsonrpc", r.URL.Path)

		var req struct {
			Params struct {
				Service string `json:"service"`
				Method  string `json:"method"`
				Args    []any  `json:"args"`
			} `json:"params"`
			ID int64 `json:"id"`
		}
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

		reply := func(result any) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		}

		if req.Params.Service == "common" && req.Params.Method == "authenticate" {
			reply(2) // uid технического пользователя
			return
		}

		require.Equal(f.t, "object", req.Params.Service)
		require.Equal(f.t, "execute_kw", req.Params.Method)
		require.GreaterOrEqual(f.t, len(req.Params.Args), 6)

		model, _ := req.Params.Args[3].(string)
		method, _ := req.Params.Args[4].(string)
		callArgs, _ := req.Params.Args[5].([]any)
		f.calls = append(f.calls, fakeCall{Model: model, Method: method, Args: callArgs})

		result, ok := f.results[model+"."+method]
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": 200, "message": "unexpected call " + model + "." + method},
			})
			return
		}
		reply(result)
	}
}

func newTestStore(t *testing.T, results map[string]any) (*OrderStore, *fakeOdoo) {
	f := &fakeOdoo{t: t, results: results}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:  srv.URL,
		DB:       "cuadros",
		Username: "svc",
		APIKey:   "key",
		Timeout:  2 * time.Second,
	})
	return NewOrderStore(client), f
}

func TestFindDraftOrder_FoundAndMissing(t *testing.T) {
	store, _ := newTestStore(t, map[string]any{
		"sale.order.search_read": []map[string]any{
			{"id": 41, "name": "S00041", "state": "draft", "partner_id": []any{7, "Ana"}},
		},
	})

	order, err := store.FindDraftOrder(context.Background(), "7")
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Equal(t, "41", order.ID)
	require.Equal(t, "7", order.OwnerID)
	require.True(t, order.IsDraft())

	// пустой ответ → (nil, nil)
	store2, _ := newTestStore(t, map[string]any{
		"sale.order.search_read": []map[string]any{},
	})
	order, err = store2.FindDraftOrder(context.Background(), "7")
	require.NoError(t, err)
	require.Nil(t, order)
}

func TestCreateDraftOrder_And_CreateLine(t *testing.T) {
	store, fake := newTestStore(t, map[string]any{
		"sale.order.create":      41,
		"sale.order.line.create": 104,
	})

	orderID, err := store.CreateDraftOrder(context.Background(), "7")
	require.NoError(t, err)
	require.Equal(t, "41", orderID)

	lineID, err := store.CreateLine(context.Background(), "41", "9")
	require.NoError(t, err)
	require.Equal(t, "104", lineID)

	// строка создаётся с product_uom_qty = 1 (товар уникален)
	last := fake.calls[len(fake.calls)-1]
	require.Equal(t, "sale.order.line", last.Model)
	require.Equal(t, "create", last.Method)
	values, ok := last.Args[0].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, values["product_uom_qty"])
}

func TestListLines_MapsRefs(t *testing.T) {
	store, _ := newTestStore(t, map[string]any{
		"sale.order.line.search_read": []map[string]any{
			{"id": 104, "order_id": []any{41, "S00041"}, "product_id": []any{9, "Atardecer"}, "display_name": "Atardecer", "price_unit": 350.0},
			{"id": 105, "order_id": []any{41, "S00041"}, "product_id": false, "display_name": "?", "price_unit": 0.0},
		},
	})

	lines, err := store.ListLines(context.Background(), "41")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "104", lines[0].ID)
	require.Equal(t, "9", lines[0].ProductID)
	require.Equal(t, "Atardecer", lines[0].DisplayName)
	require.Equal(t, 350.0, lines[0].PriceUnit)
	// false-ссылка не роняет декодирование
	require.Equal(t, "0", lines[1].ProductID)
}

func TestCounts_And_SoldCheck(t *testing.T) {
	store, _ := newTestStore(t, map[string]any{
		"sale.order.line.search_count": 2,
	})

	n, err := store.CountDraftLinesForProduct(context.Background(), "9")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = store.CountDraftLinesForOwner(context.Background(), "7")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	sold, err := store.HasConfirmedLineForProduct(context.Background(), "9")
	require.NoError(t, err)
	require.True(t, sold)
}

func TestListSoldProductIDs_Dedup(t *testing.T) {
	store, _ := newTestStore(t, map[string]any{
		"sale.order.line.search_read": []map[string]any{
			{"id": 1, "product_id": []any{9, "a"}},
			{"id": 2, "product_id": []any{9, "a"}},
			{"id": 3, "product_id": []any{12, "b"}},
			{"id": 4, "product_id": false},
		},
	})

	ids, err := store.ListSoldProductIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"9", "12"}, ids)
}

func TestDeleteLines_BatchUnlink(t *testing.T) {
	store, fake := newTestStore(t, map[string]any{
		"sale.order.line.unlink": true,
	})

	require.NoError(t, store.DeleteLines(context.Background(), []string{"104", "105"}))

	last := fake.calls[len(fake.calls)-1]
	require.Equal(t, "unlink", last.Method)
	ids, ok := last.Args[0].([]any)
	require.True(t, ok)
	require.Len(t, ids, 2)

	// пустой пакет — no-op без похода в хранилище
	callsBefore := len(fake.calls)
	require.NoError(t, store.DeleteLines(context.Background(), nil))
	require.Equal(t, callsBefore, len(fake.calls))
}

func TestRPCError_Propagates(t *testing.T) {
	store, _ := newTestStore(t, map[string]any{})

	_, err := store.FindDraftOrder(context.Background(), "7")
	require.Error(t, err)
	require.Contains(t, err.Error(), "odoo rpc error")
}

func TestInvalidID_Rejected(t *testing.T) {
	store, fake := newTestStore(t, map[string]any{})

	_, err := store.FindDraftOrder(context.Background(), "not-a-number")
	require.Error(t, err)
	_, err = store.CreateLine(context.Background(), "41", "-1")
	require.Error(t, err)
	require.Empty(t, fake.calls, "invalid ids must not reach the store")
}
