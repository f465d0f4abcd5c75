package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paquirobles/cuadros-reserve/internal/cache/memory"
	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/testutil"
	"github.com/paquirobles/cuadros-reserve/pkg/validate"
)

// Сценарные тесты движка: настоящий LRU-кэш + in-memory хранилище,
// замокано только то, чего нет в процессе (сеть, ERP).

type engineEnv struct {
	engine *ReservationEngine
	store  *testutil.FakeOrderStore
}

func newEngineEnv(t *testing.T, limits Limits) *engineEnv {
	t.Helper()
	store := testutil.NewFakeOrderStore()
	return &engineEnv{
		engine: NewReservationEngine(
			store,
			memory.NewStatusCache(100, time.Minute),
			memory.NewCartCountCache(100, time.Minute),
			NewSoldChecker(store),
			validate.NewConfirmationValidator(),
			testutil.NopLogger{},
			limits,
		),
		store: store,
	}
}

func TestAddProduct_FirstReservation(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)
	require.NotEmpty(t, res.LineID)
	require.Equal(t, "you are the first to reserve this piece", res.Message)

	// строка реально появилась в хранилище
	line, err := env.store.GetLine(ctx, res.LineID)
	require.NoError(t, err)
	require.NotNil(t, line)
	require.Equal(t, "cuadro-1", line.ProductID)
}

func TestAddProduct_CompetitionHintGrowsWithHolders(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, "you are the first to reserve this piece", res.Message)

	res, err = env.engine.AddProduct(ctx, "bob", "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, "1 other shopper currently holds this piece", res.Message)

	res, err = env.engine.AddProduct(ctx, "eve", "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, "2 other shoppers currently hold this piece", res.Message)
}

func TestAddProduct_HighDemand_CapsConcurrentHolders(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	for _, owner := range []string{"ana", "bob", "eve"} {
		_, err := env.engine.AddProduct(ctx, owner, "cuadro-1")
		require.NoError(t, err)
	}

	_, err := env.engine.AddProduct(ctx, "dan", "cuadro-1")
	require.ErrorIs(t, err, domain.ErrHighDemand)

	// один из держателей отпускает товар — место освобождается
	cart, err := env.engine.GetCart(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.NoError(t, env.engine.RemoveProduct(ctx, "ana", cart.Lines[0].ID))

	_, err = env.engine.AddProduct(ctx, "dan", "cuadro-1")
	require.NoError(t, err)
}

func TestAddProduct_OwnerLimit(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 2})
	ctx := context.Background()

	_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-2")
	require.NoError(t, err)

	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-3")
	require.ErrorIs(t, err, domain.ErrLimitReached)

	// после освобождения места добавление снова проходит
	require.NoError(t, env.engine.ClearCart(ctx, "ana"))
	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-3")
	require.NoError(t, err)
}

func TestAddProduct_DuplicateInCart(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)

	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.ErrorIs(t, err, domain.ErrDuplicateInCart)

	// дубль не породил вторую строку
	cart, err := env.engine.GetCart(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
}

func TestAddProduct_SoldIsTerminal(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)

	// продажа подтверждена в ERP
	env.store.ConfirmOrder(res.OrderID)

	_, err = env.engine.AddProduct(ctx, "bob", "cuadro-1")
	require.ErrorIs(t, err, domain.ErrAlreadySold)

	status, err := env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)
	require.True(t, status.Sold)
	require.False(t, status.Available(3))

	// повтор даёт тот же терминальный отказ
	_, err = env.engine.AddProduct(ctx, "bob", "cuadro-1")
	require.ErrorIs(t, err, domain.ErrAlreadySold)
}

func TestSoldPin_SurvivesCacheExpiry(t *testing.T) {
	store := testutil.NewFakeOrderStore()
	// нулевой TTL: каждая запись кэша протухает немедленно
	engine := NewReservationEngine(
		store,
		memory.NewStatusCache(100, time.Nanosecond),
		memory.NewCartCountCache(100, time.Nanosecond),
		NewSoldChecker(store),
		validate.NewConfirmationValidator(),
		testutil.NopLogger{},
		Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10},
	)
	ctx := context.Background()

	raw := []byte(`{"order_id":"77","state":"sale","product_ids":["cuadro-9"]}`)
	require.NoError(t, engine.ApplyConfirmation(ctx, raw))
	require.True(t, engine.MarkedSold("cuadro-9"))

	time.Sleep(time.Millisecond)

	// кэш давно пуст, но реестр держит терминальное состояние
	calls := store.Calls
	status, err := engine.ProductAvailability(ctx, "cuadro-9")
	require.NoError(t, err)
	require.True(t, status.Sold)
	require.Equal(t, calls, store.Calls, "pinned sold state must not hit the store")
}

func TestAddProduct_BackendFailure_LeavesCachesUntouched(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	env.store.FailNext(1)
	_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)

	// после восстановления хранилища всё работает с чистого листа
	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, "you are the first to reserve this piece", res.Message)
}

func TestRemoveProduct_AuthorizationChain(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)

	// чужая строка
	err = env.engine.RemoveProduct(ctx, "bob", res.LineID)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	// несуществующая строка
	err = env.engine.RemoveProduct(ctx, "ana", "999999")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// владелец удаляет свою — место освобождается
	require.NoError(t, env.engine.RemoveProduct(ctx, "ana", res.LineID))
	status, err := env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, 0, status.InCartCount)
}

func TestRemoveProduct_ConfirmedOrderLineIsProtected(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	env.store.ConfirmOrder(res.OrderID)

	// заказ больше не draft: строку подтверждённой продажи трогать нельзя
	err = env.engine.RemoveProduct(ctx, "ana", res.LineID)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestClearCart_Idempotent(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	// корзины ещё нет — всё равно успех
	require.NoError(t, env.engine.ClearCart(ctx, "ana"))

	_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-2")
	require.NoError(t, err)

	require.NoError(t, env.engine.ClearCart(ctx, "ana"))

	cart, err := env.engine.GetCart(ctx, "ana")
	require.NoError(t, err)
	require.Empty(t, cart.Lines)

	// повторная очистка пустой корзины — тоже успех
	require.NoError(t, env.engine.ClearCart(ctx, "ana"))

	// освобождённые товары снова доступны другим
	_, err = env.engine.AddProduct(ctx, "bob", "cuadro-1")
	require.NoError(t, err)
}

func TestGetCart_EnrichesLinesWithStatus(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	_, err = env.engine.AddProduct(ctx, "bob", "cuadro-1")
	require.NoError(t, err)

	cart, err := env.engine.GetCart(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, cart.Order)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "cuadro-1", cart.Lines[0].ProductID)
	require.Equal(t, 2, cart.Lines[0].Status.InCartCount)
	require.False(t, cart.Lines[0].Status.Sold)

	// пустая корзина — нулевое значение, не ошибка
	empty, err := env.engine.GetCart(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, empty.Order)
	require.Empty(t, empty.Lines)
}

func TestProductAvailability_ServedFromCache(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	_, err := env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)

	calls := env.store.Calls
	_, err = env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, calls, env.store.Calls, "second read must be a cache hit")
}

func TestAddProduct_InvalidatesAvailability(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	status, err := env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, 0, status.InCartCount)

	_, err = env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)

	// запись инвалидирована, следующее чтение видит нового держателя сразу,
	// не дожидаясь TTL
	status, err = env.engine.ProductAvailability(ctx, "cuadro-1")
	require.NoError(t, err)
	require.Equal(t, 1, status.InCartCount)
}

func TestSoldProducts_PinsEveryID(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	res, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
	require.NoError(t, err)
	env.store.ConfirmOrder(res.OrderID)

	ids, err := env.engine.SoldProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"cuadro-1"}, ids)
	require.True(t, env.engine.MarkedSold("cuadro-1"))
}

func TestApplyConfirmation(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	t.Run("valid event pins products", func(t *testing.T) {
		raw := []byte(`{"order_id":"41","state":"sale","product_ids":["cuadro-1","cuadro-2"]}`)
		require.NoError(t, env.engine.ApplyConfirmation(ctx, raw))
		require.True(t, env.engine.MarkedSold("cuadro-1"))
		require.True(t, env.engine.MarkedSold("cuadro-2"))

		_, err := env.engine.AddProduct(ctx, "ana", "cuadro-1")
		require.ErrorIs(t, err, domain.ErrAlreadySold)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := env.engine.ApplyConfirmation(ctx, []byte(`{"order_id":`))
		require.ErrorIs(t, err, validate.ErrInvalidConfirmation)
	})

	t.Run("unknown field", func(t *testing.T) {
		raw := []byte(`{"order_id":"41","state":"sale","product_ids":["x"],"extra":1}`)
		err := env.engine.ApplyConfirmation(ctx, raw)
		require.ErrorIs(t, err, validate.ErrInvalidConfirmation)
	})

	t.Run("trailing data", func(t *testing.T) {
		raw := []byte(`{"order_id":"41","state":"sale","product_ids":["x"]}{}`)
		err := env.engine.ApplyConfirmation(ctx, raw)
		require.ErrorIs(t, err, validate.ErrInvalidConfirmation)
	})

	t.Run("draft state rejected", func(t *testing.T) {
		raw := []byte(`{"order_id":"41","state":"draft","product_ids":["cuadro-3"]}`)
		err := env.engine.ApplyConfirmation(ctx, raw)
		require.ErrorIs(t, err, validate.ErrInvalidConfirmation)
		require.False(t, env.engine.MarkedSold("cuadro-3"))
	})
}

func TestConcurrentAdds_NeverExceedSoldInvariant(t *testing.T) {
	env := newEngineEnv(t, Limits{MaxHoldersPerProduct: 3, MaxProductsPerOwner: 10})
	ctx := context.Background()

	// 8 покупателей одновременно ломятся за одним товаром; допущено может
	// быть больше лимита (мягкое пере-допущение), но отказ — только ожидаемый
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		owner := fmt.Sprintf("owner-%d", i)
		go func() {
			_, err := env.engine.AddProduct(ctx, owner, "cuadro-1")
			errs <- err
		}()
	}

	admitted := 0
	for i := 0; i < 8; i++ {
		err := <-errs
		if err == nil {
			admitted++
			continue
		}
		require.True(t, errors.Is(err, domain.ErrHighDemand), "unexpected error: %v", err)
	}
	require.GreaterOrEqual(t, admitted, 1)
}
