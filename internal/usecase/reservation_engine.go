package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// Проверка, что ReservationEngine удовлетворяет порту транспортного слоя.
var _ ports.CartService = (*ReservationEngine)(nil)

// Limits — конфигурируемые пределы admission-контроля.
type Limits struct {
	// MaxHoldersPerProduct — сколько разных покупателей могут одновременно
	// держать один уникальный товар в корзинах.
	MaxHoldersPerProduct int
	// MaxProductsPerOwner — предел строк в корзине одного покупателя.
	MaxProductsPerOwner int
}

// ReservationEngine — ядро admission-контроля дефицитного инвентаря.
//
// Читает оба кэша (с ленивым пересчётом из хранилища на промахе), принимает
// решение допустить/отклонить, на допуске пишет через адаптер хранилища и
// инвалидирует затронутые записи кэшей. Сбой записи не трогает кэш вовсе:
// следующее чтение перепроверит истину, а не доверится догадке.
//
// Движок намеренно не сериализует конкурирующие добавления одного товара:
// мягкое пере-допущение до лимита — ожидаемое бизнес-состояние, строго
// эксклюзивна только необратимая продажа.
type ReservationEngine struct {
	store       ports.OrderStore
	statusCache ports.StatusCache
	cartCache   ports.CartCountCache
	soldChecker ports.SoldChecker
	validator   ports.ConfirmationValidator
	log         ports.Logger
	limits      Limits

	// Реестр проданного: isSold == true терминально на всю жизнь процесса,
	// даже если запись кэша истекла или была вытеснена.
	soldMu sync.RWMutex
	sold   map[string]struct{}
}

// NewReservationEngine — DI-конструктор.
func NewReservationEngine(
	store ports.OrderStore,
	statusCache ports.StatusCache,
	cartCache ports.CartCountCache,
	soldChecker ports.SoldChecker,
	validator ports.ConfirmationValidator,
	log ports.Logger,
	limits Limits,
) *ReservationEngine {
	if limits.MaxHoldersPerProduct <= 0 {
		limits.MaxHoldersPerProduct = 3
	}
	if limits.MaxProductsPerOwner <= 0 {
		limits.MaxProductsPerOwner = 10
	}
	return &ReservationEngine{
		store:       store,
		statusCache: statusCache,
		cartCache:   cartCache,
		soldChecker: soldChecker,
		validator:   validator,
		log:         log,
		limits:      limits,
		sold:        make(map[string]struct{}),
	}
}

// AddProduct — положить уникальный товар в корзину владельца.
// Шаги:
//  1. найти активную корзину владельца или создать новую;
//  2. лимит корзины владельца (кэш размера корзины) → LimitReached;
//  3. доступность товара (кэш доступности) → AlreadySold / HighDemand;
//  4. дубль в собственной корзине → DuplicateInCart;
//  5. запись строки через адаптер; количество всегда 1;
//  6. инвалидация обоих кэшей; подсказка о конкуренции из пред-записного счётчика.
func (e *ReservationEngine) AddProduct(ctx context.Context, ownerID, productID string) (*domain.AddResult, error) {
	const op = "add"

	order, err := e.store.FindDraftOrder(ctx, ownerID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "find draft order", err)
	}
	var orderID string
	if order != nil {
		orderID = order.ID
	} else {
		orderID, err = e.store.CreateDraftOrder(ctx, ownerID)
		if err != nil {
			return nil, e.backendFailure(ctx, op, "create draft order", err)
		}
	}

	count, err := e.ownerCount(ctx, ownerID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "count owner lines", err)
	}
	if count >= e.limits.MaxProductsPerOwner {
		return nil, e.reject(ctx, op, domain.ErrLimitReached,
			"owner=%s count=%d limit=%d", ownerID, count, e.limits.MaxProductsPerOwner)
	}

	status, err := e.productStatus(ctx, productID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "resolve product status", err)
	}
	if status.Sold {
		return nil, e.reject(ctx, op, domain.ErrAlreadySold, "product=%s", productID)
	}
	if status.InCartCount >= e.limits.MaxHoldersPerProduct {
		return nil, e.reject(ctx, op, domain.ErrHighDemand,
			"product=%s holders=%d limit=%d", productID, status.InCartCount, e.limits.MaxHoldersPerProduct)
	}

	existing, err := e.store.FindLine(ctx, orderID, productID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "find existing line", err)
	}
	if existing != nil {
		return nil, e.reject(ctx, op, domain.ErrDuplicateInCart, "owner=%s product=%s", ownerID, productID)
	}

	lineID, err := e.store.CreateLine(ctx, orderID, productID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "create line", err)
	}

	e.statusCache.Invalidate(ctx, productID)
	e.cartCache.Invalidate(ctx, ownerID)

	e.admitted(op)
	e.log.Infof(ctx, "product reserved owner=%s product=%s line=%s holders_before=%d",
		ownerID, productID, lineID, status.InCartCount)

	return &domain.AddResult{
		OrderID: orderID,
		LineID:  lineID,
		Message: competitionHint(status.InCartCount),
	}, nil
}

// RemoveProduct — убрать строку из корзины владельца.
// Цепочка авторизации как в хранилище: строка → её заказ → заказ должен быть
// draft-корзиной именно этого владельца.
func (e *ReservationEngine) RemoveProduct(ctx context.Context, ownerID, lineID string) error {
	const op = "remove"

	line, err := e.store.GetLine(ctx, lineID)
	if err != nil {
		return e.backendFailure(ctx, op, "get line", err)
	}
	if line == nil {
		return e.reject(ctx, op, domain.ErrNotFound, "line=%s", lineID)
	}

	order, err := e.store.GetOrder(ctx, line.OrderID)
	if err != nil {
		return e.backendFailure(ctx, op, "get order", err)
	}
	if order == nil || !order.IsDraft() || order.OwnerID != ownerID {
		return e.reject(ctx, op, domain.ErrNotAuthorized, "owner=%s line=%s", ownerID, lineID)
	}

	if err := e.store.DeleteLine(ctx, lineID); err != nil {
		return e.backendFailure(ctx, op, "delete line", err)
	}

	e.statusCache.Invalidate(ctx, line.ProductID)
	e.cartCache.Invalidate(ctx, ownerID)

	e.admitted(op)
	e.log.Infof(ctx, "line removed owner=%s line=%s product=%s", ownerID, lineID, line.ProductID)
	return nil
}

// ClearCart — опустошить корзину владельца. Идемпотентно: отсутствие корзины
// или строк — тоже успех. Строки удаляются одним пакетным вызовом хранилища;
// при его сбое кэш не трогается вовсе.
func (e *ReservationEngine) ClearCart(ctx context.Context, ownerID string) error {
	const op = "clear"

	order, err := e.store.FindDraftOrder(ctx, ownerID)
	if err != nil {
		return e.backendFailure(ctx, op, "find draft order", err)
	}
	if order == nil {
		e.admitted(op)
		return nil
	}

	lines, err := e.store.ListLines(ctx, order.ID)
	if err != nil {
		return e.backendFailure(ctx, op, "list lines", err)
	}
	if len(lines) == 0 {
		e.admitted(op)
		return nil
	}

	lineIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		lineIDs = append(lineIDs, line.ID)
	}
	if err := e.store.DeleteLines(ctx, lineIDs); err != nil {
		return e.backendFailure(ctx, op, "delete lines", err)
	}

	for _, line := range lines {
		e.statusCache.Invalidate(ctx, line.ProductID)
	}
	e.cartCache.Invalidate(ctx, ownerID)

	e.admitted(op)
	e.log.Infof(ctx, "cart cleared owner=%s lines=%d", ownerID, len(lines))
	return nil
}

// GetCart — корзина владельца со строками, обогащёнными живым статусом товара.
func (e *ReservationEngine) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	const op = "get_cart"

	order, err := e.store.FindDraftOrder(ctx, ownerID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "find draft order", err)
	}
	if order == nil {
		return &domain.Cart{}, nil
	}

	lines, err := e.store.ListLines(ctx, order.ID)
	if err != nil {
		return nil, e.backendFailure(ctx, op, "list lines", err)
	}

	cart := &domain.Cart{Order: order, Lines: make([]domain.CartLine, 0, len(lines))}
	for _, line := range lines {
		status, stErr := e.productStatus(ctx, line.ProductID)
		if stErr != nil {
			return nil, e.backendFailure(ctx, op, "resolve product status", stErr)
		}
		cart.Lines = append(cart.Lines, domain.CartLine{OrderLine: line, Status: status})
	}
	return cart, nil
}

// ProductAvailability — снимок доступности товара (кэш либо пересчёт).
func (e *ReservationEngine) ProductAvailability(ctx context.Context, productID string) (domain.ProductStatus, error) {
	status, err := e.productStatus(ctx, productID)
	if err != nil {
		return domain.ProductStatus{}, e.backendFailure(ctx, "availability", "resolve product status", err)
	}
	return status, nil
}

// SoldProducts — id всех проданных товаров (для фильтрации каталога).
func (e *ReservationEngine) SoldProducts(ctx context.Context) ([]string, error) {
	ids, err := e.store.ListSoldProductIDs(ctx)
	if err != nil {
		return nil, e.backendFailure(ctx, "sold_products", "list sold products", err)
	}
	for _, id := range ids {
		e.markSold(id)
	}
	return ids, nil
}

// ApplyConfirmation — обработка события подтверждения продажи из Kafka (raw JSON).
// Шаги: строгий парсинг → валидация (ErrInvalidConfirmation при проблемах) →
// товары закрепляются как проданные, их записи доступности инвалидируются.
func (e *ReservationEngine) ApplyConfirmation(ctx context.Context, raw []byte) error {
	ev, err := decodeConfirmation(raw)
	if err != nil {
		e.log.Warnf(ctx, "invalid confirmation payload err=%v", err)
		return err
	}

	if err := e.validator.Validate(ctx, ev); err != nil {
		e.log.Warnf(ctx, "confirmation validation failed order=%s err=%v", ev.OrderID, err)
		return err
	}

	for _, productID := range ev.ProductIDs {
		e.markSold(productID)
		e.statusCache.Invalidate(ctx, productID)
	}

	e.log.Infof(ctx, "sale confirmed order=%s state=%s products=%d",
		ev.OrderID, ev.State, len(ev.ProductIDs))
	return nil
}

// MarkedSold — наблюдалось ли терминальное состояние для товара (для тестов и отладки).
func (e *ReservationEngine) MarkedSold(productID string) bool {
	return e.isPinnedSold(productID)
}

func competitionHint(holdersBefore int) string {
	switch holdersBefore {
	case 0:
		return "you are the first to reserve this piece"
	case 1:
		return "1 other shopper currently holds this piece"
	default:
		return fmt.Sprintf("%d other shoppers currently hold this piece", holdersBefore)
	}
}
