package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/pkg/metrics"
	"github.com/paquirobles/cuadros-reserve/pkg/validate"
)

// ownerCount — число строк в активной корзине владельца: кэш либо пересчёт
// из хранилища с последующим заполнением кэша.
func (e *ReservationEngine) ownerCount(ctx context.Context, ownerID string) (int, error) {
	if count, ok := e.cartCache.Get(ctx, ownerID); ok {
		return count, nil
	}
	count, err := e.store.CountDraftLinesForOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if err := e.cartCache.Set(ctx, ownerID, count); err != nil {
		e.log.Warnf(ctx, "cart count cache set failed owner=%s err=%v", ownerID, err)
	}
	return count, nil
}

// productStatus — статус доступности товара. Единственный путь пересчёта:
// реестр проданного → кэш → хранилище (продажа + счётчик держателей).
func (e *ReservationEngine) productStatus(ctx context.Context, productID string) (domain.ProductStatus, error) {
	if e.isPinnedSold(productID) {
		return domain.ProductStatus{Sold: true}, nil
	}
	if status, ok := e.statusCache.Get(ctx, productID); ok {
		return status, nil
	}

	sold, err := e.soldChecker.IsSold(ctx, productID)
	if err != nil {
		return domain.ProductStatus{}, err
	}
	status := domain.ProductStatus{Sold: sold}
	if !sold {
		count, err := e.store.CountDraftLinesForProduct(ctx, productID)
		if err != nil {
			return domain.ProductStatus{}, err
		}
		status.InCartCount = count
	}

	if err := e.statusCache.Set(ctx, productID, status); err != nil {
		e.log.Warnf(ctx, "status cache set failed product=%s err=%v", productID, err)
	}
	if sold {
		e.markSold(productID)
	}
	return status, nil
}

// markSold — закрепить терминальное состояние товара на жизнь процесса.
func (e *ReservationEngine) markSold(productID string) {
	e.soldMu.Lock()
	e.sold[productID] = struct{}{}
	e.soldMu.Unlock()
}

func (e *ReservationEngine) isPinnedSold(productID string) bool {
	e.soldMu.RLock()
	_, ok := e.sold[productID]
	e.soldMu.RUnlock()
	return ok
}

// backendFailure — сбой хранилища: лог, метрика и обёртка сентинелом,
// чтобы транспорт различал 503 через errors.Is.
func (e *ReservationEngine) backendFailure(ctx context.Context, op, step string, err error) error {
	metrics.ReservationDecisions.WithLabelValues(op, "backend_unavailable").Inc()
	e.log.Errorf(ctx, "order store failure op=%s step=%s err=%v", op, step, err)
	return errors.Join(domain.ErrBackendUnavailable, fmt.Errorf("%s: %w", step, err))
}

// reject — ожидаемый отказ политики: метрика и info-лог, не error-лог.
func (e *ReservationEngine) reject(ctx context.Context, op string, sentinel error, format string, args ...any) error {
	metrics.ReservationDecisions.WithLabelValues(op, outcomeLabel(sentinel)).Inc()
	e.log.Infof(ctx, "request rejected op=%s reason=%q %s", op, sentinel, fmt.Sprintf(format, args...))
	return sentinel
}

func (e *ReservationEngine) admitted(op string) {
	metrics.ReservationDecisions.WithLabelValues(op, "admitted").Inc()
}

func outcomeLabel(sentinel error) string {
	switch {
	case errors.Is(sentinel, domain.ErrLimitReached):
		return "limit_reached"
	case errors.Is(sentinel, domain.ErrAlreadySold):
		return "already_sold"
	case errors.Is(sentinel, domain.ErrHighDemand):
		return "high_demand"
	case errors.Is(sentinel, domain.ErrDuplicateInCart):
		return "duplicate_in_cart"
	case errors.Is(sentinel, domain.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(sentinel, domain.ErrNotFound):
		return "not_found"
	default:
		return "rejected"
	}
}

// decodeConfirmation — строгий разбор события подтверждения: неизвестные поля
// и мусор после объекта считаются ошибкой формата. Ошибки формата помечаются
// тем же сентинелом, что и ошибки валидации: consumer их коммитит и пропускает.
func decodeConfirmation(raw []byte) (*domain.SaleConfirmation, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var ev domain.SaleConfirmation
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", validate.ErrInvalidConfirmation, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", validate.ErrInvalidConfirmation)
	}
	return &ev, nil
}
