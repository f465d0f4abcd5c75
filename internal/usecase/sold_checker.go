package usecase

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// Проверка, что SoldChecker удовлетворяет порту.
var _ ports.SoldChecker = (*SoldChecker)(nil)

// SoldChecker — резолвер терминального состояния "продано": товар продан,
// если на него ссылается строка подтверждённого заказа.
//
// Сам ничего не кэширует: неверный ответ "не продан" — это oversell
// уникальной вещи, поэтому каждый вызов идёт в авторитетное хранилище.
// Кэширование результата происходит уровнем выше, в кэше доступности.
type SoldChecker struct {
	store ports.OrderStore
}

// NewSoldChecker — конструктор SoldChecker.
func NewSoldChecker(store ports.OrderStore) *SoldChecker {
	return &SoldChecker{store: store}
}

// IsSold — true, если хотя бы одна строка подтверждённого заказа ссылается на товар.
func (s *SoldChecker) IsSold(ctx context.Context, productID string) (bool, error) {
	return s.store.HasConfirmedLineForProduct(ctx, productID)
}
