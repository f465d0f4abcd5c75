package ports

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

// StatusCache — кэш доступности товаров (per-product ProductStatus).
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// ограниченная ёмкость (LRU) и TTL; Invalidate удаляет запись немедленно,
// а не дожидается истечения TTL.
type StatusCache interface {
	// Get — (status, true) при попадании, (zero, false) при промахе/истечении.
	Get(ctx context.Context, productID string) (domain.ProductStatus, bool)

	// Set — сохранить/обновить снимок доступности.
	Set(ctx context.Context, productID string, status domain.ProductStatus) error

	// Invalidate — удалить запись (no-op, если её нет).
	Invalidate(ctx context.Context, productID string)
}

// CartCountCache — кэш размера активной корзины владельца.
// Семантика hit/miss/TTL/Invalidate та же, что у StatusCache.
type CartCountCache interface {
	Get(ctx context.Context, ownerID string) (int, bool)
	Set(ctx context.Context, ownerID string, count int) error
	Invalidate(ctx context.Context, ownerID string)
}
