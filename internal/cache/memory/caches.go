package memory

import (
	"time"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// Имена кэшей движка (метки метрик).
const (
	AvailabilityCacheName = "availability"
	CartCountCacheName    = "cart_count"
)

// Проверки соответствия портам.
var (
	_ ports.StatusCache    = (*LRUCacheTTL[domain.ProductStatus])(nil)
	_ ports.CartCountCache = (*LRUCacheTTL[int])(nil)
)

// NewStatusCache — кэш доступности товаров.
func NewStatusCache(capacity int, ttl time.Duration) *LRUCacheTTL[domain.ProductStatus] {
	return NewLRUCacheTTL[domain.ProductStatus](AvailabilityCacheName, capacity, ttl)
}

// NewCartCountCache — кэш размера корзины владельца.
func NewCartCountCache(capacity int, ttl time.Duration) *LRUCacheTTL[int] {
	return NewLRUCacheTTL[int](CartCountCacheName, capacity, ttl)
}
