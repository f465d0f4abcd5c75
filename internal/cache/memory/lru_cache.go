package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/paquirobles/cuadros-reserve/pkg/metrics"
)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный кэш с ограниченной ёмкостью (LRU-вытеснение)
// и TTL. Одна реализация обслуживает оба кэша движка: доступность товаров
// (ProductStatus) и размер корзины владельца (int).
//
// Invalidate — отдельная операция от истечения TTL: запись, снятая записью
// движка, исчезает немедленно. Мьютекс охватывает только мутации карты,
// через него не проходят сетевые вызовы.
type LRUCacheTTL[V any] struct {
	name     string // метка для метрик: availability | cart_count
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор. name попадает в метрики кэша.
func NewLRUCacheTTL[V any](name string, capacity int, ttl time.Duration) *LRUCacheTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть значение по ключу; (value, true) при попадании,
// (zero, false) при промахе или истечении TTL.
func (c *LRUCacheTTL[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
		return zero, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

// Set — сохранить/обновить значение. Обновление освежает TTL.
func (c *LRUCacheTTL[V]) Set(_ context.Context, key string, value V) error {
	if key == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = value
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		value:     value,
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Invalidate — безусловно удалить запись (no-op, если её нет).
func (c *LRUCacheTTL[V]) Invalidate(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return
	}
	c.removeElement(elem)
	metrics.CacheOps.WithLabelValues(c.name, "invalidated").Inc()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
}

// Len — текущее число записей (для тестов и отладки).
func (c *LRUCacheTTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
