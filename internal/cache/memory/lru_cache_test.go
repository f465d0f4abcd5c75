package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

func TestSetGet_HitMiss(t *testing.T) {
	c := NewStatusCache(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "p-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "p-1", domain.ProductStatus{InCartCount: 2})
	got, ok := c.Get(ctx, "p-1")
	if !ok || got.InCartCount != 2 {
		t.Fatalf("expected hit for p-1, got ok=%v st=%+v", ok, got)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewCartCountCache(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, "owner", 3)
	if _, ok := c.Get(ctx, "owner"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "owner"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewStatusCache(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", domain.ProductStatus{})
	_ = c.Set(ctx, "B", domain.ProductStatus{})
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", domain.ProductStatus{})

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestInvalidate_RemovesImmediately(t *testing.T) {
	c := NewStatusCache(4, time.Hour) // TTL далеко — проверяем именно инвалидацию
	ctx := context.Background()

	_ = c.Set(ctx, "P", domain.ProductStatus{InCartCount: 1})
	c.Invalidate(ctx, "P")

	if _, ok := c.Get(ctx, "P"); ok {
		t.Fatalf("invalidated entry must disappear immediately, not wait for TTL")
	}
	// Повторная инвалидация отсутствующего ключа — no-op.
	c.Invalidate(ctx, "P")
	c.Invalidate(ctx, "missing")
}

func TestSet_UpdateRefreshesValue(t *testing.T) {
	c := NewCartCountCache(2, time.Hour)
	ctx := context.Background()

	_ = c.Set(ctx, "owner", 1)
	_ = c.Set(ctx, "owner", 5)

	got, ok := c.Get(ctx, "owner")
	if !ok || got != 5 {
		t.Fatalf("expected updated value 5, got ok=%v v=%d", ok, got)
	}
	if c.Len() != 1 {
		t.Fatalf("update must not duplicate the entry")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewCartCountCache(64, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%4))
			for j := 0; j < 200; j++ {
				_ = c.Set(ctx, key, j)
				_, _ = c.Get(ctx, key)
				if j%10 == 0 {
					c.Invalidate(ctx, key)
				}
			}
		}(i)
	}
	wg.Wait()
}
