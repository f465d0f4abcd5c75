package ports

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

// CartService — операции движка резервирования, которые видит транспортный слой.
type CartService interface {
	AddProduct(ctx context.Context, ownerID, productID string) (*domain.AddResult, error)
	RemoveProduct(ctx context.Context, ownerID, lineID string) error
	ClearCart(ctx context.Context, ownerID string) error
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	ProductAvailability(ctx context.Context, productID string) (domain.ProductStatus, error)
	SoldProducts(ctx context.Context) ([]string, error)
}
