package ports

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

// OrderStore — адаптер авторитетного хранилища заказов (Odoo ERP).
// Каждый факт, который движок кэширует, выводится из этих операций.
// Все вызовы — блокирующий I/O с собственным таймаутом; кэш-локи через
// эти вызовы не удерживаются.
type OrderStore interface {
	// FindDraftOrder — активная корзина владельца; (nil, nil), если корзины нет.
	FindDraftOrder(ctx context.Context, ownerID string) (*domain.Order, error)

	// CreateDraftOrder — создать пустую корзину владельца, вернуть её id.
	CreateDraftOrder(ctx context.Context, ownerID string) (string, error)

	// GetOrder — заказ по id; (nil, nil), если не найден.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListLines — все строки заказа.
	ListLines(ctx context.Context, orderID string) ([]domain.OrderLine, error)

	// GetLine — строка по id; (nil, nil), если не найдена.
	GetLine(ctx context.Context, lineID string) (*domain.OrderLine, error)

	// FindLine — строка данного товара внутри данного заказа; (nil, nil), если её нет.
	FindLine(ctx context.Context, orderID, productID string) (*domain.OrderLine, error)

	// CreateLine — добавить строку (количество всегда 1), вернуть id строки.
	CreateLine(ctx context.Context, orderID, productID string) (string, error)

	// DeleteLine — удалить одну строку.
	DeleteLine(ctx context.Context, lineID string) error

	// DeleteLines — пакетное удаление строк одним вызовом хранилища.
	DeleteLines(ctx context.Context, lineIDs []string) error

	// CountDraftLinesForProduct — сколько draft-строк ссылаются на товар
	// (число покупателей, удерживающих его в корзинах).
	CountDraftLinesForProduct(ctx context.Context, productID string) (int, error)

	// CountDraftLinesForOwner — сколько строк в активной корзине владельца.
	CountDraftLinesForOwner(ctx context.Context, ownerID string) (int, error)

	// HasConfirmedLineForProduct — есть ли строка подтверждённого заказа с товаром.
	HasConfirmedLineForProduct(ctx context.Context, productID string) (bool, error)

	// ListSoldProductIDs — уникальные id товаров из строк подтверждённых заказов.
	ListSoldProductIDs(ctx context.Context) ([]string, error)
}
