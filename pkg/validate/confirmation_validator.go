package validate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

// ErrInvalidConfirmation — базовая (sentinel error) ошибка валидации события.
var ErrInvalidConfirmation = errors.New("sale confirmation validation failed")

// ConfirmationValidator — валидация событий подтверждения продажи.
type ConfirmationValidator struct{}

// NewConfirmationValidator — конструктор ConfirmationValidator.
// Validate возвращает ErrInvalidConfirmation (с обёрнутой причиной) при любой проблеме.
func NewConfirmationValidator() *ConfirmationValidator { return &ConfirmationValidator{} }

// Validate — проверяет корректность полей события.
func (v *ConfirmationValidator) Validate(_ context.Context, ev *domain.SaleConfirmation) error {
	if ev == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidConfirmation)
	}
	if ev.OrderID == "" {
		return fmt.Errorf("%w: order_id обязателен", ErrInvalidConfirmation)
	}
	if !slices.Contains(domain.ConfirmedOrderStates, ev.State) {
		return fmt.Errorf("%w: state %q не является подтверждённым состоянием", ErrInvalidConfirmation, ev.State)
	}
	if len(ev.ProductIDs) == 0 {
		return fmt.Errorf("%w: product_ids не должен быть пустым", ErrInvalidConfirmation)
	}
	for i, id := range ev.ProductIDs {
		if id == "" {
			return fmt.Errorf("%w: product_ids[%s] пуст", ErrInvalidConfirmation, strconv.Itoa(i))
		}
	}
	return nil
}
