package ports

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
)

type ConfirmationValidator interface {
	Validate(ctx context.Context, ev *domain.SaleConfirmation) error
}
