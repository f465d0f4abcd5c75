package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// ValidateConfirmationFromJSON — валидация события подтверждения из JSON.
func ValidateConfirmationFromJSON(ctx context.Context, validator ports.ConfirmationValidator, raw []byte) (*domain.SaleConfirmation, error) {
	var ev domain.SaleConfirmation
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
