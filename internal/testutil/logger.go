package testutil

import (
	"context"

	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

var _ ports.Logger = NopLogger{}

// NopLogger — логгер-заглушка для тестов.
type NopLogger struct{}

func (NopLogger) Infof(context.Context, string, ...any)  {}
func (NopLogger) Warnf(context.Context, string, ...any)  {}
func (NopLogger) Errorf(context.Context, string, ...any) {}
