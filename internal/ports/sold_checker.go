package ports

import "context"

// SoldChecker — резолвер терминального состояния "продано".
// Не кэширует сам: каждый вызов отражает авторитетное хранилище,
// кэширование происходит уровнем выше (в кэше доступности).
type SoldChecker interface {
	IsSold(ctx context.Context, productID string) (bool, error)
}
