package domain

import "errors"

// Ожидаемые исходы admission-контроля и ошибок доступа.
// Это обычные возвращаемые значения движка (различаются через errors.Is),
// а не исключительные ситуации: паник через публичную границу нет.
var (
	// ErrLimitReached — покупатель достиг лимита товаров в своей корзине.
	ErrLimitReached = errors.New("cart limit reached")

	// ErrAlreadySold — товар продан. Терминальный отказ, повторять бессмысленно.
	ErrAlreadySold = errors.New("product already sold")

	// ErrHighDemand — товар удерживают максимум покупателей. Повтор позже осмыслен.
	ErrHighDemand = errors.New("product in high demand")

	// ErrDuplicateInCart — товар уже в корзине этого покупателя (идемпотентный отказ).
	ErrDuplicateInCart = errors.New("product already in cart")

	// ErrNotAuthorized — строка принадлежит чужой корзине.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound — строка не найдена в хранилище.
	ErrNotFound = errors.New("line not found")

	// ErrBackendUnavailable — сбой обращения к хранилищу заказов.
	// После такого отказа движок не трогает ни одну запись кэша.
	ErrBackendUnavailable = errors.New("order store unavailable")
)

// IsPolicyRejection — ожидаемый пользовательский отказ admission-контроля
// (логируется не как ошибка).
func IsPolicyRejection(err error) bool {
	return errors.Is(err, ErrLimitReached) ||
		errors.Is(err, ErrAlreadySold) ||
		errors.Is(err, ErrHighDemand) ||
		errors.Is(err, ErrDuplicateInCart)
}
