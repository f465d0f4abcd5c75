package domain

// ProductStatus — снимок доступности одного уникального товара.
// Не хранится в каталоге: выводится из авторитетного хранилища заказов
// и живёт только в кэше доступности (с TTL).
type ProductStatus struct {
	// InCartCount — сколько разных покупателей держат товар в активных (draft) корзинах.
	InCartCount int `json:"in_cart_count"`
	// Sold — товар фигурирует в строке подтверждённого заказа.
	// Терминальное состояние: обратно в false в рамках жизни процесса не возвращается.
	Sold bool `json:"sold"`
}

// Available — товар можно положить в корзину при текущем снимке
// (без учёта лимитов конкретного покупателя).
func (s ProductStatus) Available(maxHolders int) bool {
	return !s.Sold && s.InCartCount < maxHolders
}
