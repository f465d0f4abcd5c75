package domain

// Состояния заказа в хранилище (Odoo sale.order).
const (
	OrderStateDraft = "draft" // корзина
	OrderStateSale  = "sale"  // подтверждённая продажа
	OrderStateDone  = "done"  // завершённая продажа
)

// ConfirmedOrderStates — состояния, строки которых делают товар проданным навсегда.
var ConfirmedOrderStates = []string{OrderStateSale, OrderStateDone}

// Order — заказ в авторитетном хранилище. В состоянии draft это корзина
// покупателя (не более одной активной на владельца).
type Order struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	State   string `json:"state"`
	Name    string `json:"name,omitempty"`
}

// IsDraft — заказ всё ещё является корзиной.
func (o *Order) IsDraft() bool { return o != nil && o.State == OrderStateDraft }

// OrderLine — строка заказа: ровно один уникальный товар, количество всегда 1.
type OrderLine struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	DisplayName string  `json:"display_name,omitempty"`
	PriceUnit   float64 `json:"price_unit,omitempty"`
}

// CartLine — строка корзины, обогащённая живым статусом товара для выдачи наружу.
type CartLine struct {
	OrderLine
	Status ProductStatus `json:"status"`
}

// Cart — корзина целиком: draft-заказ и его обогащённые строки.
// Пустая корзина — Order == nil и Lines == nil.
type Cart struct {
	Order *Order     `json:"order"`
	Lines []CartLine `json:"lines"`
}

// AddResult — успешный результат добавления товара в корзину.
type AddResult struct {
	OrderID string `json:"order_id"`
	LineID  string `json:"line_id"`
	// Message — совещательная подсказка о конкуренции за товар
	// (UX-информация, не сигнал корректности).
	Message string `json:"message"`
}
