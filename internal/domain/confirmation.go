package domain

// SaleConfirmation — событие подтверждения продажи из ERP (Kafka).
// После подтверждения все перечисленные товары становятся проданными навсегда.
type SaleConfirmation struct {
	OrderID    string   `json:"order_id"`
	State      string   `json:"state"` // sale | done
	ProductIDs []string `json:"product_ids"`
}
