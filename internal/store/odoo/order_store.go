package odoo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// Проверка, что OrderStore удовлетворяет порту хранилища.
var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore — реализация порта хранилища заказов поверх Odoo.
type OrderStore struct {
	client *Client
}

// NewOrderStore — конструктор OrderStore.
func NewOrderStore(client *Client) *OrderStore { return &OrderStore{client: client} }

// ref — many2one-ссылка Odoo: либо false, либо пара [id, "display name"].
type ref struct {
	ID   int64
	Name string
}

func (r *ref) UnmarshalJSON(raw []byte) error {
	// false → пустая ссылка
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*r = ref{}
		return nil
	}
	var pair []any
	if err := json.Unmarshal(raw, &pair); err != nil {
		return fmt.Errorf("odoo ref: %w", err)
	}
	if len(pair) > 0 {
		if id, ok := pair[0].(float64); ok {
			r.ID = int64(id)
		}
	}
	if len(pair) > 1 {
		if name, ok := pair[1].(string); ok {
			r.Name = name
		}
	}
	return nil
}

type orderRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	PartnerID ref    `json:"partner_id"`
}

type lineRecord struct {
	ID          int64   `json:"id"`
	OrderID     ref     `json:"order_id"`
	ProductID   ref     `json:"product_id"`
	DisplayName string  `json:"display_name"`
	PriceUnit   float64 `json:"price_unit"`
}

var (
	orderFields = []string{"id", "name", "state", "partner_id"}
	lineFields  = []string{"id", "order_id", "product_id", "display_name", "price_unit"}
)

func (o orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:      strconv.FormatInt(o.ID, 10),
		OwnerID: strconv.FormatInt(o.PartnerID.ID, 10),
		State:   o.State,
		Name:    o.Name,
	}
}

func (l lineRecord) toDomain() domain.OrderLine {
	return domain.OrderLine{
		ID:          strconv.FormatInt(l.ID, 10),
		OrderID:     strconv.FormatInt(l.OrderID.ID, 10),
		ProductID:   strconv.FormatInt(l.ProductID.ID, 10),
		DisplayName: l.DisplayName,
		PriceUnit:   l.PriceUnit,
	}
}

// parseID — движок оперирует непрозрачными строковыми id, Odoo — числовыми.
func parseID(kind, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, id)
	}
	return n, nil
}

// FindDraftOrder — активная корзина владельца; (nil, nil), если корзины нет.
func (s *OrderStore) FindDraftOrder(ctx context.Context, ownerID string) (*domain.Order, error) {
	partnerID, err := parseID("owner", ownerID)
	if err != nil {
		return nil, err
	}
	var records []orderRecord
	filter := []any{
		[]any{"state", "=", domain.OrderStateDraft},
		[]any{"partner_id", "=", partnerID},
	}
	if err := s.client.searchRead(ctx, "sale.order", filter, orderFields, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0].toDomain(), nil
}

// CreateDraftOrder — создаёт пустую корзину владельца.
func (s *OrderStore) CreateDraftOrder(ctx context.Context, ownerID string) (string, error) {
	partnerID, err := parseID("owner", ownerID)
	if err != nil {
		return "", err
	}
	id, err := s.client.create(ctx, "sale.order", map[string]any{
		"partner_id": partnerID,
		"state":      domain.OrderStateDraft,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// GetOrder — заказ по id; (nil, nil), если не найден.
func (s *OrderStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := s.client.searchRead(ctx, "sale.order",
		[]any{[]any{"id", "=", id}}, orderFields, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0].toDomain(), nil
}

// ListLines — все строки заказа.
func (s *OrderStore) ListLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}
	var records []lineRecord
	if err := s.client.searchRead(ctx, "sale.order.line",
		[]any{[]any{"order_id", "=", id}}, lineFields, &records); err != nil {
		return nil, err
	}
	lines := make([]domain.OrderLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rec.toDomain())
	}
	return lines, nil
}

// GetLine — строка по id; (nil, nil), если не найдена.
func (s *OrderStore) GetLine(ctx context.Context, lineID string) (*domain.OrderLine, error) {
	id, err := parseID("line", lineID)
	if err != nil {
		return nil, err
	}
	var records []lineRecord
	if err := s.client.searchRead(ctx, "sale.order.line",
		[]any{[]any{"id", "=", id}}, lineFields, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	line := records[0].toDomain()
	return &line, nil
}

// FindLine — строка данного товара внутри данного заказа; (nil, nil), если её нет.
func (s *OrderStore) FindLine(ctx context.Context, orderID, productID string) (*domain.OrderLine, error) {
	oid, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}
	pid, err := parseID("product", productID)
	if err != nil {
		return nil, err
	}
	var records []lineRecord
	filter := []any{
		[]any{"order_id", "=", oid},
		[]any{"product_id", "=", pid},
	}
	if err := s.client.searchRead(ctx, "sale.order.line", filter, lineFields, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	line := records[0].toDomain()
	return &line, nil
}

// CreateLine — добавляет строку заказа. Количество всегда 1: каждый товар уникален.
func (s *OrderStore) CreateLine(ctx context.Context, orderID, productID string) (string, error) {
	oid, err := parseID("order", orderID)
	if err != nil {
		return "", err
	}
	pid, err := parseID("product", productID)
	if err != nil {
		return "", err
	}
	id, err := s.client.create(ctx, "sale.order.line", map[string]any{
		"order_id":        oid,
		"product_id":      pid,
		"product_uom_qty": 1,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// DeleteLine — удаляет одну строку.
func (s *OrderStore) DeleteLine(ctx context.Context, lineID string) error {
	id, err := parseID("line", lineID)
	if err != nil {
		return err
	}
	return s.client.unlink(ctx, "sale.order.line", []int64{id})
}

// DeleteLines — пакетное удаление одним вызовом unlink:
// либо весь пакет удалён, либо вызов вернул ошибку целиком.
func (s *OrderStore) DeleteLines(ctx context.Context, lineIDs []string) error {
	if len(lineIDs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(lineIDs))
	for _, lineID := range lineIDs {
		id, err := parseID("line", lineID)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	return s.client.unlink(ctx, "sale.order.line", ids)
}

// CountDraftLinesForProduct — сколько draft-строк ссылаются на товар.
func (s *OrderStore) CountDraftLinesForProduct(ctx context.Context, productID string) (int, error) {
	pid, err := parseID("product", productID)
	if err != nil {
		return 0, err
	}
	filter := []any{
		[]any{"product_id", "=", pid},
		[]any{"order_id.state", "=", domain.OrderStateDraft},
	}
	return s.client.searchCount(ctx, "sale.order.line", filter)
}

// CountDraftLinesForOwner — сколько строк в активной корзине владельца.
func (s *OrderStore) CountDraftLinesForOwner(ctx context.Context, ownerID string) (int, error) {
	partnerID, err := parseID("owner", ownerID)
	if err != nil {
		return 0, err
	}
	filter := []any{
		[]any{"order_id.partner_id", "=", partnerID},
		[]any{"order_id.state", "=", domain.OrderStateDraft},
	}
	return s.client.searchCount(ctx, "sale.order.line", filter)
}

// HasConfirmedLineForProduct — есть ли строка подтверждённого заказа с товаром.
func (s *OrderStore) HasConfirmedLineForProduct(ctx context.Context, productID string) (bool, error) {
	pid, err := parseID("product", productID)
	if err != nil {
		return false, err
	}
	filter := []any{
		[]any{"product_id", "=", pid},
		[]any{"order_id.state", "in", domain.ConfirmedOrderStates},
	}
	n, err := s.client.searchCount(ctx, "sale.order.line", filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSoldProductIDs — уникальные id товаров из строк подтверждённых заказов.
func (s *OrderStore) ListSoldProductIDs(ctx context.Context) ([]string, error) {
	var records []lineRecord
	filter := []any{
		[]any{"order_id.state", "in", domain.ConfirmedOrderStates},
	}
	if err := s.client.searchRead(ctx, "sale.order.line", filter,
		[]string{"id", "product_id"}, &records); err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ProductID.ID == 0 {
			continue
		}
		if _, dup := seen[rec.ProductID.ID]; dup {
			continue
		}
		seen[rec.ProductID.ID] = struct{}{}
		ids = append(ids, strconv.FormatInt(rec.ProductID.ID, 10))
	}
	return ids, nil
}
