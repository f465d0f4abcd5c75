package testutil

import (
	"context"
	"strconv"
	"sync"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
)

// Проверка, что FakeOrderStore удовлетворяет порту хранилища.
var _ ports.OrderStore = (*FakeOrderStore)(nil)

// FakeOrderStore — потокобезопасное in-memory хранилище заказов для
// сценарных тестов движка: ведёт себя как настоящее (порядки/строки,
// draft- и подтверждённые состояния), но без сети.
//
// FailNext позволяет сымитировать сбой: следующие N вызовов любого метода
// вернут ErrInjected, не меняя состояния.
type FakeOrderStore struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	lines    map[string]*domain.OrderLine
	nextID   int64
	failures int

	// Calls — счётчик всех обращений к хранилищу (для проверки кэширования).
	Calls int
}

// ErrInjected — искусственный сбой хранилища.
var ErrInjected = errInjected{}

type errInjected struct{}

func (errInjected) Error() string { return "injected store failure" }

// NewFakeOrderStore — конструктор FakeOrderStore.
func NewFakeOrderStore() *FakeOrderStore {
	return &FakeOrderStore{
		orders: make(map[string]*domain.Order),
		lines:  make(map[string]*domain.OrderLine),
		nextID: 100,
	}
}

// FailNext — следующие n вызовов вернут ErrInjected.
func (f *FakeOrderStore) FailNext(n int) {
	f.mu.Lock()
	f.failures = n
	f.mu.Unlock()
}

// ConfirmOrder — перевести заказ в подтверждённое состояние (имитация продажи в ERP).
func (f *FakeOrderStore) ConfirmOrder(orderID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[orderID]; ok {
		o.State = domain.OrderStateSale
	}
}

func (f *FakeOrderStore) enter() error {
	f.Calls++
	if f.failures > 0 {
		f.failures--
		return ErrInjected
	}
	return nil
}

func (f *FakeOrderStore) newID() string {
	f.nextID++
	return strconv.FormatInt(f.nextID, 10)
}

func (f *FakeOrderStore) FindDraftOrder(_ context.Context, ownerID string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	for _, o := range f.orders {
		if o.OwnerID == ownerID && o.IsDraft() {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeOrderStore) CreateDraftOrder(_ context.Context, ownerID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return "", err
	}
	id := f.newID()
	f.orders[id] = &domain.Order{
		ID:      id,
		OwnerID: ownerID,
		State:   domain.OrderStateDraft,
		Name:    "S" + id,
	}
	return id, nil
}

func (f *FakeOrderStore) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	o, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *FakeOrderStore) ListLines(_ context.Context, orderID string) ([]domain.OrderLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	var out []domain.OrderLine
	for _, l := range f.lines {
		if l.OrderID == orderID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *FakeOrderStore) GetLine(_ context.Context, lineID string) (*domain.OrderLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	l, ok := f.lines[lineID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *FakeOrderStore) FindLine(_ context.Context, orderID, productID string) (*domain.OrderLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	for _, l := range f.lines {
		if l.OrderID == orderID && l.ProductID == productID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeOrderStore) CreateLine(_ context.Context, orderID, productID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return "", err
	}
	id := f.newID()
	f.lines[id] = &domain.OrderLine{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
	}
	return id, nil
}

func (f *FakeOrderStore) DeleteLine(_ context.Context, lineID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return err
	}
	delete(f.lines, lineID)
	return nil
}

func (f *FakeOrderStore) DeleteLines(_ context.Context, lineIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return err
	}
	for _, id := range lineIDs {
		delete(f.lines, id)
	}
	return nil
}

func (f *FakeOrderStore) CountDraftLinesForProduct(_ context.Context, productID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return 0, err
	}
	n := 0
	for _, l := range f.lines {
		if l.ProductID != productID {
			continue
		}
		if o, ok := f.orders[l.OrderID]; ok && o.IsDraft() {
			n++
		}
	}
	return n, nil
}

func (f *FakeOrderStore) CountDraftLinesForOwner(_ context.Context, ownerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return 0, err
	}
	n := 0
	for _, l := range f.lines {
		if o, ok := f.orders[l.OrderID]; ok && o.IsDraft() && o.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *FakeOrderStore) HasConfirmedLineForProduct(_ context.Context, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return false, err
	}
	for _, l := range f.lines {
		if l.ProductID != productID {
			continue
		}
		if o, ok := f.orders[l.OrderID]; ok && !o.IsDraft() {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeOrderStore) ListSoldProductIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var ids []string
	for _, l := range f.lines {
		if o, ok := f.orders[l.OrderID]; ok && !o.IsDraft() {
			if _, dup := seen[l.ProductID]; !dup {
				seen[l.ProductID] = struct{}{}
				ids = append(ids, l.ProductID)
			}
		}
	}
	return ids, nil
}
