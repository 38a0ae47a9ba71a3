package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/events"
)

// memStore - репозиторий в памяти; откат транзакции идёт по журналу отмены.
// Транзакции сериализуются, как при блокировках строк в Postgres.
type memStore struct {
	mu sync.Mutex

	nextID   int64
	orders   map[int64]*entities.Order
	numbers  map[string]int64
	tracking map[int64][]entities.TrackingEntry
	stock    map[int64]int
	titles   map[int64]string

	// failLineItem > 0 роняет вставку позиции с этим порядковым номером в транзакции
	failLineItem  int
	lineItemsInTx int

	undo []func()
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[int64]*entities.Order),
		numbers:  make(map[string]int64),
		tracking: make(map[int64][]entities.TrackingEntry),
		stock:    make(map[int64]int),
		titles:   make(map[int64]string),
	}
}

func (s *memStore) addProduct(id int64, title string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[id] = title
	s.stock[id] = stock
}

// Do реализует trm.Manager. При ошибке изменения откатываются в обратном порядке.
func (s *memStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return callback(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.undo = nil
	s.lineItemsInTx = 0
	if err := callback(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		for i := len(s.undo) - 1; i >= 0; i-- {
			s.undo[i]()
		}
		s.undo = nil
		return err
	}
	s.undo = nil
	return nil
}

func (s *memStore) onRollback(fn func()) {
	s.undo = append(s.undo, fn)
}

// lock берёт мьютекс только вне транзакции, внутри он уже захвачен.
func (s *memStore) lock(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) InsertOrder(ctx context.Context, orderNumber string, o entities.NewOrder) (int64, error) {
	defer s.lock(ctx)()

	if _, ok := s.numbers[orderNumber]; ok {
		return 0, entities.ErrOrderNumberTaken
	}
	prevID := s.nextID
	s.nextID++
	s.onRollback(func() {
		delete(s.orders, s.nextID)
		delete(s.numbers, orderNumber)
		s.nextID = prevID
	})
	s.numbers[orderNumber] = s.nextID
	s.orders[s.nextID] = &entities.Order{
		ID:            s.nextID,
		OrderNumber:   orderNumber,
		BuyerID:       o.BuyerID,
		AddressID:     o.AddressID,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatusPending,
		Notification:  entities.NotificationNew,
		CreatedAt:     time.Now(),
	}
	return s.nextID, nil
}

func (s *memStore) InsertTrackingEntry(ctx context.Context, orderID int64, e entities.TrackingEntry) error {
	defer s.lock(ctx)()

	if _, ok := s.orders[orderID]; !ok {
		return entities.ErrOrderNotFound
	}
	prev := len(s.tracking[orderID])
	s.onRollback(func() { s.tracking[orderID] = s.tracking[orderID][:prev] })
	s.tracking[orderID] = append(s.tracking[orderID], e)
	return nil
}

var errInjected = errors.New("injected failure")

func (s *memStore) InsertLineItem(ctx context.Context, orderID int64, item entities.LineItem) error {
	defer s.lock(ctx)()

	s.lineItemsInTx++
	if s.failLineItem > 0 && s.lineItemsInTx == s.failLineItem {
		return errInjected
	}

	title, ok := s.titles[item.ProductID]
	if !ok {
		return entities.ErrProductNotFound
	}
	o := s.orders[orderID]
	prev := len(o.Items)
	s.onRollback(func() { o.Items = o.Items[:prev] })
	o.Items = append(o.Items, entities.OrderItem{
		ProductID: item.ProductID,
		Title:     title,
		Quantity:  item.Quantity,
		Price:     item.Price,
	})
	return nil
}

func (s *memStore) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	defer s.lock(ctx)()

	left, ok := s.stock[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	if left < quantity {
		return entities.ErrInsufficientStock
	}
	s.onRollback(func() { s.stock[productID] = left })
	s.stock[productID] = left - quantity
	return nil
}

func (s *memStore) IncrementStock(ctx context.Context, productID int64, quantity int) error {
	defer s.lock(ctx)()

	left, ok := s.stock[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	s.onRollback(func() { s.stock[productID] = left })
	s.stock[productID] += quantity
	return nil
}

func (s *memStore) OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	defer s.lock(ctx)()

	var res []entities.Order
	for _, o := range s.sorted() {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (s *memStore) ListOrders(ctx context.Context, onlyNew bool, limit uint64) ([]entities.Order, error) {
	defer s.lock(ctx)()

	var res []entities.Order
	for _, o := range s.sorted() {
		if onlyNew && o.Notification != entities.NotificationNew {
			continue
		}
		if limit > 0 && uint64(len(res)) == limit {
			break
		}
		res = append(res, o)
	}
	return res, nil
}

func (s *memStore) sorted() []entities.Order {
	res := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		res = append(res, *o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res
}

func (s *memStore) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	defer s.lock(ctx)()

	id, ok := s.numbers[orderNumber]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o := *s.orders[id]
	o.Items = append([]entities.OrderItem(nil), o.Items...)
	return o, nil
}

func (s *memStore) TrackingByNumber(ctx context.Context, orderNumber string) ([]entities.TrackingEntry, error) {
	defer s.lock(ctx)()

	id, ok := s.numbers[orderNumber]
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	return append([]entities.TrackingEntry(nil), s.tracking[id]...), nil
}

func (s *memStore) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	defer s.lock(ctx)()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	prev := o.Status
	s.onRollback(func() { o.Status = prev })
	o.Status = status
	return nil
}

func (s *memStore) ClearNotification(ctx context.Context, orderNumber string) error {
	defer s.lock(ctx)()

	id, ok := s.numbers[orderNumber]
	if !ok {
		return entities.ErrOrderNotFound
	}
	s.orders[id].Notification = ""
	return nil
}

func (s *memStore) counts() (orders, tracking, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range s.orders {
		items += len(o.Items)
		tracking += len(s.tracking[id])
	}
	return len(s.orders), tracking, items
}

func (s *memStore) stockOf(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[productID]
}

// recorder собирает опубликованные события.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]string, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Type)
	}
	return res
}
