package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusArchived   OrderStatus = "Archived"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusArchived,
}

// ParseOrderStatus принимает статус в любом регистре ("shipped", "SHIPPED").
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range orderStatuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Cancellable - заказ ещё не передан в доставку, товар можно вернуть на склад.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed || s == OrderStatusProcessing
}

func (s OrderStatus) Archivable() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo: архив конечен, из отмены можно только в архив,
// отменить можно только заказ, который ещё не отправлен.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch {
	case s == next:
		return true
	case s == OrderStatusArchived:
		return false
	case next == OrderStatusArchived:
		return s.Archivable()
	case s == OrderStatusCancelled:
		return false
	case next == OrderStatusCancelled:
		return s.Cancellable()
	default:
		return true
	}
}

const (
	// NotificationNew помечает заказ, который ещё не видел администратор.
	NotificationNew = "new"

	TrackingOrdered            = "Ordered"
	TrackingOrderedDescription = "Order placed successfully"
)

type LineItem struct {
	ProductID int64
	Quantity  int
	// Цена на момент заказа, не зависит от текущей цены товара
	Price decimal.Decimal
}

type NewOrder struct {
	BuyerID       int64
	AddressID     int64
	PaymentMethod string
	TotalAmount   decimal.Decimal
	Items         []LineItem
}

type CreatedOrder struct {
	ID          int64
	OrderNumber string
}

type OrderItem struct {
	ProductID int64
	Title     string
	Quantity  int
	Price     decimal.Decimal
	ImageFile string
}

type Order struct {
	ID            int64
	OrderNumber   string
	BuyerID       int64
	AddressID     int64
	PaymentMethod string
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	Notification  string
	CreatedAt     time.Time

	Items []OrderItem
}

// ItemsSummary - "Name x2, Other x1", как показывает витрина.
func (o Order) ItemsSummary() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, it.Title+" x"+strconv.Itoa(it.Quantity))
	}
	return strings.Join(parts, ", ")
}

type TrackingEntry struct {
	Status      string
	Description string
	UpdatedAt   time.Time
}
