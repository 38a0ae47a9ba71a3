package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeOrderCreated         = "order.created"
	TypeOrderStatusChanged   = "order.status_changed"
	TypePaymentStatusChanged = "payment.status_changed"
)

// Event - конверт сообщения в топике событий. Key определяет партицию.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Key        string    `json:"-"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type OrderCreated struct {
	OrderID       int64           `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	BuyerID       int64           `json:"buyer_id"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type OrderStatusChanged struct {
	OrderNumber string `json:"order_number"`
	From        string `json:"from"`
	To          string `json:"to"`
}

type PaymentStatusChanged struct {
	CheckoutID string `json:"checkout_id"`
	Status     string `json:"status"`
	ResultCode int    `json:"result_code"`
}

func newEvent(typ, key string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

func NewOrderCreated(p OrderCreated) Event {
	return newEvent(TypeOrderCreated, p.OrderNumber, p)
}

func NewOrderStatusChanged(p OrderStatusChanged) Event {
	return newEvent(TypeOrderStatusChanged, p.OrderNumber, p)
}

func NewPaymentStatusChanged(p PaymentStatusChanged) Event {
	return newEvent(TypePaymentStatusChanged, p.CheckoutID, p)
}
