package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest - тело запроса оформления заказа
type CreateOrderRequest struct {
	BuyerID       int64             `json:"buyer_id" validate:"required,gt=0"`
	AddressID     int64             `json:"address_id" validate:"required,gt=0"`
	PaymentMethod string            `json:"payment_method" validate:"required,max=50"`
	TotalAmount   decimal.Decimal   `json:"total_amount" swaggertype:"number"`
	LineItems     []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

// LineItemRequest - позиция заказа
type LineItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
}

// CreateOrderResponse - номер созданного заказа
type CreateOrderResponse struct {
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// Order - заказ в истории покупателя и в админке
type Order struct {
	OrderNumber   string          `json:"order_number"`
	BuyerID       int64           `json:"buyer_id"`
	AddressID     int64           `json:"address_id"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"number"`
	Status        string          `json:"status"`
	Notification  *string         `json:"notification"`
	CreatedAt     string          `json:"created_at"`
	ItemsSummary  string          `json:"items_summary"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem - товар в заказе
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	Image     *string         `json:"image"`
}

// TrackingEntry - шаг доставки
type TrackingEntry struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	UpdateTime  string `json:"update_time"`
}

// UpdateStatusRequest - новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// InitiatePaymentRequest - запрос STK push
type InitiatePaymentRequest struct {
	Phone string `json:"phone" validate:"required"`
	// число или строка, дробная часть отбрасывается
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// InitiatePaymentResponse - идентификатор платёжной сессии
type InitiatePaymentResponse struct {
	CheckoutID string `json:"checkout_id"`
}

// PaymentStatusResponse - текущий статус оплаты
type PaymentStatusResponse struct {
	Status string `json:"status"`
}

// CallbackAck - ответ, который ждёт Daraja
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// TrackingMessage - сообщение службы доставки из Kafka
type TrackingMessage struct {
	OrderNumber string    `json:"order_number" validate:"required,len=6,numeric"`
	Status      string    `json:"status" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=255"`
	UpdateTime  time.Time `json:"update_time"`
}

func NewOrderFromRequest(r CreateOrderRequest) entities.NewOrder {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, it := range r.LineItems {
		items = append(items, entities.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return entities.NewOrder{
		BuyerID:       r.BuyerID,
		AddressID:     r.AddressID,
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   r.TotalAmount,
		Items:         items,
	}
}

// presenter переводит время в часовой пояс магазина и собирает URL картинок.
type presenter struct {
	loc        *time.Location
	uploadsURL string
}

func (p presenter) order(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if it.ImageFile != "" {
			url := p.uploadsURL + it.ImageFile
			item.Image = &url
		}
		items = append(items, item)
	}

	var notification *string
	if o.Notification != "" {
		notification = &o.Notification
	}

	return Order{
		OrderNumber:   o.OrderNumber,
		BuyerID:       o.BuyerID,
		AddressID:     o.AddressID,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		Notification:  notification,
		CreatedAt:     o.CreatedAt.In(p.loc).Format(time.RFC3339),
		ItemsSummary:  o.ItemsSummary(),
		Items:         items,
	}
}

func (p presenter) orders(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, p.order(o))
	}
	return res
}

func (p presenter) tracking(entries []entities.TrackingEntry) []TrackingEntry {
	res := make([]TrackingEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, TrackingEntry{
			Status:      e.Status,
			Description: e.Description,
			UpdateTime:  e.UpdatedAt.In(p.loc).Format(time.RFC3339),
		})
	}
	return res
}

func TrackingMessageToEntity(m TrackingMessage) entities.TrackingEntry {
	updated := m.UpdateTime
	if updated.IsZero() {
		updated = time.Now()
	}
	return entities.TrackingEntry{
		Status:      m.Status,
		Description: m.Description,
		UpdatedAt:   updated,
	}
}
