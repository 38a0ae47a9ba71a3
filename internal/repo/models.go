package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64           `db:"id"`
	OrderNumber   string          `db:"order_number"`
	BuyerID       int64           `db:"buyer_id"`
	AddressID     int64           `db:"address_id"`
	PaymentMethod string          `db:"payment_method"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	Notification  sql.NullString  `db:"notification"`
	CreatedAt     time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID       int64           `db:"order_id"`
	ProductID     int64           `db:"product_id"`
	Title         string          `db:"title"`
	Quantity      int             `db:"quantity"`
	Price         decimal.Decimal `db:"price"`
	ImageFilename sql.NullString  `db:"image_filename"`
}

type TrackingEntry struct {
	Status      string    `db:"status"`
	Description string    `db:"description"`
	UpdateTime  time.Time `db:"update_time"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Title:     i.Title,
		Quantity:  i.Quantity,
		Price:     i.Price,
		ImageFile: nullStringToString(i.ImageFilename),
	}
}

func TrackingToEntity(t TrackingEntry) entities.TrackingEntry {
	return entities.TrackingEntry{
		Status:      t.Status,
		Description: t.Description,
		UpdatedAt:   t.UpdateTime,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		BuyerID:       o.BuyerID,
		AddressID:     o.AddressID,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatus(o.Status),
		Notification:  nullStringToString(o.Notification),
		CreatedAt:     o.CreatedAt,
		Items:         make([]entities.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
