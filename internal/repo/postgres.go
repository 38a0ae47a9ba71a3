package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/postgres"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "order_number", "buyer_id", "address_id", "payment_method",
	"total_amount", "status", "notification", "created_at",
}

type queryer interface {
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type postgresRepo struct {
	pool trm.ConnAcquirer
	qb   sq.StatementBuilderType
}

// NewPostgresRepo - каждый запрос вне транзакции берёт соединение из пула.
func NewPostgresRepo(pool trm.ConnAcquirer) *postgresRepo {
	return &postgresRepo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) InsertOrder(ctx context.Context, orderNumber string, o entities.NewOrder) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("order_number", "buyer_id", "address_id", "payment_method",
			"total_amount", "status", "notification", "created_at").
		Values(orderNumber, o.BuyerID, o.AddressID, o.PaymentMethod,
			o.TotalAmount, string(entities.OrderStatusPending), entities.NotificationNew, time.Now()).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if postgres.IsUniqueViolation(err) {
		return 0, entities.ErrOrderNumberTaken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) InsertTrackingEntry(ctx context.Context, orderID int64, e entities.TrackingEntry) error {
	updatedAt := e.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args := r.qb.Insert("order_tracking").
		Columns("order_id", "status", "update_time", "description").
		Values(orderID, e.Status, updatedAt, e.Description).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert tracking entry: %w", err)
	}
	return nil
}

func (r *postgresRepo) InsertLineItem(ctx context.Context, orderID int64, item entities.LineItem) error {
	query, args := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price").
		Values(orderID, item.ProductID, item.Quantity, item.Price).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if postgres.IsForeignKeyViolation(err) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert line item: %w", err)
	}
	return nil
}

// DecrementStock списывает остаток, только если его хватает.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", quantity)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock_quantity": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.productExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrProductNotFound
	}
	return entities.ErrInsufficientStock
}

func (r *postgresRepo) IncrementStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) productExists(ctx context.Context, productID int64) (bool, error) {
	query, args := r.qb.Select().
		Column(sq.Expr("EXISTS(SELECT 1 FROM products WHERE id = ?)", productID)).
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check product: %w", err)
	}
	return exists, nil
}

func (r *postgresRepo) OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, q)
}

// ListOrders возвращает последние заказы; onlyNew оставляет только
// заказы с отметкой для администратора.
func (r *postgresRepo) ListOrders(ctx context.Context, onlyNew bool, limit uint64) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if onlyNew {
		q = q.Where(sq.Eq{"notification": entities.NotificationNew})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	return r.listOrders(ctx, q)
}

func (r *postgresRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	itemsMap := make(map[int64][]OrderItem, len(orders))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsByOrders(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	// Первая картинка товара, если она есть
	query, args := r.qb.Select(
		"oi.order_id", "oi.product_id", "p.name AS title", "oi.quantity", "oi.price",
		"(SELECT pi.image_filename FROM product_images pi WHERE pi.product_id = p.id ORDER BY pi.id ASC LIMIT 1) AS image_filename",
	).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.order_id", "oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

// GetOrderByNumber внутри транзакции блокирует строку заказа до её конца.
func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": orderNumber})

	if trm.ExtractTx(ctx) != nil {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrders(ctx, []int64{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ClearNotification(ctx context.Context, orderNumber string) error {
	query, args := r.qb.Update("orders").
		Set("notification", nullString("")).
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to clear notification: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) TrackingByNumber(ctx context.Context, orderNumber string) ([]entities.TrackingEntry, error) {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var orderID int64
	err := r.getContext(ctx, &orderID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("status", "description", "update_time").
		From("order_tracking").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("update_time ASC", "id ASC").
		MustSql()

	var rows []TrackingEntry
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select tracking: %w", err)
	}

	entries := make([]entities.TrackingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, TrackingToEntity(row))
	}
	return entries, nil
}

// run выполняет запрос в транзакции из ctx или на отдельном соединении из пула.
func (r *postgresRepo) run(ctx context.Context, fn func(q queryer) error) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return fn(tx)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := r.run(ctx, func(q queryer) error {
		var err error
		res, err = q.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return r.run(ctx, func(q queryer) error {
		return q.GetContext(ctx, dest, query, args...)
	})
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return r.run(ctx, func(q queryer) error {
		return q.SelectContext(ctx, dest, query, args...)
	})
}
