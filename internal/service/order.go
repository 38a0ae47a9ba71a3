package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
)

type OrderRepo interface {
	// InsertOrder возвращает ErrOrderNumberTaken, если номер уже занят
	InsertOrder(ctx context.Context, orderNumber string, o entities.NewOrder) (int64, error)
	InsertTrackingEntry(ctx context.Context, orderID int64, e entities.TrackingEntry) error
	InsertLineItem(ctx context.Context, orderID int64, item entities.LineItem) error
	DecrementStock(ctx context.Context, productID int64, quantity int) error
	IncrementStock(ctx context.Context, productID int64, quantity int) error

	OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error)
	ListOrders(ctx context.Context, onlyNew bool, limit uint64) ([]entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	TrackingByNumber(ctx context.Context, orderNumber string) ([]entities.TrackingEntry, error)

	UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
	ClearNotification(ctx context.Context, orderNumber string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	numbers   OrderNumberGenerator
	publisher EventPublisher

	numberRetry utils.RetryConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	numbers OrderNumberGenerator,
	publisher EventPublisher,
	numberAttempts int,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		numbers:   numbers,
		publisher: publisher,
		numberRetry: utils.RetryConfig{
			MaxAttempts: numberAttempts,
			RetryIf: func(err error) bool {
				return errors.Is(err, entities.ErrOrderNumberTaken)
			},
		},
	}
}

// CreateOrder записывает заказ, его позиции и первую запись трекинга одной
// транзакцией и списывает остатки. При коллизии номера транзакция
// повторяется целиком с новым номером.
func (s *orderService) CreateOrder(ctx context.Context, o entities.NewOrder) (entities.CreatedOrder, error) {
	if err := validateNewOrder(o); err != nil {
		ordersFailed.WithLabelValues("validation").Inc()
		return entities.CreatedOrder{}, err
	}

	var created entities.CreatedOrder
	fn := func() error {
		number := s.numbers.Next()
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			id, err := s.repo.InsertOrder(ctx, number, o)
			if err != nil {
				return err
			}

			ordered := entities.TrackingEntry{
				Status:      entities.TrackingOrdered,
				Description: entities.TrackingOrderedDescription,
			}
			if err := s.repo.InsertTrackingEntry(ctx, id, ordered); err != nil {
				return err
			}

			for _, item := range o.Items {
				if err := s.repo.InsertLineItem(ctx, id, item); err != nil {
					return fmt.Errorf("product %d: %w", item.ProductID, err)
				}
				if err := s.repo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					return fmt.Errorf("product %d: %w", item.ProductID, err)
				}
			}

			created = entities.CreatedOrder{ID: id, OrderNumber: number}
			return nil
		})
		if errors.Is(err, entities.ErrOrderNumberTaken) {
			orderNumberCollisions.Inc()
			s.logger.Debug("order number collision", slog.String("order_number", number))
		}
		return err
	}

	err := utils.Retry(ctx, s.numberRetry, fn)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrOrderNumberTaken):
		ordersFailed.WithLabelValues("identifier_space").Inc()
		s.logger.Error("order number attempts exhausted", slog.Int("attempts", s.numberRetry.MaxAttempts))
		return entities.CreatedOrder{}, entities.ErrIdentifierSpaceExhausted
	case errors.Is(err, entities.ErrResourceUnavailable):
		ordersFailed.WithLabelValues("resource").Inc()
		return entities.CreatedOrder{}, err
	case errors.Is(err, entities.ErrInsufficientStock), errors.Is(err, entities.ErrProductNotFound):
		ordersFailed.WithLabelValues("stock").Inc()
		return entities.CreatedOrder{}, err
	default:
		ordersFailed.WithLabelValues("transaction").Inc()
		s.logger.Error("order transaction rolled back", slog.Any("error", err), slog.Int64("buyer_id", o.BuyerID))
		return entities.CreatedOrder{}, fmt.Errorf("%w: %w", entities.ErrTransactionFailed, err)
	}

	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.Int64("order_id", created.ID),
		slog.String("order_number", created.OrderNumber),
		slog.Int64("buyer_id", o.BuyerID),
	)

	s.publish(ctx, events.NewOrderCreated(events.OrderCreated{
		OrderID:       created.ID,
		OrderNumber:   created.OrderNumber,
		BuyerID:       o.BuyerID,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
	}))

	return created, nil
}

func validateNewOrder(o entities.NewOrder) error {
	switch {
	case o.BuyerID <= 0:
		return fmt.Errorf("%w: buyer is required", entities.ErrValidation)
	case o.AddressID <= 0:
		return fmt.Errorf("%w: address is required", entities.ErrValidation)
	case o.PaymentMethod == "":
		return fmt.Errorf("%w: payment method is required", entities.ErrValidation)
	case !o.TotalAmount.IsPositive():
		return fmt.Errorf("%w: total amount must be positive", entities.ErrValidation)
	case len(o.Items) == 0:
		return fmt.Errorf("%w: order has no items", entities.ErrValidation)
	}

	for i, item := range o.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.Price.IsNegative() {
			return fmt.Errorf("%w: invalid item #%d", entities.ErrValidation, i)
		}
	}
	return nil
}

func (s *orderService) BuyerOrders(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	return s.repo.OrdersByBuyer(ctx, buyerID)
}

func (s *orderService) ListOrders(ctx context.Context, limit uint64) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, false, limit)
}

// NewOrders - заказы, которые администратор ещё не просмотрел.
func (s *orderService) NewOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, true, 0)
}

func (s *orderService) Tracking(ctx context.Context, orderNumber string) ([]entities.TrackingEntry, error) {
	return s.repo.TrackingByNumber(ctx, orderNumber)
}

func (s *orderService) ClearNotification(ctx context.Context, orderNumber string) error {
	return s.repo.ClearNotification(ctx, orderNumber)
}

func (s *orderService) CancelOrder(ctx context.Context, orderNumber string) error {
	return s.changeStatus(ctx, orderNumber, entities.OrderStatusCancelled)
}

func (s *orderService) ArchiveOrder(ctx context.Context, orderNumber string) error {
	return s.changeStatus(ctx, orderNumber, entities.OrderStatusArchived)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderNumber string, status entities.OrderStatus) error {
	return s.changeStatus(ctx, orderNumber, status)
}

// AppendTracking добавляет запись трекинга от службы доставки.
func (s *orderService) AppendTracking(ctx context.Context, orderNumber string, e entities.TrackingEntry) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
		if err != nil {
			return err
		}
		return s.repo.InsertTrackingEntry(ctx, order.ID, e)
	})
}

// changeStatus переводит заказ в новый статус под блокировкой строки.
// Отмена возвращает товар на склад; повторный перевод в тот же статус
// ничего не меняет.
func (s *orderService) changeStatus(ctx context.Context, orderNumber string, to entities.OrderStatus) error {
	var from entities.OrderStatus
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
		if err != nil {
			return err
		}

		from = order.Status
		if from == to {
			return nil
		}
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrStatusConflict, from, to)
		}

		if to == entities.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := s.repo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					return fmt.Errorf("failed to restore stock of product %d: %w", item.ProductID, err)
				}
			}
		}

		if err := s.repo.UpdateStatus(ctx, order.ID, to); err != nil {
			return err
		}

		return s.repo.InsertTrackingEntry(ctx, order.ID, entities.TrackingEntry{
			Status:      string(to),
			Description: "Order status changed to " + string(to),
			UpdatedAt:   time.Now(),
		})
	})
	if err != nil {
		return err
	}

	if from != to {
		s.logger.Info("order status changed",
			slog.String("order_number", orderNumber),
			slog.String("from", string(from)),
			slog.String("to", string(to)),
		)
		s.publish(ctx, events.NewOrderStatusChanged(events.OrderStatusChanged{
			OrderNumber: orderNumber,
			From:        string(from),
			To:          string(to),
		}))
	}
	return nil
}

// publish не влияет на результат операции: данные уже закоммичены.
func (s *orderService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn("failed to publish event",
			slog.String("type", e.Type),
			slog.String("key", e.Key),
			slog.Any("error", err),
		)
	}
}
