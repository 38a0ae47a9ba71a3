package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/SergeyBogomolovv/storefront/internal/mpesa"
)

type PaymentGateway interface {
	// STKPush возвращает идентификатор, с которым придёт callback
	STKPush(ctx context.Context, phone string, amount int64) (string, error)
}

type SessionStore interface {
	Register(ctx context.Context, checkoutID string) error
	// Resolve не меняет конечный статус; applied=false, если запись не изменилась
	Resolve(ctx context.Context, checkoutID string, status entities.PaymentStatus) (current entities.PaymentStatus, applied bool, err error)
	Status(ctx context.Context, checkoutID string) (entities.PaymentStatus, bool, error)
}

type paymentService struct {
	logger    *slog.Logger
	gateway   PaymentGateway
	sessions  SessionStore
	publisher EventPublisher
	timeout   time.Duration
}

func NewPaymentService(
	logger *slog.Logger,
	gateway PaymentGateway,
	sessions SessionStore,
	publisher EventPublisher,
	timeout time.Duration,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		gateway:   gateway,
		sessions:  sessions,
		publisher: publisher,
		timeout:   timeout,
	}
}

func (s *paymentService) Initiate(ctx context.Context, phone string, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", entities.ErrValidation)
	}

	gwCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	checkoutID, err := s.gateway.STKPush(gwCtx, phone, amount)
	if errors.Is(err, entities.ErrValidation) {
		return "", err
	}
	if err != nil {
		s.logger.Error("stk push failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", entities.ErrGateway, err)
	}
	if checkoutID == "" {
		return "", fmt.Errorf("%w: empty checkout id", entities.ErrGateway)
	}

	if err := s.sessions.Register(ctx, checkoutID); err != nil {
		return "", err
	}

	s.logger.Info("payment initiated", slog.String("checkout_id", checkoutID), slog.Int64("amount", amount))
	return checkoutID, nil
}

// HandleCallback применяет результат оплаты. Повторная доставка того же
// callback'а, как и callback для неизвестной сессии, не считается ошибкой.
func (s *paymentService) HandleCallback(ctx context.Context, payload []byte) error {
	cb, err := mpesa.ParseCallback(payload)
	if err != nil {
		return err
	}

	status := entities.PaymentStatusFromResultCode(cb.ResultCode)
	current, applied, err := s.sessions.Resolve(ctx, cb.CheckoutRequestID, status)
	if err != nil {
		return err
	}

	if !applied {
		if current != status {
			s.logger.Warn("conflicting callback ignored",
				slog.String("checkout_id", cb.CheckoutRequestID),
				slog.String("current", string(current)),
				slog.String("received", string(status)),
			)
		}
		return nil
	}

	paymentCallbacks.WithLabelValues(string(status)).Inc()
	s.logger.Info("payment resolved",
		slog.String("checkout_id", cb.CheckoutRequestID),
		slog.String("status", string(status)),
		slog.Int("result_code", cb.ResultCode),
		slog.String("result_desc", cb.ResultDesc),
	)

	e := events.NewPaymentStatusChanged(events.PaymentStatusChanged{
		CheckoutID: cb.CheckoutRequestID,
		Status:     string(status),
		ResultCode: cb.ResultCode,
	})
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn("failed to publish event", slog.String("type", e.Type), slog.Any("error", err))
	}
	return nil
}

// QueryStatus для неизвестной сессии отвечает Pending.
func (s *paymentService) QueryStatus(ctx context.Context, checkoutID string) (entities.PaymentStatus, error) {
	status, ok, err := s.sessions.Status(ctx, checkoutID)
	if err != nil {
		return "", err
	}
	if !ok {
		return entities.PaymentPending, nil
	}
	return status, nil
}
