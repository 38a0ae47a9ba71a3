package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type TrackingAppender interface {
	AppendTracking(ctx context.Context, orderNumber string, e entities.TrackingEntry) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// trackingConsumer читает шаги доставки от внешней службы.
type trackingConsumer struct {
	reader   MessageReader
	dlq      MessageWriter
	logger   *slog.Logger
	validate *validator.Validate
	orders   TrackingAppender
	// повторы при недоступной базе до того, как оставить сообщение без коммита
	retry utils.RetryConfig
}

func NewTrackingConsumer(logger *slog.Logger, cfg config.Kafka, orders TrackingAppender) *trackingConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.TrackingTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newTrackingConsumer(logger, reader, dlq, orders)
}

func newTrackingConsumer(logger *slog.Logger, reader MessageReader, dlq MessageWriter, orders TrackingAppender) *trackingConsumer {
	return &trackingConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		orders:   orders,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			RetryIf: func(err error) bool {
				return errors.Is(err, entities.ErrResourceUnavailable)
			},
		},
	}
}

func (h *trackingConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process возвращает false, если сообщение нельзя коммитить:
// база недоступна или не удалось переложить его в DLQ.
func (h *trackingConsumer) process(ctx context.Context, m kafka.Message) bool {
	trackingInProgress.Inc()
	start := time.Now()
	defer func() {
		trackingInProgress.Dec()
		trackingDuration.Observe(time.Since(start).Seconds())
	}()

	err := utils.Retry(ctx, h.retry, func() error {
		return h.handleTracking(ctx, m)
	})
	if err == nil {
		trackingProcessed.Inc()
		return true
	}

	trackingFailed.Inc()
	if errors.Is(err, entities.ErrResourceUnavailable) || ctx.Err() != nil {
		h.logger.Error("tracking left uncommitted", slog.Any("error", err), slog.Int64("offset", m.Offset))
		return false
	}

	h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err), slog.Int64("offset", m.Offset))
		return false
	}
	trackingDLQ.Inc()
	return true
}

func (h *trackingConsumer) handleTracking(ctx context.Context, m kafka.Message) error {
	var msg TrackingMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal tracking message: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid tracking message: %w", err)
	}

	return h.orders.AppendTracking(ctx, msg.OrderNumber, TrackingMessageToEntity(msg))
}

func (h *trackingConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *trackingConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
