package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront/internal/handler/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTrackingConsumer_Process(t *testing.T) {
	updated := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter)
		wantCommit   bool
	}{
		{
			name:  "appended",
			value: `{"order_number":"123456","status":"In transit","description":"Left hub","update_time":"2025-03-01T09:30:00Z"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				orders.EXPECT().AppendTracking(mock.Anything, "123456", entities.TrackingEntry{
					Status:      "In transit",
					Description: "Left hub",
					UpdatedAt:   updated,
				}).Return(nil).Once()
			},
			wantCommit: true,
		},
		{
			name:  "broken json goes to dlq",
			value: `{"order_number":`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.MatchedBy(func(m kafka.Message) bool {
					return m.Topic == "tracking-dlq" && string(m.Value) == `{"order_number":`
				})).Return(nil).Once()
			},
			wantCommit: true,
		},
		{
			name:  "invalid order number goes to dlq",
			value: `{"order_number":"12","status":"In transit"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCommit: true,
		},
		{
			name:  "unknown order goes to dlq",
			value: `{"order_number":"654321","status":"Delivered"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				orders.EXPECT().AppendTracking(mock.Anything, "654321", mock.Anything).Return(entities.ErrOrderNotFound).Once()
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCommit: true,
		},
		{
			name:  "dlq failure keeps message uncommitted",
			value: `not json`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:  "apply and dlq both fail",
			value: `{"order_number":"123456","status":"Packed"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.Anything).Return(errors.New("db down")).Once()
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()
			},
		},
		{
			name:  "unavailable database is retried then left uncommitted",
			value: `{"order_number":"123456","status":"Packed"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.Anything).
					Return(fmt.Errorf("%w: dial tcp", entities.ErrResourceUnavailable)).Times(3)
			},
		},
		{
			name:  "unavailable database recovers on retry",
			value: `{"order_number":"123456","status":"Packed"}`,
			mockBehavior: func(orders *mocks.MockTrackingAppender, dlq *mocks.MockMessageWriter) {
				orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.Anything).
					Return(fmt.Errorf("%w: dial tcp", entities.ErrResourceUnavailable)).Once()
				orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.Anything).Return(nil).Once()
			},
			wantCommit: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockTrackingAppender(t)
			dlq := mocks.NewMockMessageWriter(t)
			tc.mockBehavior(orders, dlq)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := newTrackingConsumer(logger, mocks.NewMockMessageReader(t), dlq, orders)
			h.retry.InitialDelay = 0

			got := h.process(context.Background(), kafka.Message{Topic: "tracking", Value: []byte(tc.value)})
			assert.Equal(t, tc.wantCommit, got)
		})
	}
}

func TestTrackingConsumer_Consume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := kafka.Message{Topic: "tracking", Offset: 1, Value: []byte(`{"order_number":"123456","status":"Packed"}`)}

	reader := mocks.NewMockMessageReader(t)
	reader.EXPECT().FetchMessage(mock.Anything).Return(msg, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, context.Canceled).Once()
	reader.EXPECT().CommitMessages(mock.Anything, msg).Return(nil).Once()

	orders := mocks.NewMockTrackingAppender(t)
	orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.MatchedBy(func(e entities.TrackingEntry) bool {
		return e.Status == "Packed" && !e.UpdatedAt.IsZero()
	})).Return(nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newTrackingConsumer(logger, reader, mocks.NewMockMessageWriter(t), orders)

	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestTrackingConsumer_ConsumeSkipsCommitWhenUnhandled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := kafka.Message{Topic: "tracking", Offset: 2, Value: []byte(`{"order_number":"123456","status":"Packed"}`)}

	reader := mocks.NewMockMessageReader(t)
	reader.EXPECT().FetchMessage(mock.Anything).Return(msg, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, context.Canceled).Once()

	orders := mocks.NewMockTrackingAppender(t)
	orders.EXPECT().AppendTracking(mock.Anything, "123456", mock.Anything).Return(errors.New("db down")).Once()

	dlq := mocks.NewMockMessageWriter(t)
	dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newTrackingConsumer(logger, reader, dlq, orders)

	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}

func TestTrackingConsumer_Close(t *testing.T) {
	reader := mocks.NewMockMessageReader(t)
	dlq := mocks.NewMockMessageWriter(t)
	reader.EXPECT().Close().Return(nil).Once()
	dlq.EXPECT().Close().Return(nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newTrackingConsumer(logger, reader, dlq, mocks.NewMockTrackingAppender(t))

	assert.NoError(t, h.Close())
}
