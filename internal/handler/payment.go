package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Daraja присылает небольшие JSON, больше не читаем
const maxCallbackSize = 64 << 10

type PaymentService interface {
	Initiate(ctx context.Context, phone string, amount int64) (string, error)
	HandleCallback(ctx context.Context, payload []byte) error
	QueryStatus(ctx context.Context, checkoutID string) (entities.PaymentStatus, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payments")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/initiate", h.Initiate)
		r.Post("/callback", h.Callback)
		r.Get("/{checkout_id}/status", h.Status)
	})
}

// Initiate отправляет STK push на телефон покупателя.
// @Summary      Начать оплату M-Pesa
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      InitiatePaymentRequest  true  "Телефон и сумма"
// @Success      200      {object}  InitiatePaymentResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502      {object}  utils.ErrorResponse "Ошибка платёжного шлюза"
// @Router       /payments/initiate [post]
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InitiatePaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	amount := req.Amount.IntPart()
	if amount <= 0 {
		utils.WriteError(w, "amount must be at least 1", http.StatusBadRequest)
		return
	}

	checkoutID, err := h.svc.Initiate(ctx, req.Phone, amount)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to initiate payment")
		return
	}

	utils.WriteJSON(w, InitiatePaymentResponse{CheckoutID: checkoutID}, http.StatusOK)
}

// Callback принимает результат оплаты от Daraja.
// @Summary      Callback M-Pesa
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  CallbackAck
// @Failure      400  {object}  utils.ErrorResponse "Неверный формат"
// @Router       /payments/callback [post]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallbackSize))
	if err != nil {
		utils.WriteError(w, "bad callback format", http.StatusBadRequest)
		return
	}

	err = h.svc.HandleCallback(ctx, payload)
	if errors.Is(err, entities.ErrCallbackFormat) {
		h.logger.WarnContext(ctx, "malformed callback", slog.Any("error", err))
		utils.WriteError(w, "bad callback format", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to handle callback", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}, http.StatusOK)
}

// Status возвращает статус оплаты; неизвестная сессия считается Pending.
// @Summary      Статус оплаты
// @Tags         payments
// @Produce      json
// @Param        checkout_id  path      string  true  "CheckoutRequestID"
// @Success      200          {object}  PaymentStatusResponse
// @Router       /payments/{checkout_id}/status [get]
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkoutID := chi.URLParam(r, "checkout_id")

	status, err := h.svc.QueryStatus(ctx, checkoutID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query payment status", slog.Any("error", err), slog.String("checkout_id", checkoutID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.NoCache(w)
	utils.WriteJSON(w, PaymentStatusResponse{Status: string(status)}, http.StatusOK)
}
