package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, o entities.NewOrder) (entities.CreatedOrder, error)
	BuyerOrders(ctx context.Context, buyerID int64) ([]entities.Order, error)
	Tracking(ctx context.Context, orderNumber string) ([]entities.TrackingEntry, error)
	CancelOrder(ctx context.Context, orderNumber string) error
	ArchiveOrder(ctx context.Context, orderNumber string) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	present  presenter
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, loc *time.Location, uploadsURL string) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		present:  presenter{loc: loc, uploadsURL: uploadsURL},
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{buyer_id}", h.BuyerOrders)
		r.Get("/{order_number}/tracking", h.Tracking)
		r.Put("/{order_number}/cancel", h.CancelOrder)
		r.Put("/{order_number}/archive", h.ArchiveOrder)
	})
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Создаёт заказ с позициями и списывает остатки одной транзакцией
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  CreateOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404    {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409    {object}  utils.ErrorResponse "Недостаточно товара"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	created, err := h.svc.CreateOrder(ctx, NewOrderFromRequest(req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, CreateOrderResponse{OrderID: created.ID, OrderNumber: created.OrderNumber}, http.StatusCreated)
}

// BuyerOrders возвращает историю заказов покупателя.
// @Summary      Заказы покупателя
// @Description  Заказы с позициями, первой картинкой товара и сводкой, новые первыми
// @Tags         orders
// @Produce      json
// @Param        buyer_id  path      int  true  "ID покупателя"
// @Success      200       {array}   Order
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{buyer_id} [get]
func (h *OrderHandler) BuyerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyerID, err := strconv.ParseInt(chi.URLParam(r, "buyer_id"), 10, 64)
	if err != nil || buyerID <= 0 {
		utils.WriteError(w, "invalid buyer id", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.BuyerOrders(ctx, buyerID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get buyer orders")
		return
	}

	utils.NoCache(w)
	utils.WriteJSON(w, h.present.orders(orders), http.StatusOK)
}

// Tracking возвращает историю доставки заказа.
// @Summary      Трекинг заказа
// @Tags         orders
// @Produce      json
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200           {array}   TrackingEntry
// @Failure      400           {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404           {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500           {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number}/tracking [get]
func (h *OrderHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber, ok := h.orderNumber(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.Tracking(ctx, orderNumber)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get tracking")
		return
	}

	utils.NoCache(w)
	utils.WriteJSON(w, h.present.tracking(entries), http.StatusOK)
}

// CancelOrder отменяет заказ, ещё не переданный в доставку.
// @Summary      Отменить заказ
// @Tags         orders
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200           {object}  utils.ErrorResponse
// @Failure      404           {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409           {object}  utils.ErrorResponse "Статус не позволяет отмену"
// @Failure      500           {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number}/cancel [put]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber, ok := h.orderNumber(w, r)
	if !ok {
		return
	}

	if err := h.svc.CancelOrder(ctx, orderNumber); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to cancel order")
		return
	}
	utils.WriteJSON(w, utils.ErrorResponse{Message: "order cancelled"}, http.StatusOK)
}

// ArchiveOrder убирает доставленный или отменённый заказ в архив.
// @Summary      Архивировать заказ
// @Tags         orders
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200           {object}  utils.ErrorResponse
// @Failure      404           {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409           {object}  utils.ErrorResponse "Статус не позволяет архивацию"
// @Failure      500           {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number}/archive [put]
func (h *OrderHandler) ArchiveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber, ok := h.orderNumber(w, r)
	if !ok {
		return
	}

	if err := h.svc.ArchiveOrder(ctx, orderNumber); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to archive order")
		return
	}
	utils.WriteJSON(w, utils.ErrorResponse{Message: "order archived"}, http.StatusOK)
}

func (h *OrderHandler) orderNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	return validOrderNumber(h.validate, w, r)
}

func validOrderNumber(validate *validator.Validate, w http.ResponseWriter, r *http.Request) (string, bool) {
	orderNumber := chi.URLParam(r, "order_number")
	if err := validate.Var(orderNumber, "required,len=6,numeric"); err != nil {
		utils.WriteValidationError(w, err)
		return "", false
	}
	return orderNumber, true
}

// writeServiceError отдаёт клиенту только общий текст, причина остаётся в логах.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrValidation), errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
	case errors.Is(err, entities.ErrStatusConflict):
		utils.WriteError(w, "order status does not allow this operation", http.StatusConflict)
	case errors.Is(err, entities.ErrGateway):
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "payment gateway error", http.StatusBadGateway)
	case errors.Is(err, entities.ErrIdentifierSpaceExhausted):
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "failed to generate unique order number", http.StatusInternalServerError)
	case errors.Is(err, entities.ErrResourceUnavailable):
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "database unavailable", http.StatusInternalServerError)
	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
