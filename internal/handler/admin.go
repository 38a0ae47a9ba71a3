package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/middleware"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultAdminLimit = 50
	maxAdminLimit     = 500
)

type AdminService interface {
	ListOrders(ctx context.Context, limit uint64) ([]entities.Order, error)
	NewOrders(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, status entities.OrderStatus) error
	ClearNotification(ctx context.Context, orderNumber string) error
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AdminService
	present  presenter
	guard    func(http.Handler) http.Handler
}

// NewAdminHandler: guard == nil оставляет ручки открытыми.
func NewAdminHandler(logger *slog.Logger, svc AdminService, loc *time.Location, uploadsURL string, guard func(http.Handler) http.Handler) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		svc:      svc,
		present:  presenter{loc: loc, uploadsURL: uploadsURL},
		guard:    guard,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin/orders", func(r chi.Router) {
		if h.guard != nil {
			r.Use(h.guard)
		}
		r.Get("/", h.ListOrders)
		r.Get("/new", h.NewOrders)
		r.Put("/{order_number}/status", h.UpdateStatus)
		r.Put("/{order_number}/notification", h.ClearNotification)
	})
}

// ListOrders возвращает последние заказы.
// @Summary      Последние заказы
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Количество заказов (по умолчанию 50)"
// @Success      200    {array}   Order
// @Failure      400    {object}  utils.ErrorResponse "Неверный limit"
// @Failure      401    {object}  utils.ErrorResponse "Нет токена"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint64(defaultAdminLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 || n > maxAdminLimit {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	orders, err := h.svc.ListOrders(ctx, limit)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	utils.NoCache(w)
	utils.WriteJSON(w, h.present.orders(orders), http.StatusOK)
}

// NewOrders возвращает заказы, которые ещё не просмотрены.
// @Summary      Новые заказы
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/new [get]
func (h *AdminHandler) NewOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.NewOrders(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list new orders")
		return
	}

	utils.NoCache(w)
	utils.WriteJSON(w, h.present.orders(orders), http.StatusOK)
}

// UpdateStatus меняет статус заказа и добавляет запись трекинга.
// @Summary      Сменить статус заказа
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_number  path      string               true  "Номер заказа"
// @Param        status        body      UpdateStatusRequest  true  "Новый статус"
// @Success      200           {object}  utils.ErrorResponse
// @Failure      400           {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404           {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409           {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500           {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_number}/status [put]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber, ok := validOrderNumber(h.validate, w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	status, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		utils.WriteError(w, "invalid order status", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(ctx, orderNumber, status); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order status")
		return
	}

	attrs := []any{slog.String("order_number", orderNumber), slog.String("status", string(status))}
	if adminID, ok := middleware.UserID(ctx); ok {
		attrs = append(attrs, slog.Int64("admin_id", adminID))
	}
	h.logger.InfoContext(ctx, "order status updated", attrs...)

	utils.WriteJSON(w, utils.ErrorResponse{Message: "status updated"}, http.StatusOK)
}

// ClearNotification снимает отметку "new" с заказа.
// @Summary      Отметить заказ просмотренным
// @Tags         admin
// @Security     BearerAuth
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200           {object}  utils.ErrorResponse
// @Failure      404           {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500           {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_number}/notification [put]
func (h *AdminHandler) ClearNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber, ok := validOrderNumber(h.validate, w, r)
	if !ok {
		return
	}

	if err := h.svc.ClearNotification(ctx, orderNumber); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to clear notification")
		return
	}
	utils.WriteJSON(w, utils.ErrorResponse{Message: "notification cleared"}, http.StatusOK)
}
