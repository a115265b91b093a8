package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/handlers/rest/envelope"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	orders   OrderService
	payments PaymentService
}

func New(log handlerLogger, orders OrderService, payments PaymentService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		orders:   orders,
		payments: payments,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.write(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var orderDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	totalAmount, err := decimal.NewFromString(orderDTO.TotalAmount)
	if err != nil {
		h.write(w, http.StatusBadRequest, "total_amount invalid", nil)
		return
	}

	created, err := h.orders.CreateOrder(r.Context(), actor, entities.OrderModify{
		PickupAddress:   &orderDTO.PickupAddress,
		DeliveryAddress: &orderDTO.DeliveryAddress,
		PackageDetails:  &orderDTO.PackageDetails,
		TotalAmount:     &totalAmount,
		AssignedAgentID: orderDTO.AssignedAgentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrInvalidAgent):
			h.write(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	// pay_now — необязательная часть создания: заказ уже есть, поэтому
	// отказ шлюза логируем, но клиенту отдаем успех. Секрет отсюда
	// не возвращается, за ним идут отдельным запросом оплаты.
	if orderDTO.PayNow {
		_, payErr := h.payments.EnsureIntent(r.Context(), actor, created.ID)
		if payErr != nil {
			h.log.With(
				logger.NewField("order_id", created.ID),
				logger.NewField("error", payErr),
			).Warn("payment intent on order create")
		} else if refreshed, getErr := h.orders.GetOrder(r.Context(), actor, created.ID); getErr == nil {
			created = refreshed
		}
	}

	h.write(w, http.StatusCreated, "order created", dto.FromOrder(created))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
