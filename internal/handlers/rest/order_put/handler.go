package order_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"service/internal/dto"
	"service/internal/entities"
	"service/internal/handlers/rest/envelope"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.write(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.write(w, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	var orderDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	orderModify := entities.OrderModify{
		ID:              &id,
		PickupAddress:   orderDTO.PickupAddress,
		DeliveryAddress: orderDTO.DeliveryAddress,
		PackageDetails:  orderDTO.PackageDetails,
		AssignedAgentID: orderDTO.AssignedAgentID,
	}

	if orderDTO.Status != nil {
		status := entities.OrderStatusType(*orderDTO.Status)
		orderModify.Status = &status
	}

	if orderDTO.TotalAmount != nil {
		totalAmount, err := decimal.NewFromString(*orderDTO.TotalAmount)
		if err != nil {
			h.write(w, http.StatusBadRequest, "total_amount invalid", nil)
			return
		}
		orderModify.TotalAmount = &totalAmount
	}

	updated, err := h.service.UpdateOrder(r.Context(), actor, orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrInvalidAgent):
			h.write(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, order.ErrOrderNotFound):
			h.write(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, order.ErrInsufficientRole),
			errors.Is(err, order.ErrNotAssigned):
			h.write(w, http.StatusForbidden, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update order")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.write(w, http.StatusOK, "order updated", dto.FromOrder(updated))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
