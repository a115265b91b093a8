package order_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/dto"
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

	orderEntity, err := h.service.GetOrder(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			h.write(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, order.ErrInsufficientRole):
			h.write(w, http.StatusForbidden, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get order")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.write(w, http.StatusOK, "order", dto.FromOrder(orderEntity))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
