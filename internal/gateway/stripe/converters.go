package stripe

import (
	"service/internal/entities"
)

// intentPayload — представление payment intent в ответах API.
type intentPayload struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type errorPayload struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func toDomain(payload *intentPayload) *entities.PaymentIntent {
	if payload == nil {
		return nil
	}

	return &entities.PaymentIntent{
		Reference:    payload.ID,
		ClientSecret: payload.ClientSecret,
		AmountMinor:  payload.Amount,
		Currency:     payload.Currency,
		Status:       entities.PaymentIntentStatus(payload.Status),
	}
}
