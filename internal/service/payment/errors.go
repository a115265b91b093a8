package payment

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyPaid      = errors.New("order already paid")
	ErrInvalidAmount    = errors.New("total_amount invalid")
	ErrUnknownReference = errors.New("unknown payment reference")
	ErrGateway          = errors.New("payment gateway error")
)
