package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidAmount         = errors.New("total_amount invalid")
	ErrInvalidAgent          = errors.New("assigned agent must be a delivery agent")

	ErrInsufficientRole = errors.New("insufficient role")
	ErrNotAssigned      = errors.New("not assigned")

	ErrOrderNotFound = errors.New("order not found")
)
