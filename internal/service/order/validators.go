package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isValidStatus(status string) bool {
	switch status {
	case "PENDING", "PICKED", "IN_TRANSIT", "RETURNED", "DELIVERED", "COMPLETE":
		return true
	default:
		return false
	}
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

// isValidAmount: строго положительная сумма, не больше двух знаков после запятой.
func isValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Exponent() >= -2
}
