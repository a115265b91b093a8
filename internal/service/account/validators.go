package account

import (
	"strings"

	"service/internal/entities"
)

const minPasswordLength = 8

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleDeliveryAgent, entities.RoleCustomer:
		return true
	default:
		return false
	}
}

func isValidHandle(handle string) bool {
	return strings.TrimSpace(handle) != ""
}

// isValidEmail: без полного разбора адреса, почтовая валидация — не наша забота.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")

	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}
