// Package dto — структуры запросов и ответов REST API.
package dto

import "time"

type RegisterRequest struct {
	Handle          string `json:"handle"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            string `json:"role"`
}

type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Account struct {
	ID        int64     `json:"id"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountModify покрывает и админский CRUD, и правку собственного профиля:
// у профиля роль игнорируется на уровне сервиса.
type AccountModify struct {
	Handle   *string `json:"handle"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// OrderCreate: total_amount строкой, float для денег не используем.
type OrderCreate struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	PackageDetails  string `json:"package_details"`
	TotalAmount     string `json:"total_amount"`
	AssignedAgentID *int64 `json:"assigned_agent_id"`
	PayNow          bool   `json:"pay_now"`
}

type OrderUpdate struct {
	PickupAddress   *string `json:"pickup_address"`
	DeliveryAddress *string `json:"delivery_address"`
	PackageDetails  *string `json:"package_details"`
	Status          *string `json:"status"`
	TotalAmount     *string `json:"total_amount"`
	AssignedAgentID *int64  `json:"assigned_agent_id"`
}

type Order struct {
	ID               int64     `json:"id"`
	OwnerID          int64     `json:"owner_id"`
	AssignedAgentID  *int64    `json:"assigned_agent_id"`
	PickupAddress    string    `json:"pickup_address"`
	DeliveryAddress  string    `json:"delivery_address"`
	PackageDetails   string    `json:"package_details"`
	Status           string    `json:"status"`
	TotalAmount      string    `json:"total_amount"`
	IsPaid           bool      `json:"is_paid"`
	PaymentMethod    *string   `json:"payment_method"`
	PaymentReference *string   `json:"payment_reference"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PaymentIntent struct {
	Reference    string `json:"payment_reference"`
	ClientSecret string `json:"client_secret"`
	AmountMinor  int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
