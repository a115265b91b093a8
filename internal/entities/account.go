package entities

import "time"

type Account struct {
	ID           int64
	Handle       string
	Email        string
	PasswordHash string
	Role         RoleType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoleType string

const (
	RoleAdmin         RoleType = "ADMIN"
	RoleDeliveryAgent RoleType = "DELIVERY_AGENT"
	RoleCustomer      RoleType = "CUSTOMER"
)

const DefaultRole = RoleCustomer

func (r RoleType) String() string {
	return string(r)
}

type AccountModify struct {
	ID           *int64
	Handle       *string
	Email        *string
	PasswordHash *string
	Role         *RoleType
}

// Registration — данные самостоятельной регистрации, пароль в открытом виде.
// Хеширование — забота сервиса, в AccountModify пароль попадает уже хешем.
type Registration struct {
	Handle          string
	Email           string
	Password        string
	PasswordConfirm string
	Role            RoleType
}

// AccountInput — изменяемые поля аккаунта с паролем в открытом виде.
type AccountInput struct {
	Handle   *string
	Email    *string
	Password *string
	Role     *RoleType
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
