package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               int64
	OwnerID          int64
	AssignedAgentID  *int64
	PickupAddress    string
	DeliveryAddress  string
	PackageDetails   string
	Status           OrderStatusType
	TotalAmount      decimal.Decimal
	IsPaid           bool
	PaymentMethod    *string
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderPicked    OrderStatusType = "PICKED"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderReturned  OrderStatusType = "RETURNED"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderComplete  OrderStatusType = "COMPLETE"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderFilter задает предикат выборки. Скоупинг по ролям выполняется
// именно тут, на уровне запроса, а не фильтрацией уже прочитанных строк.
type OrderFilter struct {
	OwnerID         *int64
	AssignedAgentID *int64
}

type OrderModify struct {
	ID              *int64
	OwnerID         *int64
	AssignedAgentID *int64
	PickupAddress   *string
	DeliveryAddress *string
	PackageDetails  *string
	Status          *OrderStatusType
	TotalAmount     *decimal.Decimal
}
