package order

import "time"

// TotalAmount возится как строка (total_amount::text в выборках),
// конвертация в decimal происходит в converters.go. Так сумма не
// проходит через float и остается точной.
type OrderDB struct {
	ID               int64
	OwnerID          int64
	AssignedAgentID  *int64
	PickupAddress    string
	DeliveryAddress  string
	PackageDetails   string
	Status           string
	TotalAmount      string
	IsPaid           bool
	PaymentMethod    *string
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderModifyDB struct {
	ID              *int64
	OwnerID         *int64
	AssignedAgentID *int64
	PickupAddress   *string
	DeliveryAddress *string
	PackageDetails  *string
	Status          *string
	TotalAmount     *string
}
