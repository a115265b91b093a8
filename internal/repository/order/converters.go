package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"service/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	totalAmount, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("parse total_amount %q: %w", o.TotalAmount, err)
	}

	return &entities.Order{
		ID:               o.ID,
		OwnerID:          o.OwnerID,
		AssignedAgentID:  o.AssignedAgentID,
		PickupAddress:    o.PickupAddress,
		DeliveryAddress:  o.DeliveryAddress,
		PackageDetails:   o.PackageDetails,
		Status:           entities.OrderStatusType(o.Status),
		TotalAmount:      totalAmount,
		IsPaid:           o.IsPaid,
		PaymentMethod:    o.PaymentMethod,
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}, nil
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.OwnerID != nil {
		orderDB.OwnerID = orderModify.OwnerID
	}
	if orderModify.AssignedAgentID != nil {
		orderDB.AssignedAgentID = orderModify.AssignedAgentID
	}
	if orderModify.PickupAddress != nil {
		orderDB.PickupAddress = orderModify.PickupAddress
	}
	if orderModify.DeliveryAddress != nil {
		orderDB.DeliveryAddress = orderModify.DeliveryAddress
	}
	if orderModify.PackageDetails != nil {
		orderDB.PackageDetails = orderModify.PackageDetails
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.TotalAmount != nil {
		totalAmount := orderModify.TotalAmount.StringFixed(2)
		orderDB.TotalAmount = &totalAmount
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		orderDomain, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		result[i] = *orderDomain
	}
	return result, nil
}
