package dto

import "service/internal/entities"

func FromAccount(accountEntity *entities.Account) Account {
	return Account{
		ID:        accountEntity.ID,
		Handle:    accountEntity.Handle,
		Email:     accountEntity.Email,
		Role:      accountEntity.Role.String(),
		CreatedAt: accountEntity.CreatedAt,
		UpdatedAt: accountEntity.UpdatedAt,
	}
}

func FromAccountList(accounts []entities.Account) []Account {
	result := make([]Account, 0, len(accounts))
	for i := range accounts {
		result = append(result, FromAccount(&accounts[i]))
	}

	return result
}

func FromOrder(orderEntity *entities.Order) Order {
	return Order{
		ID:               orderEntity.ID,
		OwnerID:          orderEntity.OwnerID,
		AssignedAgentID:  orderEntity.AssignedAgentID,
		PickupAddress:    orderEntity.PickupAddress,
		DeliveryAddress:  orderEntity.DeliveryAddress,
		PackageDetails:   orderEntity.PackageDetails,
		Status:           orderEntity.Status.String(),
		TotalAmount:      orderEntity.TotalAmount.StringFixed(2),
		IsPaid:           orderEntity.IsPaid,
		PaymentMethod:    orderEntity.PaymentMethod,
		PaymentReference: orderEntity.PaymentReference,
		CreatedAt:        orderEntity.CreatedAt,
		UpdatedAt:        orderEntity.UpdatedAt,
	}
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}

	return result
}

func FromTokenPair(pair *entities.TokenPair) TokenPair {
	return TokenPair{
		Access:  pair.AccessToken,
		Refresh: pair.RefreshToken,
	}
}

func FromPaymentIntent(intent *entities.PaymentIntent) PaymentIntent {
	return PaymentIntent{
		Reference:    intent.Reference,
		ClientSecret: intent.ClientSecret,
		AmountMinor:  intent.AmountMinor,
		Currency:     intent.Currency,
		Status:       intent.Status.String(),
	}
}
