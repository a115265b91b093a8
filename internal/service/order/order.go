package order

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Order struct {
	repository Repository
	accounts   AccountReader
	txManager  TxManager
}

func New(repository Repository, accounts AccountReader, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		accounts:   accounts,
		txManager:  txManager,
	}
}

// CreateOrder создает заказ от имени actor. Владелец всегда actor,
// статус всегда PENDING — что бы ни пришло в modify.
func (s *Order) CreateOrder(ctx context.Context, actor entities.Account, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.PickupAddress == nil ||
		orderModify.DeliveryAddress == nil ||
		orderModify.TotalAmount == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidAddress(*orderModify.PickupAddress) || !isValidAddress(*orderModify.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidAmount(*orderModify.TotalAmount) {
		return nil, ErrInvalidAmount
	}

	// назначенный агент на создании — привилегия админа, остальным поле молча режем
	if orderModify.AssignedAgentID != nil {
		if actor.Role != entities.RoleAdmin {
			orderModify.AssignedAgentID = nil
		} else if err := s.checkAgentRole(ctx, *orderModify.AssignedAgentID); err != nil {
			return nil, err
		}
	}

	defaultStatus := entities.DefaultOrderStatus
	orderModify.OwnerID = &actor.ID
	orderModify.Status = &defaultStatus

	created, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, actor entities.Account, id int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	// чужой заказ наружу отдаем как not found, а не forbidden —
	// существование заказа само по себе информация
	switch actor.Role {
	case entities.RoleAdmin:
		return orderEntity, nil
	case entities.RoleDeliveryAgent:
		if orderEntity.AssignedAgentID == nil || *orderEntity.AssignedAgentID != actor.ID {
			return nil, ErrOrderNotFound
		}
		return orderEntity, nil
	case entities.RoleCustomer:
		if orderEntity.OwnerID != actor.ID {
			return nil, ErrOrderNotFound
		}
		return orderEntity, nil
	default:
		return nil, ErrInsufficientRole
	}
}

func (s *Order) ListOrders(ctx context.Context, actor entities.Account) ([]entities.Order, error) {
	var filter entities.OrderFilter

	switch actor.Role {
	case entities.RoleAdmin:
		// без предиката, админ видит все
	case entities.RoleDeliveryAgent:
		filter.AssignedAgentID = &actor.ID
	case entities.RoleCustomer:
		filter.OwnerID = &actor.ID
	default:
		return nil, ErrInsufficientRole
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *Order) ListAssigned(ctx context.Context, actor entities.Account) ([]entities.Order, error) {
	if actor.Role != entities.RoleDeliveryAgent {
		return nil, ErrInsufficientRole
	}

	orders, err := s.repository.List(ctx, entities.OrderFilter{AssignedAgentID: &actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list assigned orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder применяет изменение по таблице решений:
// CUSTOMER — всегда отказ, DELIVERY_AGENT — только свой заказ и только статус,
// ADMIN — любые поля кроме владельца. Весь read-check-write под row lock.
func (s *Order) UpdateOrder(ctx context.Context, actor entities.Account, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	// клиент не мутирует заказы вообще, даже пустым набором полей
	if actor.Role == entities.RoleCustomer {
		return nil, ErrInsufficientRole
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order for update: %w", err)
		}

		switch actor.Role {
		case entities.RoleDeliveryAgent:
			updated, err = s.agentUpdate(ctx, actor, current, orderModify)
		case entities.RoleAdmin:
			updated, err = s.adminUpdate(ctx, orderModify)
		case entities.RoleCustomer:
			err = ErrInsufficientRole
		default:
			err = ErrInsufficientRole
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Order) DeleteOrder(ctx context.Context, actor entities.Account, id int64) error {
	if actor.Role != entities.RoleAdmin {
		return ErrInsufficientRole
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	return nil
}

// agentUpdate: агент меняет только статус своего заказа;
// остальные поля из запроса игнорируются, не ошибка и не применение.
func (s *Order) agentUpdate(ctx context.Context, actor entities.Account, current *entities.Order, orderModify entities.OrderModify) (*entities.Order, error) {
	if current.AssignedAgentID == nil || *current.AssignedAgentID != actor.ID {
		return nil, ErrNotAssigned
	}

	if orderModify.Status == nil || !isValidStatus(orderModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	statusOnly := entities.OrderModify{
		ID:     orderModify.ID,
		Status: orderModify.Status,
	}

	updated, err := s.repository.Update(ctx, statusOnly)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return updated, nil
}

func (s *Order) adminUpdate(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Status != nil && !isValidStatus(orderModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if orderModify.TotalAmount != nil && !isValidAmount(*orderModify.TotalAmount) {
		return nil, ErrInvalidAmount
	}
	if orderModify.PickupAddress != nil && !isValidAddress(*orderModify.PickupAddress) {
		return nil, ErrInvalidAddress
	}
	if orderModify.DeliveryAddress != nil && !isValidAddress(*orderModify.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}

	if orderModify.AssignedAgentID != nil {
		if err := s.checkAgentRole(ctx, *orderModify.AssignedAgentID); err != nil {
			return nil, err
		}
	}

	// владелец неизменяем после создания
	orderModify.OwnerID = nil

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return updated, nil
}

func (s *Order) checkAgentRole(ctx context.Context, agentID int64) error {
	agent, err := s.accounts.GetByID(ctx, agentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAgent, err)
	}
	if agent.Role != entities.RoleDeliveryAgent {
		return ErrInvalidAgent
	}
	return nil
}
