package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"service/internal/entities"
	ordersvc "service/internal/service/order"
)

const intentCurrency = "usd"

type Payment struct {
	orders       OrderRepository
	gateway      Gateway
	txManager    TxManager
	reconcileAge time.Duration
}

func New(orders OrderRepository, gateway Gateway, txManager TxManager, reconcileAge time.Duration) *Payment {
	return &Payment{
		orders:       orders,
		gateway:      gateway,
		txManager:    txManager,
		reconcileAge: reconcileAge,
	}
}

// EnsureIntent возвращает платежный интент для заказа: существующий,
// если заказ уже привязан к интенту, иначе создает новый в шлюзе.
// Вся проверка-и-запись идет под row lock заказа, чтобы два
// конкурентных запроса не создали два интента на один заказ.
func (s *Payment) EnsureIntent(ctx context.Context, actor entities.Account, orderID int64) (*entities.PaymentIntent, error) {
	var intent *entities.PaymentIntent

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, ordersvc.ErrOrderNotFound) {
				return ErrOrderNotFound
			}

			return fmt.Errorf("get order for update: %w", err)
		}

		// чужой заказ для не-админа неотличим от несуществующего
		if actor.Role != entities.RoleAdmin && orderEntity.OwnerID != actor.ID {
			return ErrOrderNotFound
		}

		if orderEntity.IsPaid {
			return ErrAlreadyPaid
		}

		// сумма проверяется до переиспользования интента: заказ с суммой,
		// непредставимой в минорных единицах, не оплачивается ни одной из веток
		amountMinor, err := minorUnits(orderEntity.TotalAmount)
		if err != nil {
			return err
		}

		if orderEntity.PaymentReference != nil {
			intent, err = s.gateway.RetrieveIntent(ctx, *orderEntity.PaymentReference)
			if err != nil {
				return fmt.Errorf("%w: retrieve intent: %w", ErrGateway, err)
			}

			return nil
		}

		intent, err = s.gateway.CreateIntent(ctx, amountMinor, intentCurrency, map[string]string{
			"order_id": strconv.FormatInt(orderEntity.ID, 10),
		})
		if err != nil {
			return fmt.Errorf("%w: create intent: %w", ErrGateway, err)
		}

		// привязку интента фиксируем до того, как секрет уйдет клиенту
		if _, err = s.orders.SetPaymentReference(ctx, orderEntity.ID, intent.Reference, entities.PaymentMethodGateway); err != nil {
			return fmt.Errorf("set payment reference: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return intent, nil
}

// ConfirmPayment помечает заказ оплаченным по ссылке на интент.
// Вызывается из консьюмера событий шлюза; is_paid выставляется только здесь
// и в фоновой сверке, успех EnsureIntent оплатой не считается.
func (s *Payment) ConfirmPayment(ctx context.Context, reference string) error {
	affected, err := s.orders.MarkPaidByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("mark paid by reference: %w", err)
	}

	if affected == 0 {
		return ErrUnknownReference
	}

	return nil
}

// ReconcileUnconfirmed сверяет со шлюзом заказы, у которых интент висит
// неоплаченным дольше порога: событие подтверждения могло потеряться.
// Возвращает число заказов, помеченных оплаченными.
func (s *Payment) ReconcileUnconfirmed(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.reconcileAge)

	orders, err := s.orders.ListUnconfirmed(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list unconfirmed: %w", err)
	}

	var confirmed int64

	for _, orderEntity := range orders {
		if orderEntity.PaymentReference == nil {
			continue
		}

		intent, err := s.gateway.RetrieveIntent(ctx, *orderEntity.PaymentReference)
		if err != nil {
			return confirmed, fmt.Errorf("%w: retrieve intent: %w", ErrGateway, err)
		}

		if intent.Status != entities.IntentSucceeded {
			continue
		}

		affected, err := s.orders.MarkPaidByReference(ctx, intent.Reference)
		if err != nil {
			return confirmed, fmt.Errorf("mark paid by reference: %w", err)
		}

		confirmed += affected
	}

	return confirmed, nil
}

// minorUnits переводит сумму в минорные единицы валюты.
// Суммы с дробной частью мельче цента не принимаем.
func minorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(2)
	if !shifted.IsInteger() || shifted.IntPart() <= 0 {
		return 0, ErrInvalidAmount
	}

	return shifted.IntPart(), nil
}
