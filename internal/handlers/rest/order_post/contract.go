//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderService interface {
	CreateOrder(ctx context.Context, actor entities.Account, orderModify entities.OrderModify) (*entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Account, id int64) (*entities.Order, error)
}

type PaymentService interface {
	EnsureIntent(ctx context.Context, actor entities.Account, orderID int64) (*entities.PaymentIntent, error)
}
