//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"service/internal/entities"
)

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	SetPaymentReference(ctx context.Context, id int64, reference, method string) (*entities.Order, error)
	MarkPaidByReference(ctx context.Context, reference string) (int64, error)
	ListUnconfirmed(ctx context.Context, olderThan time.Time) ([]entities.Order, error)
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*entities.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, reference string) (*entities.PaymentIntent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
