//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"service/internal/entities"
	"service/pkg/authtoken"
)

type Repository interface {
	Create(ctx context.Context, accountModify entities.AccountModify) (int64, error)
	Update(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	GetByHandle(ctx context.Context, handle string) (*entities.Account, error)
	GetAll(ctx context.Context) ([]entities.Account, error)
	Delete(ctx context.Context, id int64) error
}

type Tokens interface {
	IssuePair(accountID int64, role string) (*authtoken.Pair, error)
	ParseRefresh(token string) (*authtoken.Claims, error)
}
