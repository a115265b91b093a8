//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"service/internal/entities"
	"service/pkg/authtoken"
	"service/pkg/logger"
)

type TokenParser interface {
	ParseAccess(token string) (*authtoken.Claims, error)
}

type AccountReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
