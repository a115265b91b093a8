package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/account"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)
	query := `INSERT INTO accounts (handle, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Handle,
		accountModifyModel.Email,
		accountModifyModel.PasswordHash,
		accountModifyModel.Role,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, account.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	// опциональные поля
	if accountModifyModel.Handle != nil {
		builder = builder.Set("handle", accountModifyModel.Handle)
	}
	if accountModifyModel.Email != nil {
		builder = builder.Set("email", accountModifyModel.Email)
	}
	if accountModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", accountModifyModel.PasswordHash)
	}
	if accountModifyModel.Role != nil {
		builder = builder.Set("role", accountModifyModel.Role)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING id, handle, email, password_hash, role, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	var accountModel AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountModel.ID,
			&accountModel.Handle,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, account.ErrConflict
		}

		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT id, handle, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByHandle(ctx context.Context, handle string) (*entities.Account, error) {
	query := `SELECT id, handle, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE handle = $1`

	return r.getOne(ctx, query, handle)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Account, error) {
	query := `
	SELECT id, handle, email, password_hash, role, created_at, updated_at
	FROM accounts
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
	}
	defer rows.Close()

	accountModels := make([]AccountDB, 0, 8)
	for rows.Next() {
		var accountModel AccountDB
		err := rows.Scan(
			&accountModel.ID,
			&accountModel.Handle,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
		}
		accountModels = append(accountModels, accountModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
	}

	return ToDomainList(accountModels), nil
}

// Delete удаляет аккаунт. Каскады на orders (owner CASCADE, agent SET NULL)
// отрабатывают на уровне схемы.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected account repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Account, error) {
	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&accountModel.ID,
			&accountModel.Handle,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.CreatedAt,
			&accountModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository get error: %w", err)
	}

	return ToDomain(&accountModel), nil
}
