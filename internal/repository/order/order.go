package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, owner_id, assigned_agent_id, pickup_address, delivery_address,
		package_details, status, total_amount::text, is_paid, payment_method,
		payment_reference, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (owner_id, assigned_agent_id, pickup_address, delivery_address,
			package_details, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.OwnerID,
		orderModifyModel.AssignedAgentID,
		orderModifyModel.PickupAddress,
		orderModifyModel.DeliveryAddress,
		orderModifyModel.PackageDetails,
		orderModifyModel.Status,
		orderModifyModel.TotalAmount,
	), &orderModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrInvalidAgent
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate читает заказ под row lock. Вызывается только внутри
// транзакции txManager.Do — это критическая секция check-then-act для оплаты.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, id)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля; owner_id не обновляется никогда
	if orderModifyModel.AssignedAgentID != nil {
		builder = builder.Set("assigned_agent_id", orderModifyModel.AssignedAgentID)
	}
	if orderModifyModel.PickupAddress != nil {
		builder = builder.Set("pickup_address", orderModifyModel.PickupAddress)
	}
	if orderModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", orderModifyModel.DeliveryAddress)
	}
	if orderModifyModel.PackageDetails != nil {
		builder = builder.Set("package_details", orderModifyModel.PackageDetails)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.TotalAmount != nil {
		builder = builder.Set("total_amount", orderModifyModel.TotalAmount)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrInvalidAgent
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// List возвращает заказы под фильтром. Предикат владельца/агента уходит
// в WHERE до сортировки, полная таблица никогда не вычитывается.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders")

	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.AssignedAgentID != nil {
		builder = builder.Where(sq.Eq{"assigned_agent_id": *filter.AssignedAgentID})
	}

	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := scanOrder(rows, &orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels)
}

// SetPaymentReference сохраняет ссылку на intent шлюза вместе с тегом метода
// оплаты. Вызывается до возврата client_secret наружу.
func (r *Repository) SetPaymentReference(ctx context.Context, id int64, reference, method string) (*entities.Order, error) {
	query := `UPDATE orders
		SET payment_reference = $2, payment_method = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id, reference, method), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository set payment reference error: %w", err)
	}

	return ToDomain(&orderModel)
}

// MarkPaidByReference помечает заказ оплаченным по ссылке intent.
// Единственный путь выставления is_paid = true.
func (r *Repository) MarkPaidByReference(ctx context.Context, reference string) (int64, error) {
	query := `UPDATE orders
		SET is_paid = TRUE, updated_at = NOW()
		WHERE payment_reference = $1 AND is_paid = FALSE`

	result, err := r.querier.Exec(ctx, query, reference)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository mark paid error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ListUnconfirmed возвращает заказы с intent, но без подтверждения оплаты,
// не трогавшиеся дольше olderThan. Кандидаты для фоновой сверки со шлюзом.
func (r *Repository) ListUnconfirmed(ctx context.Context, olderThan time.Time) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE payment_reference IS NOT NULL
			AND is_paid = FALSE
			AND updated_at < $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, olderThan)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list unconfirmed error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := scanOrder(rows, &orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list unconfirmed error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list unconfirmed error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*entities.Order, error) {
	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel)
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.OwnerID,
		&orderModel.AssignedAgentID,
		&orderModel.PickupAddress,
		&orderModel.DeliveryAddress,
		&orderModel.PackageDetails,
		&orderModel.Status,
		&orderModel.TotalAmount,
		&orderModel.IsPaid,
		&orderModel.PaymentMethod,
		&orderModel.PaymentReference,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}
