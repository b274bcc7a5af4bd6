package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"waterboys/internal/entities"
	"waterboys/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_id, status, quantity, price,
		client_name, client_address, client_phone_number, client_description,
		user_id, created_at, updated_at`

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

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// GetVisible возвращает коллекцию, видимую агенту: его заказы
// плюс свободные pending. Порядок стабильный - от новых к старым.
func (r *Repository) GetVisible(ctx context.Context, userID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 OR (status = 'pending' AND user_id IS NULL)
		ORDER BY created_at DESC, id`

	return r.queryOrders(ctx, query, userID)
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	return r.queryOrders(ctx, query, userID)
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY created_at DESC, id`

	return r.queryOrders(ctx, query, status.String())
}

// Update записывает переход, повторяя его предусловия в WHERE: строка
// обновляется только если все еще в состоянии, на котором принималось
// решение. Ноль строк или serialization failure значит, что гонку
// выиграла конкурирующая запись - ErrOrderConflict.
func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify, precondition entities.OrderPrecondition) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModify)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.UserID != nil {
		builder = builder.Set("user_id", orderModifyModel.UserID)
	}
	if orderModifyModel.Quantity != nil {
		builder = builder.Set("quantity", orderModifyModel.Quantity)
	}
	if orderModifyModel.Price != nil {
		builder = builder.Set("price", orderModifyModel.Price)
	}
	if orderModifyModel.ClientDescription != nil {
		builder = builder.Set("client_description", orderModifyModel.ClientDescription)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	where := sq.And{
		sq.Eq{"id": orderModifyModel.ID},
		sq.Eq{"status": precondition.Status.String()},
	}
	if precondition.UserID == "" {
		where = append(where, sq.Eq{"user_id": nil})
	} else {
		where = append(where, sq.Eq{"user_id": precondition.UserID})
	}

	builder = builder.
		Where(where).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		// ноль строк: заказа нет или он уже не в прочитанном состоянии;
		// вызывающий перечитывает и решает заново
		if errors.Is(err, pgx.ErrNoRows) || isSerializationFailure(err) {
			return nil, delivery.ErrOrderConflict
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Upsert вставляет заказ из события витрины или перезаписывает его
// целиком по order_id (last-write-wins, слияния полей нет).
func (r *Repository) Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModify)

	id := uuid.NewString()
	if orderModifyModel.ID != nil {
		id = *orderModifyModel.ID
	}

	query := `
		INSERT INTO orders (id, order_id, status, quantity, price,
			client_name, client_address, client_phone_number, client_description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (order_id) DO UPDATE SET
			status = EXCLUDED.status,
			quantity = EXCLUDED.quantity,
			price = EXCLUDED.price,
			client_name = EXCLUDED.client_name,
			client_address = EXCLUDED.client_address,
			client_phone_number = EXCLUDED.client_phone_number,
			client_description = EXCLUDED.client_description,
			user_id = EXCLUDED.user_id,
			updated_at = NOW()
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		id,
		orderModifyModel.OrderID,
		orderModifyModel.Status,
		orderModifyModel.Quantity,
		orderModifyModel.Price,
		orderModifyModel.ClientName,
		orderModifyModel.ClientAddress,
		orderModifyModel.ClientPhoneNumber,
		orderModifyModel.ClientDescription,
		orderModifyModel.UserID,
	), &orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository query error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.OrderID,
			&orderModel.Status,
			&orderModel.Quantity,
			&orderModel.Price,
			&orderModel.ClientName,
			&orderModel.ClientAddress,
			&orderModel.ClientPhoneNumber,
			&orderModel.ClientDescription,
			&orderModel.UserID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgSerializationFailure = "40001"

// isSerializationFailure: конкурирующая serializable-транзакция записала
// ту же строку первой.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.OrderID,
		&orderModel.Status,
		&orderModel.Quantity,
		&orderModel.Price,
		&orderModel.ClientName,
		&orderModel.ClientAddress,
		&orderModel.ClientPhoneNumber,
		&orderModel.ClientDescription,
		&orderModel.UserID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}
