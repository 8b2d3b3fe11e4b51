package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/repository/pgdb/converter"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/tr"
)

// CustomerRepo реализует репозиторий заказчиков поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

// Upsert идемпотентно создаёт заказчика по составному ключу (имя, телефон, email).
// Для существующего ключа возвращается уже сохранённая запись.
func (c *CustomerRepo) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
		INSERT INTO customers (name, phone, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, phone, email) DO NOTHING
		RETURNING id, name, phone, email, created_at, updated_at
		)
		SELECT id, name, phone, email, created_at, updated_at
		FROM upsert

		UNION ALL

		SELECT id, name, phone, email, created_at, updated_at
		FROM customers
		WHERE name = $1 AND phone = $2 AND email = $3
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.CustomerModel
	if err := tx.QueryRow(ctx, query, customer.Name, customer.Phone, customer.Email).
		Scan(
			&model.ID, &model.Name, &model.Phone, &model.Email, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// GetByID возвращает заказчика по идентификатору.
func (c *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Phone, &model.Email, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
