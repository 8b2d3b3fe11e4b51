package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/repository/pgdb/converter"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool     *pgxpool.Pool
	conv     converter.OrderConverter
	itemConv converter.OrderItemConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, itemConv converter.OrderItemConverter) *OrderRepo {
	return &OrderRepo{
		pool:     pool,
		conv:     conv,
		itemConv: itemConv,
	}
}

// Create сохраняет заказ вместе с позициями в текущей транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (reference, customer_id, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, reference, customer_id, status, quoted_total, notes, created_at, updated_at;
	`

	var model converter.OrderModel
	if err := tx.QueryRow(ctx, orderQuery, order.Reference, order.CustomerID, order.Status, order.Notes).
		Scan(
			&model.ID, &model.Reference, &model.CustomerID, &model.Status,
			&model.QuotedTotal, &model.Notes, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (
			order_id, player_name, product_type, coverage, size,
			quantity, unit_price, category, production_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(itemQuery,
			model.ID, item.PlayerName, item.ProductType, item.Coverage, item.Size,
			item.Quantity, item.UnitPrice, item.Category, item.Production,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, item := range items {
		item.OrderID = model.ID
		if err := results.QueryRow().Scan(&item.ID, &item.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return o.conv.ToEntity(&model), nil
}

// GetByReference возвращает заказ по внешнему идентификатору.
func (o *OrderRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `
		SELECT id, reference, customer_id, status, quoted_total, notes, created_at, updated_at
		FROM orders
		WHERE reference = $1
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, reference).
		Scan(
			&model.ID, &model.Reference, &model.CustomerID, &model.Status,
			&model.QuotedTotal, &model.Notes, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// GetItems возвращает позиции заказа в порядке добавления.
func (o *OrderRepo) GetItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, player_name, product_type, coverage, size,
		       quantity, unit_price, category, production_status, created_at, updated_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OrderItemModel
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.PlayerName, &model.ProductType, &model.Coverage,
			&model.Size, &model.Quantity, &model.UnitPrice, &model.Category, &model.Production,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.itemConv.ToArrEntity(models), nil
}

// GetItem возвращает позицию заказа по идентификатору.
func (o *OrderRepo) GetItem(ctx context.Context, itemID int64) (*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, player_name, product_type, coverage, size,
		       quantity, unit_price, category, production_status, created_at, updated_at
		FROM order_items
		WHERE id = $1
	`

	var model converter.OrderItemModel
	err := o.pool.QueryRow(ctx, query, itemID).
		Scan(
			&model.ID, &model.OrderID, &model.PlayerName, &model.ProductType, &model.Coverage,
			&model.Size, &model.Quantity, &model.UnitPrice, &model.Category, &model.Production,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.itemConv.ToEntity(&model), nil
}

// GetOrdersInfo возвращает сводку по заказам, включая имя заказчика,
// количество позиций и сумму (цена администратора приоритетнее суммы снимков).
func (o *OrderRepo) GetOrdersInfo(ctx context.Context, ids []int64) ([]usecase.OrderInfo, error) {
	query := `
		SELECT o.id, o.reference, c.name, o.status,
		       COALESCE(o.quoted_total, COALESCE(SUM(COALESCE(i.unit_price, 0) * i.quantity), 0)) AS total,
		       COUNT(i.id) AS items_count
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ANY($1)
		GROUP BY o.id, c.name
	`

	rows, err := o.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.OrderInfo, 0)
	for rows.Next() {
		var info usecase.OrderInfo
		if err := rows.Scan(&info.ID, &info.Reference, &info.CustomerName, &info.Status, &info.Total, &info.ItemsCount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}

	return result, nil
}

// AddDesignFiles привязывает загруженные файлы дизайна к заказу в текущей транзакции.
func (o *OrderRepo) AddDesignFiles(ctx context.Context, orderID int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO design_files (order_id, object_key)
		VALUES ($1, $2);
	`

	batch := &pgx.Batch{}
	for _, key := range keys {
		batch.Queue(query, orderID, key)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range keys {
		if _, err := results.Exec(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// UpdateItemStatus переводит позицию в новый производственный статус в текущей транзакции.
func (o *OrderRepo) UpdateItemStatus(ctx context.Context, itemID int64, status domain.ProductionStatus) (*domain.OrderItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE order_items
		SET production_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, order_id, player_name, product_type, coverage, size,
		          quantity, unit_price, category, production_status, created_at, updated_at;
	`

	var model converter.OrderItemModel
	err = tx.QueryRow(ctx, query, status, itemID).
		Scan(
			&model.ID, &model.OrderID, &model.PlayerName, &model.ProductType, &model.Coverage,
			&model.Size, &model.Quantity, &model.UnitPrice, &model.Category, &model.Production,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.itemConv.ToEntity(&model), nil
}

// UpdateReview сохраняет результат триажа заказа в текущей транзакции.
// Передача nil в quotedTotal оставляет прежнюю цену администратора.
func (o *OrderRepo) UpdateReview(ctx context.Context, orderID int64, status domain.OrderStatus, quotedTotal *int64) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $1,
		    quoted_total = COALESCE($2, quoted_total),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING id, reference, customer_id, status, quoted_total, notes, created_at, updated_at;
	`

	var model converter.OrderModel
	err = tx.QueryRow(ctx, query, status, quotedTotal, orderID).
		Scan(
			&model.ID, &model.Reference, &model.CustomerID, &model.Status,
			&model.QuotedTotal, &model.Notes, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}
