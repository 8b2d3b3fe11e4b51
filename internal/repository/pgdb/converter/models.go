package converter

import (
	"time"

	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/usecase"
)

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Phone     string     `db:"phone"`
	Email     string     `db:"email"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID          int64              `db:"id"`
	Reference   string             `db:"reference"`
	CustomerID  int64              `db:"customer_id"`
	Status      domain.OrderStatus `db:"status"`
	QuotedTotal *int64             `db:"quoted_total"`
	Notes       string             `db:"notes"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   *time.Time         `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID          int64                   `db:"id"`
	OrderID     int64                   `db:"order_id"`
	PlayerName  string                  `db:"player_name"`
	ProductType string                  `db:"product_type"`
	Coverage    domain.Coverage         `db:"coverage"`
	Size        string                  `db:"size"`
	Quantity    int32                   `db:"quantity"`
	UnitPrice   *int64                  `db:"unit_price"`
	Category    *string                 `db:"category"`
	Production  domain.ProductionStatus `db:"production_status"`
	CreatedAt   time.Time               `db:"created_at"`
	UpdatedAt   *time.Time              `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
