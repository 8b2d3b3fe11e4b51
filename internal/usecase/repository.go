package usecase

import (
	"context"
	"time"

	"github.com/teamkits/go-backend/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error)
	GetItem(ctx context.Context, itemID int64) (*domain.OrderItem, error)
	GetOrdersInfo(ctx context.Context, ids []int64) ([]OrderInfo, error)
	AddDesignFiles(ctx context.Context, orderID int64, keys []string) error
	UpdateItemStatus(ctx context.Context, itemID int64, status domain.ProductionStatus) (*domain.OrderItem, error)
	UpdateReview(ctx context.Context, orderID int64, status domain.OrderStatus, quotedTotal *int64) (*domain.Order, error)
}

type CustomerRepository interface {
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type DesignFileRepository interface {
	Upload(ctx context.Context, file *domain.DesignFile) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type CacheRepository interface {
	GetOrders(ctx context.Context, ids []int64) (map[int64]OrderInfo, error)
	SetOrders(ctx context.Context, orders []OrderInfo) error
	DeleteOrders(ctx context.Context, ids []int64) error
}
