package domain

import "time"

// OrderStatus описывает стадию обработки заказа администратором.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderReviewed  OrderStatus = "reviewed"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus разбирает статус заказа, возвращая false для неизвестных значений.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderPending, OrderReviewed, OrderConfirmed, OrderCompleted, OrderCancelled:
		return OrderStatus(raw), true
	default:
		return "", false
	}
}

// Order описывает батч-заказ на печать формы.
type Order struct {
	ID          int64
	Reference   string // uuid, внешний идентификатор заказа
	CustomerID  int64
	Status      OrderStatus
	QuotedTotal *int64 // Итоговая цена, выставленная администратором (целые песо)
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewOrder(reference string, customerID int64, notes string) *Order {
	return &Order{
		Reference:  reference,
		CustomerID: customerID,
		Status:     OrderPending,
		Notes:      notes,
	}
}
