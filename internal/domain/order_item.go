package domain

import "time"

// OrderItem описывает одну позицию батч-заказа (один игрок, одно изделие).
type OrderItem struct {
	ID          int64
	OrderID     int64
	PlayerName  string
	ProductType string
	Coverage    Coverage
	Size        string // нормализованный токен размера
	Quantity    int32
	// UnitPrice и Category — снимок результата прайсинга на момент приёма.
	// nil у legacy-строк, принятых до внедрения снимков: такие позиции
	// переоцениваются движком при чтении.
	UnitPrice  *int64
	Category   *string
	Production ProductionStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewOrderItem(playerName, productType string, coverage Coverage, size string, quantity int32) *OrderItem {
	return &OrderItem{
		PlayerName:  playerName,
		ProductType: productType,
		Coverage:    coverage,
		Size:        size,
		Quantity:    quantity,
		Production:  ProductionQueued,
	}
}

// SnapshotPrice фиксирует цену и категорию позиции на момент приёма заказа.
func (i *OrderItem) SnapshotPrice(price int64, category string) {
	i.UnitPrice = &price
	i.Category = &category
}
