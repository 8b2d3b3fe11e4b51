package domain

import "time"

// Customer описывает заказчика (капитан команды или реселлер).
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCustomer(name, phone, email string) *Customer {
	return &Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}
}

// Key возвращает составной ключ заказчика.
// Используется для группировки позиций, когда стабильного ID ещё нет.
func (c *Customer) Key() string {
	return c.Name + "|" + c.Phone + "|" + c.Email
}
