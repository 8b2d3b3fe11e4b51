package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrCustomerNameRequired = fmt.Errorf("customer name is required")
	ErrNoItems              = fmt.Errorf("no order items provided")
	ErrInvalidQuantity      = fmt.Errorf("item quantity must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must be a whole amount in pesos")
	ErrTooManyFiles         = fmt.Errorf("too many design files")
	ErrFileTooLarge         = fmt.Errorf("design file is too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrNoOrders             = fmt.Errorf("no order ids provided")
	ErrInvalidStatus        = fmt.Errorf("unknown production status")
	ErrStatusTransition     = fmt.Errorf("production status transition is not allowed")
	ErrInvalidOrderStatus   = fmt.Errorf("unknown order status")

	// 404 Not Found
	ErrOrderNotFound = fmt.Errorf("order not found")
	ErrItemNotFound  = fmt.Errorf("order item not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
