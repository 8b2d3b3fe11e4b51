package usecase

import (
	"time"

	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/pricing"
)

// ORDER USECASE

// CustomerInput — данные заказчика из формы приёма.
type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

// ItemInput — одна позиция батча из формы приёма.
type ItemInput struct {
	PlayerName  string
	ProductType string
	Coverage    string
	Size        string
	Quantity    int32
}

// DesignUpload представляет файл дизайна, загруженный через multipart/form-data.
type DesignUpload struct {
	Data     []byte // байты файла
	MimeType string // Content-Type из multipart (image/png)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// SubmitBatchReq — запрос на приём батч-заказа.
type SubmitBatchReq struct {
	Customer CustomerInput
	Notes    string
	Items    []ItemInput
	Files    []DesignUpload
}

// SubmitBatchRes — результат приёма заказа.
type SubmitBatchRes struct {
	Reference string
	EventID   string
	Total     int64 // сумма снимков цен по позициям (целые песо)
}

// GetOrdersReq — запрос информации о заказах по их идентификаторам.
type GetOrdersReq struct {
	IDs []int64
}

// GetOrdersRes — ответ с данными запрошенных заказов.
type GetOrdersRes struct {
	Orders         []OrderInfo
	NotFoundOrders []int64
}

// OrderInfo — DTO с информацией о заказе для внешнего использования.
type OrderInfo struct {
	ID           int64
	Reference    string
	CustomerName string
	Status       string
	Total        int64
	ItemsCount   int32
}

// OrderSummaryRes — заказ с позициями и агрегацией по игрокам.
type OrderSummaryRes struct {
	Order    *domain.Order
	Customer *domain.Customer
	Items    []*domain.OrderItem
	Summary  pricing.Summary
}

// UpdateItemStatusReq — запрос на перевод позиции по производственному конвейеру.
type UpdateItemStatusReq struct {
	ItemID int64
	Status string
}

// ItemStatusRes — результат перевода позиции.
type ItemStatusRes struct {
	Item    *domain.OrderItem
	EventID string
}

// ReviewOrderReq — запрос администратора на триаж заказа.
type ReviewOrderReq struct {
	Reference   string
	Status      string
	QuotedTotal *int64 // целые песо; nil — оставить без изменений
}

// ReviewOrderRes — результат триажа.
type ReviewOrderRes struct {
	Order   *domain.Order
	EventID string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventOrderSubmitted    OutboxEventType = "order.submitted"
	EventOrderReviewed     OutboxEventType = "order.reviewed"
	EventItemStatusChanged OutboxEventType = "item.status_changed"
)

// OutboxEvent — запись transactional outbox, публикуемая в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// UploadFilesReq — запрос на загрузку файлов дизайна заказа.
type UploadFilesReq struct {
	Reference string
	Files     []DesignUpload
}

// UploadFilesRes — результат загрузки файлов (ключи в MinIO).
type UploadFilesRes struct {
	FileKeys []string
}

// MAPPERS

func NewSubmitBatchReq(customer CustomerInput, notes string, items []ItemInput, files []DesignUpload) *SubmitBatchReq {
	return &SubmitBatchReq{
		Customer: customer,
		Notes:    notes,
		Items:    items,
		Files:    files,
	}
}

func NewDesignUpload(data []byte, mimeType string, size int64, name string) *DesignUpload {
	return &DesignUpload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetOrdersReq(ids []int64) *GetOrdersReq {
	return &GetOrdersReq{ids}
}

func NewGetOrdersRes(orders []OrderInfo, notFoundOrders []int64) *GetOrdersRes {
	return &GetOrdersRes{
		Orders:         orders,
		NotFoundOrders: notFoundOrders,
	}
}

func NewOrderInfo(id int64, reference, customerName, status string, total int64, itemsCount int32) OrderInfo {
	return OrderInfo{
		ID:           id,
		Reference:    reference,
		CustomerName: customerName,
		Status:       status,
		Total:        total,
		ItemsCount:   itemsCount,
	}
}

func NewUploadFilesReq(reference string, files []DesignUpload) *UploadFilesReq {
	return &UploadFilesReq{
		Reference: reference,
		Files:     files,
	}
}

func NewUploadFilesRes(fileKeys []string) *UploadFilesRes {
	return &UploadFilesRes{
		FileKeys: fileKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
