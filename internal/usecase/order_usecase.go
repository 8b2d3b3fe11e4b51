package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/pricing"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/logger"
)

// OrderUseCase реализует бизнес-логику приёма и сопровождения батч-заказов.
type OrderUseCase struct {
	orderRepo    OrderRepository
	customerRepo CustomerRepository
	dbPool       transaction.Transactional
	filesInfra   FilesInfra
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	customerRepo CustomerRepository,
	dbPool transaction.Transactional,
	filesInfra FilesInfra,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		dbPool:       dbPool,
		filesInfra:   filesInfra,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// submittedPayload — тело события order.submitted.
type submittedPayload struct {
	EventID    string   `json:"event_id"`
	Reference  string   `json:"reference"`
	Customer   string   `json:"customer"`
	ItemsCount int      `json:"items_count"`
	Total      int64    `json:"total"`
	FileKeys   []string `json:"file_keys,omitempty"`
}

// statusPayload — тело события item.status_changed.
type statusPayload struct {
	EventID string `json:"event_id"`
	OrderID int64  `json:"order_id"`
	ItemID  int64  `json:"item_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// reviewedPayload — тело события order.reviewed.
type reviewedPayload struct {
	EventID     string `json:"event_id"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	QuotedTotal *int64 `json:"quoted_total,omitempty"`
}

// SubmitBatch принимает батч-заказ: прайсит позиции, загружает файлы дизайна,
// создаёт заказчика и заказ в одной транзакции вместе с outbox-событием.
func (o *OrderUseCase) SubmitBatch(ctx context.Context, req *SubmitBatchReq) (*SubmitBatchRes, error) {
	const op = "OrderUseCase.SubmitBatch"

	var err error
	if err = o.validateBatch(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	reference := uuid.NewString()

	// Снимок прайсинга каждой позиции до открытия транзакции:
	// движок чистый, откатывать нечего.
	items, total := o.priceItems(reference, req.Items)

	var (
		filesRes *UploadFilesRes
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных файлов
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && filesRes != nil {
				o.logger.Warnf(
					"Cleaning up orphaned design files after transaction failure. reference: %s, error: %v",
					reference,
					e.Wrap(op, err),
				)

				o.filesInfra.CleanupFiles(filesRes.FileKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание заказчика по составному ключу
	customer, err := o.customerRepo.Upsert(ctx, domain.NewCustomer(req.Customer.Name, req.Customer.Phone, req.Customer.Email))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.orderRepo.Create(ctx, domain.NewOrder(reference, customer.ID, req.Notes), items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сохранение файлов дизайна в MinIO
	var fileKeys []string
	if len(req.Files) > 0 {
		filesRes, err = o.filesInfra.UploadFiles(ctx, NewUploadFilesReq(reference, req.Files))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
		fileKeys = filesRes.FileKeys

		if err = o.orderRepo.AddDesignFiles(ctx, order.ID, fileKeys); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	event, err := o.createOutboxEvent(ctx, EventOrderSubmitted, order.ID, &submittedPayload{
		Reference:  reference,
		Customer:   customer.Name,
		ItemsCount: len(items),
		Total:      total,
		FileKeys:   fileKeys,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша старых данных заказа
	if err := o.cacheRepo.DeleteOrders(ctx, []int64{order.ID}); err != nil {
		o.logger.Warnf("Failed to delete orders from cache: %v", e.Wrap(op, err))
	}

	return &SubmitBatchRes{
		Reference: reference,
		EventID:   event.EventID,
		Total:     total,
	}, nil
}

// GetOrdersInfo возвращает информацию о заказах по их идентификаторам.
func (o *OrderUseCase) GetOrdersInfo(ctx context.Context, req *GetOrdersReq) (*GetOrdersRes, error) {
	const op = "OrderUseCase.GetOrdersInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoOrders)
	}

	// Поиск заказов в кэше
	cacheOrdersMap, err := o.cacheRepo.GetOrders(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, orderID := range req.IDs {
			if _, ok := cacheOrdersMap[orderID]; !ok {
				nonCacheable = append(nonCacheable, orderID)
			}
		}
	}

	// Получение заказов из БД
	var ordersFromDB []OrderInfo
	if len(nonCacheable) > 0 {
		ordersFromDB, err = o.orderRepo.GetOrdersInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление заказов в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := o.cacheRepo.SetOrders(bgCtx, ordersFromDB); err != nil {
				o.logger.Warnf("Failed to cache orders in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbOrdersMap := make(map[int64]OrderInfo, len(ordersFromDB))
	for _, info := range ordersFromDB {
		dbOrdersMap[info.ID] = info
	}

	// Формирование результата
	result := make([]OrderInfo, 0, len(req.IDs))
	notFoundOrders := make([]int64, 0)
	for _, id := range req.IDs {
		if info, ok := cacheOrdersMap[id]; ok {
			result = append(result, info)
		} else if info, ok := dbOrdersMap[id]; ok {
			result = append(result, info)
		} else {
			notFoundOrders = append(notFoundOrders, id)
		}
	}

	return NewGetOrdersRes(result, notFoundOrders), nil
}

// GetOrderSummary возвращает заказ с позициями и агрегацией по игрокам.
// Позиции без снимка цены (legacy-строки) переоцениваются движком на лету,
// снимок при этом не перезаписывается.
func (o *OrderUseCase) GetOrderSummary(ctx context.Context, reference string) (*OrderSummaryRes, error) {
	const op = "OrderUseCase.GetOrderSummary"

	order, err := o.orderRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	customer, err := o.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := o.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	priced := make([]pricing.Item, 0, len(items))
	for _, item := range items {
		price := item.UnitPrice
		if price == nil {
			recomputed := pricing.Price(item.ProductType, item.Coverage, item.Size)
			price = &recomputed
		}

		priced = append(priced, pricing.Item{
			CustomerKey:  item.PlayerName,
			CustomerName: item.PlayerName,
			Price:        price,
			Quantity:     item.Quantity,
		})
	}

	return &OrderSummaryRes{
		Order:    order,
		Customer: customer,
		Items:    items,
		Summary:  pricing.Aggregate(priced),
	}, nil
}

// UpdateItemStatus переводит позицию по производственному конвейеру.
func (o *OrderUseCase) UpdateItemStatus(ctx context.Context, req *UpdateItemStatusReq) (*ItemStatusRes, error) {
	const op = "OrderUseCase.UpdateItemStatus"

	status, ok := domain.ParseProductionStatus(req.Status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	item, err := o.orderRepo.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !item.Production.CanTransition(status) {
		return nil, e.Wrap(op, e.ErrStatusTransition)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.orderRepo.UpdateItemStatus(ctx, req.ItemID, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := o.createOutboxEvent(ctx, EventItemStatusChanged, item.OrderID, &statusPayload{
		OrderID: item.OrderID,
		ItemID:  item.ID,
		From:    string(item.Production),
		To:      string(status),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cacheRepo.DeleteOrders(ctx, []int64{item.OrderID}); err != nil {
		o.logger.Warnf("Failed to delete orders from cache: %v", e.Wrap(op, err))
	}

	return &ItemStatusRes{Item: updated, EventID: event.EventID}, nil
}

// ReviewOrder выполняет триаж заказа администратором: статус и итоговая цена.
func (o *OrderUseCase) ReviewOrder(ctx context.Context, req *ReviewOrderReq) (*ReviewOrderRes, error) {
	const op = "OrderUseCase.ReviewOrder"

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	order, err := o.orderRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.orderRepo.UpdateReview(ctx, order.ID, status, req.QuotedTotal)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := o.createOutboxEvent(ctx, EventOrderReviewed, order.ID, &reviewedPayload{
		Reference:   order.Reference,
		Status:      string(status),
		QuotedTotal: req.QuotedTotal,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cacheRepo.DeleteOrders(ctx, []int64{order.ID}); err != nil {
		o.logger.Warnf("Failed to delete orders from cache: %v", e.Wrap(op, err))
	}

	return &ReviewOrderRes{Order: updated, EventID: event.EventID}, nil
}

// priceItems строит доменные позиции со снимками цен и считает сумму батча.
func (o *OrderUseCase) priceItems(reference string, inputs []ItemInput) ([]*domain.OrderItem, int64) {
	items := make([]*domain.OrderItem, 0, len(inputs))
	var total int64

	for _, in := range inputs {
		coverage := domain.ParseCoverage(in.Coverage)
		normalized, _ := pricing.ClassifySize(in.Size)

		item := domain.NewOrderItem(in.PlayerName, in.ProductType, coverage, normalized, in.Quantity)

		quote := pricing.QuoteItem(in.ProductType, coverage, in.Size)
		if quote.Category == pricing.CategoryUnknown {
			// Нулевая цена не блокирует приём — заказ уходит на ручной триаж.
			o.logger.Warnf("Unrecognized product type %q in batch %s, priced as 0", in.ProductType, reference)
		}
		item.SnapshotPrice(quote.Price, quote.Category)

		total += quote.Price * int64(in.Quantity)
		items = append(items, item)
	}

	return items, total
}

// createOutboxEvent сериализует payload и кладёт событие в outbox текущей транзакции.
func (o *OrderUseCase) createOutboxEvent(ctx context.Context, eventType OutboxEventType, orderID int64, body any) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	switch p := body.(type) {
	case *submittedPayload:
		p.EventID = eventID
	case *statusPayload:
		p.EventID = eventID
	case *reviewedPayload:
		p.EventID = eventID
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return o.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})
}

// validateBatch проверяет корректность входных данных запроса на приём батча.
func (o *OrderUseCase) validateBatch(req *SubmitBatchReq) error {
	if strings.TrimSpace(req.Customer.Name) == "" {
		return e.ErrCustomerNameRequired
	}

	if len(req.Items) == 0 {
		return e.ErrNoItems
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}
