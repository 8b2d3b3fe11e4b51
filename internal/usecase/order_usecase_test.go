package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/pkg/e"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx через встраивание интерфейса,
// переопределяя только то, что трогает usecase.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakePool struct{}

func (fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return fakeTx{}, nil
}

type fakeOrderRepo struct {
	createFn           func(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error)
	getByReferenceFn   func(ctx context.Context, reference string) (*domain.Order, error)
	getItemsFn         func(ctx context.Context, orderID int64) ([]*domain.OrderItem, error)
	getItemFn          func(ctx context.Context, itemID int64) (*domain.OrderItem, error)
	getOrdersInfoFn    func(ctx context.Context, ids []int64) ([]OrderInfo, error)
	addDesignFilesFn   func(ctx context.Context, orderID int64, keys []string) error
	updateItemStatusFn func(ctx context.Context, itemID int64, status domain.ProductionStatus) (*domain.OrderItem, error)
	updateReviewFn     func(ctx context.Context, orderID int64, status domain.OrderStatus, quotedTotal *int64) (*domain.Order, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
	return f.createFn(ctx, order, items)
}

func (f *fakeOrderRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	return f.getByReferenceFn(ctx, reference)
}

func (f *fakeOrderRepo) GetItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	return f.getItemsFn(ctx, orderID)
}

func (f *fakeOrderRepo) GetItem(ctx context.Context, itemID int64) (*domain.OrderItem, error) {
	return f.getItemFn(ctx, itemID)
}

func (f *fakeOrderRepo) GetOrdersInfo(ctx context.Context, ids []int64) ([]OrderInfo, error) {
	return f.getOrdersInfoFn(ctx, ids)
}

func (f *fakeOrderRepo) AddDesignFiles(ctx context.Context, orderID int64, keys []string) error {
	return f.addDesignFilesFn(ctx, orderID, keys)
}

func (f *fakeOrderRepo) UpdateItemStatus(ctx context.Context, itemID int64, status domain.ProductionStatus) (*domain.OrderItem, error) {
	return f.updateItemStatusFn(ctx, itemID, status)
}

func (f *fakeOrderRepo) UpdateReview(ctx context.Context, orderID int64, status domain.OrderStatus, quotedTotal *int64) (*domain.Order, error) {
	return f.updateReviewFn(ctx, orderID, status, quotedTotal)
}

type fakeCustomerRepo struct {
	upsertFn  func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Customer, error)
}

func (f *fakeCustomerRepo) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return f.upsertFn(ctx, customer)
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return f.getByIDFn(ctx, id)
}

type fakeOutboxRepo struct {
	mu      sync.Mutex
	created []*OutboxEvent
	err     error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

func (f *fakeOutboxRepo) RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

type fakeCacheRepo struct {
	mu      sync.Mutex
	cached  map[int64]OrderInfo
	deleted []int64
	getErr  error
}

func (f *fakeCacheRepo) GetOrders(ctx context.Context, ids []int64) (map[int64]OrderInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	result := make(map[int64]OrderInfo)
	for _, id := range ids {
		if info, ok := f.cached[id]; ok {
			result[id] = info
		}
	}
	return result, nil
}

func (f *fakeCacheRepo) SetOrders(ctx context.Context, orders []OrderInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached == nil {
		f.cached = make(map[int64]OrderInfo)
	}
	for _, info := range orders {
		f.cached[info.ID] = info
	}
	return nil
}

func (f *fakeCacheRepo) DeleteOrders(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeFilesInfra struct {
	mu       sync.Mutex
	uploaded [][]DesignUpload
	cleaned  [][]string
	keys     []string
	err      error
}

func (f *fakeFilesInfra) UploadFiles(ctx context.Context, req *UploadFilesReq) (*UploadFilesRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.uploaded = append(f.uploaded, req.Files)
	return NewUploadFilesRes(f.keys), nil
}

func (f *fakeFilesInfra) CleanupFiles(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys)
}

func newTestUC(orderRepo *fakeOrderRepo, customerRepo *fakeCustomerRepo, files *fakeFilesInfra,
	outbox *fakeOutboxRepo, cache *fakeCacheRepo) *OrderUseCase {
	return NewOrderUC(orderRepo, customerRepo, fakePool{}, files, outbox, cache, noopLogger{})
}

func TestSubmitBatch_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     *SubmitBatchReq
		wantErr error
	}{
		{
			name: "missing customer name",
			req: &SubmitBatchReq{
				Customer: CustomerInput{Name: "   "},
				Items:    []ItemInput{{ProductType: "Basketball Jersey", Size: "M", Quantity: 1}},
			},
			wantErr: e.ErrCustomerNameRequired,
		},
		{
			name: "no items",
			req: &SubmitBatchReq{
				Customer: CustomerInput{Name: "Coach Reyes"},
			},
			wantErr: e.ErrNoItems,
		},
		{
			name: "zero quantity",
			req: &SubmitBatchReq{
				Customer: CustomerInput{Name: "Coach Reyes"},
				Items:    []ItemInput{{ProductType: "Basketball Jersey", Size: "M", Quantity: 0}},
			},
			wantErr: e.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := newTestUC(&fakeOrderRepo{}, &fakeCustomerRepo{}, &fakeFilesInfra{}, &fakeOutboxRepo{}, &fakeCacheRepo{})

			_, err := uc.SubmitBatch(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitBatch_SnapshotsPricesAndWritesOutbox(t *testing.T) {
	t.Parallel()

	var createdItems []*domain.OrderItem
	orderRepo := &fakeOrderRepo{
		createFn: func(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
			createdItems = items
			order.ID = 7
			return order, nil
		},
	}
	customerRepo := &fakeCustomerRepo{
		upsertFn: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			customer.ID = 3
			return customer, nil
		},
	}
	outbox := &fakeOutboxRepo{}
	cache := &fakeCacheRepo{}

	uc := newTestUC(orderRepo, customerRepo, &fakeFilesInfra{}, outbox, cache)

	res, err := uc.SubmitBatch(context.Background(), &SubmitBatchReq{
		Customer: CustomerInput{Name: "Coach Reyes", Phone: "0917"},
		Items: []ItemInput{
			{PlayerName: "Dela Cruz", ProductType: "Basketball Jersey", Coverage: "set", Size: "m", Quantity: 2},
			{PlayerName: "Santos", ProductType: "Hoodie", Coverage: "set", Size: "3XL", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Reference)

	// 280*2 за джерси взрослого размера и 350 за плюсовый худи
	assert.Equal(t, int64(280*2+350), res.Total)

	require.Len(t, createdItems, 2)
	require.NotNil(t, createdItems[0].UnitPrice)
	assert.Equal(t, int64(280), *createdItems[0].UnitPrice)
	assert.Equal(t, "Adult Standard", *createdItems[0].Category)
	assert.Equal(t, domain.ProductionQueued, createdItems[0].Production)
	require.NotNil(t, createdItems[1].UnitPrice)
	assert.Equal(t, int64(350), *createdItems[1].UnitPrice)

	require.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, EventOrderSubmitted, event.EventType)
	assert.Equal(t, int64(7), event.OrderID)
	assert.Equal(t, Pending, event.Status)

	var payload struct {
		Reference  string `json:"reference"`
		ItemsCount int    `json:"items_count"`
		Total      int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, res.Reference, payload.Reference)
	assert.Equal(t, 2, payload.ItemsCount)
	assert.Equal(t, res.Total, payload.Total)

	assert.Equal(t, []int64{7}, cache.deleted)
}

func TestSubmitBatch_CleansUpFilesOnFailure(t *testing.T) {
	t.Parallel()

	orderRepo := &fakeOrderRepo{
		createFn: func(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
			order.ID = 1
			return order, nil
		},
		addDesignFilesFn: func(ctx context.Context, orderID int64, keys []string) error {
			return errors.New("insert failed")
		},
	}
	customerRepo := &fakeCustomerRepo{
		upsertFn: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			customer.ID = 1
			return customer, nil
		},
	}
	files := &fakeFilesInfra{keys: []string{"ref/front.png", "ref/back.png"}}

	uc := newTestUC(orderRepo, customerRepo, files, &fakeOutboxRepo{}, &fakeCacheRepo{})

	_, err := uc.SubmitBatch(context.Background(), &SubmitBatchReq{
		Customer: CustomerInput{Name: "Coach Reyes"},
		Items:    []ItemInput{{ProductType: "Tshirt", Size: "L", Quantity: 1}},
		Files:    []DesignUpload{{Data: []byte{1}, MimeType: "image/png", Size: 1, Name: "front.png"}},
	})
	require.Error(t, err)

	files.mu.Lock()
	defer files.mu.Unlock()
	require.Len(t, files.cleaned, 1)
	assert.Equal(t, []string{"ref/front.png", "ref/back.png"}, files.cleaned[0])
}

func TestGetOrdersInfo_MergesCacheAndDB(t *testing.T) {
	t.Parallel()

	cache := &fakeCacheRepo{
		cached: map[int64]OrderInfo{
			1: {ID: 1, CustomerName: "Cached", Status: "pending", Total: 100},
		},
	}
	orderRepo := &fakeOrderRepo{
		getOrdersInfoFn: func(ctx context.Context, ids []int64) ([]OrderInfo, error) {
			assert.Equal(t, []int64{2, 3}, ids)
			return []OrderInfo{{ID: 2, CustomerName: "FromDB", Status: "reviewed", Total: 200}}, nil
		},
	}

	uc := newTestUC(orderRepo, &fakeCustomerRepo{}, &fakeFilesInfra{}, &fakeOutboxRepo{}, cache)

	res, err := uc.GetOrdersInfo(context.Background(), &GetOrdersReq{IDs: []int64{1, 2, 3}})
	require.NoError(t, err)

	require.Len(t, res.Orders, 2)
	assert.Equal(t, "Cached", res.Orders[0].CustomerName)
	assert.Equal(t, "FromDB", res.Orders[1].CustomerName)
	assert.Equal(t, []int64{3}, res.NotFoundOrders)
}

func TestGetOrdersInfo_EmptyIDs(t *testing.T) {
	t.Parallel()

	uc := newTestUC(&fakeOrderRepo{}, &fakeCustomerRepo{}, &fakeFilesInfra{}, &fakeOutboxRepo{}, &fakeCacheRepo{})

	_, err := uc.GetOrdersInfo(context.Background(), &GetOrdersReq{})
	require.ErrorIs(t, err, e.ErrNoOrders)
}

func TestGetOrderSummary_RepricesLegacyItems(t *testing.T) {
	t.Parallel()

	snapshot := int64(380)
	orderRepo := &fakeOrderRepo{
		getByReferenceFn: func(ctx context.Context, reference string) (*domain.Order, error) {
			return &domain.Order{ID: 5, Reference: reference, CustomerID: 2, Status: domain.OrderPending}, nil
		},
		getItemsFn: func(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
			return []*domain.OrderItem{
				{ID: 1, PlayerName: "Dela Cruz", ProductType: "Basketball Jersey", Coverage: domain.CoverageSet, Size: "M", Quantity: 1, UnitPrice: &snapshot},
				// legacy-строка без снимка: Hoodie/3XL должен переоцениться в 350
				{ID: 2, PlayerName: "Santos", ProductType: "Hoodie", Coverage: domain.CoverageSet, Size: "3XL", Quantity: 2},
			}, nil
		},
	}
	customerRepo := &fakeCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Coach Reyes"}, nil
		},
	}

	uc := newTestUC(orderRepo, customerRepo, &fakeFilesInfra{}, &fakeOutboxRepo{}, &fakeCacheRepo{})

	res, err := uc.GetOrderSummary(context.Background(), "ref-1")
	require.NoError(t, err)

	assert.Equal(t, int64(380+350*2), res.Summary.Total)
	require.Len(t, res.Summary.Groups, 2)
	assert.Equal(t, "Dela Cruz", res.Summary.Groups[0].CustomerName)
	assert.Equal(t, int64(380), res.Summary.Groups[0].Subtotal)
	assert.Equal(t, "Santos", res.Summary.Groups[1].CustomerName)
	assert.Equal(t, int64(700), res.Summary.Groups[1].Subtotal)

	// Снимок legacy-строки при чтении не перезаписывается
	assert.Nil(t, res.Items[1].UnitPrice)
}

func TestUpdateItemStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current domain.ProductionStatus
		target  string
		wantErr error
	}{
		{name: "unknown status", current: domain.ProductionQueued, target: "folding", wantErr: e.ErrInvalidStatus},
		{name: "skipping stages", current: domain.ProductionQueued, target: "sewing", wantErr: e.ErrStatusTransition},
		{name: "released is terminal", current: domain.ProductionReleased, target: "quality_check", wantErr: e.ErrStatusTransition},
		{name: "step forward", current: domain.ProductionQueued, target: "printing"},
		{name: "step back", current: domain.ProductionPressing, target: "printing"},
		{name: "cancel mid-pipeline", current: domain.ProductionSewing, target: "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outbox := &fakeOutboxRepo{}
			orderRepo := &fakeOrderRepo{
				getItemFn: func(ctx context.Context, itemID int64) (*domain.OrderItem, error) {
					return &domain.OrderItem{ID: itemID, OrderID: 9, Production: tt.current}, nil
				},
				updateItemStatusFn: func(ctx context.Context, itemID int64, status domain.ProductionStatus) (*domain.OrderItem, error) {
					return &domain.OrderItem{ID: itemID, OrderID: 9, Production: status}, nil
				},
			}

			uc := newTestUC(orderRepo, &fakeCustomerRepo{}, &fakeFilesInfra{}, outbox, &fakeCacheRepo{})

			res, err := uc.UpdateItemStatus(context.Background(), &UpdateItemStatusReq{ItemID: 4, Status: tt.target})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, outbox.created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.ProductionStatus(tt.target), res.Item.Production)
			require.Len(t, outbox.created, 1)
			assert.Equal(t, EventItemStatusChanged, outbox.created[0].EventType)
		})
	}
}

func TestReviewOrder(t *testing.T) {
	t.Parallel()

	t.Run("unknown order status", func(t *testing.T) {
		t.Parallel()

		uc := newTestUC(&fakeOrderRepo{}, &fakeCustomerRepo{}, &fakeFilesInfra{}, &fakeOutboxRepo{}, &fakeCacheRepo{})

		_, err := uc.ReviewOrder(context.Background(), &ReviewOrderReq{Reference: "ref", Status: "archived"})
		require.ErrorIs(t, err, e.ErrInvalidOrderStatus)
	})

	t.Run("sets quoted total and emits event", func(t *testing.T) {
		t.Parallel()

		quoted := int64(5000)
		outbox := &fakeOutboxRepo{}
		cache := &fakeCacheRepo{}
		orderRepo := &fakeOrderRepo{
			getByReferenceFn: func(ctx context.Context, reference string) (*domain.Order, error) {
				return &domain.Order{ID: 11, Reference: reference, Status: domain.OrderPending}, nil
			},
			updateReviewFn: func(ctx context.Context, orderID int64, status domain.OrderStatus, quotedTotal *int64) (*domain.Order, error) {
				return &domain.Order{ID: orderID, Status: status, QuotedTotal: quotedTotal}, nil
			},
		}

		uc := newTestUC(orderRepo, &fakeCustomerRepo{}, &fakeFilesInfra{}, outbox, cache)

		res, err := uc.ReviewOrder(context.Background(), &ReviewOrderReq{
			Reference:   "ref-11",
			Status:      "reviewed",
			QuotedTotal: &quoted,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderReviewed, res.Order.Status)
		require.NotNil(t, res.Order.QuotedTotal)
		assert.Equal(t, quoted, *res.Order.QuotedTotal)

		require.Len(t, outbox.created, 1)
		assert.Equal(t, EventOrderReviewed, outbox.created[0].EventType)
		assert.Equal(t, []int64{11}, cache.deleted)
	})
}
