package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/pricing"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderInfoResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	Total        int64  `json:"total"`
	ItemsCount   int32  `json:"items_count"`
}

type orderItemResponse struct {
	ID          int64      `json:"id"`
	PlayerName  string     `json:"player_name"`
	ProductType string     `json:"product_type"`
	Coverage    string     `json:"coverage"`
	Size        string     `json:"size"`
	Quantity    int32      `json:"quantity"`
	UnitPrice   int64      `json:"unit_price"`
	Category    string     `json:"category"`
	Production  string     `json:"production_status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type summaryGroupResponse struct {
	CustomerName string `json:"customer_name"`
	Subtotal     int64  `json:"subtotal"`
	ItemsCount   int    `json:"items_count"`
}

type orderSummaryResponse struct {
	Reference     string                 `json:"reference"`
	Status        string                 `json:"status"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	CustomerEmail string                 `json:"customer_email,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	QuotedTotal   *int64                 `json:"quoted_total,omitempty"`
	Total         int64                  `json:"total"`
	Items         []orderItemResponse    `json:"items"`
	Groups        []summaryGroupResponse `json:"groups"`
	CreatedAt     time.Time              `json:"created_at"`
}

// submitBatch
//
//	@Summary		Приём батч-заказа на печать формы
//	@Description	Принимает заказчика, список позиций (JSON в поле items) и файлы дизайна
//	@Tags			orders
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			customer_name	formData	string	true	"Имя заказчика"
//	@Param			customer_phone	formData	string	false	"Телефон"
//	@Param			customer_email	formData	string	false	"Почта"
//	@Param			notes			formData	string	false	"Примечания к заказу"
//	@Param			items			formData	string	true	"Позиции батча (JSON-массив)"
//	@Param			designs			formData	file	false	"Файлы дизайна"
//	@Success		201				{object}	map[string]interface{}	"Заказ принят"
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [post]
func (h *OrderHandler) submitBatch(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	customer, err := parseCustomerForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	items, err := parseItemsField(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	files, err := parseFiles(r.MultipartForm.File["designs"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.orderUsecase.SubmitBatch(r.Context(), usecase.NewSubmitBatchReq(*customer, r.FormValue("notes"), items, files))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"reference": res.Reference,
		"event_id":  res.EventID,
		"total":     res.Total,
	})
}

// getOrders
//
//	@Summary	Информация о заказах по ID
//	@Tags		orders
//	@Produce	json
//	@Param		ids	query		string	true	"ID заказов через запятую"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) getOrders(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.orderUsecase.GetOrdersInfo(r.Context(), &usecase.GetOrdersReq{IDs: ids})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	orders := make([]orderInfoResponse, 0, len(res.Orders))
	for _, o := range res.Orders {
		orders = append(orders, orderInfoResponse{
			ID:           o.ID,
			Reference:    o.Reference,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			Total:        o.Total,
			ItemsCount:   o.ItemsCount,
		})
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders":    orders,
		"not_found": res.NotFoundOrders,
	})
}

// getOrderSummary
//
//	@Summary	Заказ с позициями и агрегацией по игрокам
//	@Tags		orders
//	@Produce	json
//	@Param		reference	path		string	true	"Внешний идентификатор заказа"
//	@Success	200			{object}	orderSummaryResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/orders/{reference} [get]
func (h *OrderHandler) getOrderSummary(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	res, err := h.orderUsecase.GetOrderSummary(r.Context(), reference)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSummaryResponse(res))
}

// reviewOrder
//
//	@Summary		Триаж заказа администратором
//	@Description	Меняет статус заказа и, опционально, выставляет итоговую цену
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			reference	path		string	true	"Внешний идентификатор заказа"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{reference}/review [patch]
func (h *OrderHandler) reviewOrder(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	var body struct {
		Status      string  `json:"status"`
		QuotedTotal *string `json:"quoted_total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var quotedTotal *int64
	if body.QuotedTotal != nil {
		pesos, err := parsePriceToPesos(*body.QuotedTotal)
		if err != nil {
			h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		quotedTotal = &pesos
	}

	res, err := h.orderUsecase.ReviewOrder(r.Context(), &usecase.ReviewOrderReq{
		Reference:   reference,
		Status:      body.Status,
		QuotedTotal: quotedTotal,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"reference": res.Order.Reference,
		"status":    string(res.Order.Status),
		"event_id":  res.EventID,
	})
}

// updateItemStatus
//
//	@Summary		Перевод позиции по производственному конвейеру
//	@Description	Допускается шаг вперёд, шаг назад или отмена
//	@Tags			order-items
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int	true	"ID позиции"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		409	{object}	ErrorResponse	"Недопустимый переход"
//	@Router			/order-items/{id}/status [patch]
func (h *OrderHandler) updateItemStatus(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.orderUsecase.UpdateItemStatus(r.Context(), &usecase.UpdateItemStatusReq{ItemID: itemID, Status: body.Status})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"item_id":  res.Item.ID,
		"status":   string(res.Item.Production),
		"event_id": res.EventID,
	})
}

func parseIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, e.ErrNoOrders
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, e.Wrap(part, e.ErrStatusBadRequest)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toSummaryResponse(res *usecase.OrderSummaryRes) *orderSummaryResponse {
	items := make([]orderItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, toItemResponse(it))
	}

	groups := make([]summaryGroupResponse, 0, len(res.Summary.Groups))
	for _, g := range res.Summary.Groups {
		groups = append(groups, summaryGroupResponse{
			CustomerName: g.CustomerName,
			Subtotal:     g.Subtotal,
			ItemsCount:   len(g.Items),
		})
	}

	return &orderSummaryResponse{
		Reference:     res.Order.Reference,
		Status:        string(res.Order.Status),
		CustomerName:  res.Customer.Name,
		CustomerPhone: res.Customer.Phone,
		CustomerEmail: res.Customer.Email,
		Notes:         res.Order.Notes,
		QuotedTotal:   res.Order.QuotedTotal,
		Total:         res.Summary.Total,
		Items:         items,
		Groups:        groups,
		CreatedAt:     res.Order.CreatedAt,
	}
}

func toItemResponse(it *domain.OrderItem) orderItemResponse {
	// Legacy-строки без снимка цены переоцениваются на лету
	unitPrice := int64(0)
	category := pricing.CategoryUnknown
	if it.UnitPrice != nil {
		unitPrice = *it.UnitPrice
	} else {
		quote := pricing.QuoteItem(it.ProductType, it.Coverage, it.Size)
		unitPrice = quote.Price
		category = quote.Category
	}
	if it.Category != nil {
		category = *it.Category
	}

	return orderItemResponse{
		ID:          it.ID,
		PlayerName:  it.PlayerName,
		ProductType: it.ProductType,
		Coverage:    string(it.Coverage),
		Size:        it.Size,
		Quantity:    it.Quantity,
		UnitPrice:   unitPrice,
		Category:    category,
		Production:  string(it.Production),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
