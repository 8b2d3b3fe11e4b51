package http

import (
	"encoding/json"
	"net/http"

	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/pricing"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/logger"
)

// QuoteHandler считает предварительную смету без создания заказа.
// Работает напрямую с прайсинговым движком, состояния не имеет.
type QuoteHandler struct {
	logger logger.Logger
}

func NewQuoteHandler(logger logger.Logger) *QuoteHandler {
	return &QuoteHandler{logger: logger}
}

type quoteRequest struct {
	Items []itemPayload `json:"items"`
}

type quoteLineResponse struct {
	PlayerName string `json:"player_name,omitempty"`
	Size       string `json:"size"`
	UnitPrice  int64  `json:"unit_price"`
	Category   string `json:"category"`
	Quantity   int32  `json:"quantity"`
	LineTotal  int64  `json:"line_total"`
}

type quoteGroupResponse struct {
	CustomerName string `json:"customer_name"`
	Subtotal     int64  `json:"subtotal"`
}

type quoteResponse struct {
	Lines  []quoteLineResponse  `json:"lines"`
	Groups []quoteGroupResponse `json:"groups"`
	Total  int64                `json:"total"`
}

// quoteBatch
//
//	@Summary		Предварительная смета батча
//	@Description	Считает цены позиций и итог без создания заказа
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	quoteResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/quotes [post]
func (h *QuoteHandler) quoteBatch(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		WriteError(w, e.ErrNoItems)
		return
	}

	lines := make([]quoteLineResponse, 0, len(req.Items))
	aggItems := make([]pricing.Item, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			WriteError(w, e.ErrInvalidQuantity)
			return
		}

		coverage := domain.ParseCoverage(it.Coverage)
		quote := pricing.QuoteItem(it.ProductType, coverage, it.Size)
		normalized, _ := pricing.ClassifySize(it.Size)

		price := quote.Price
		lines = append(lines, quoteLineResponse{
			PlayerName: it.PlayerName,
			Size:       normalized,
			UnitPrice:  quote.Price,
			Category:   quote.Category,
			Quantity:   it.Quantity,
			LineTotal:  quote.Price * int64(it.Quantity),
		})
		aggItems = append(aggItems, pricing.Item{
			CustomerKey:  it.PlayerName,
			CustomerName: it.PlayerName,
			Price:        &price,
			Quantity:     it.Quantity,
		})
	}

	summary := pricing.Aggregate(aggItems)
	groups := make([]quoteGroupResponse, 0, len(summary.Groups))
	for _, g := range summary.Groups {
		groups = append(groups, quoteGroupResponse{
			CustomerName: g.CustomerName,
			Subtotal:     g.Subtotal,
		})
	}

	WriteSuccess(w, http.StatusOK, &quoteResponse{
		Lines:  lines,
		Groups: groups,
		Total:  summary.Total,
	})
}
