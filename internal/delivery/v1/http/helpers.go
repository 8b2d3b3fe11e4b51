package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrCustomerNameRequired):
		return http.StatusBadRequest, e.ErrCustomerNameRequired.Error()
	case errors.Is(err, e.ErrNoItems):
		return http.StatusBadRequest, e.ErrNoItems.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrTooManyFiles):
		return http.StatusBadRequest, e.ErrTooManyFiles.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrNoOrders):
		return http.StatusBadRequest, e.ErrNoOrders.Error()
	case errors.Is(err, e.ErrInvalidStatus):
		return http.StatusBadRequest, e.ErrInvalidStatus.Error()
	case errors.Is(err, e.ErrInvalidOrderStatus):
		return http.StatusBadRequest, e.ErrInvalidOrderStatus.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrStatusTransition):
		return http.StatusConflict, e.ErrStatusTransition.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrItemNotFound):
		return http.StatusNotFound, e.ErrItemNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToPesos разбирает строку вида "380" или "380.00" в целые песо.
// Прайс-лист оперирует целыми песо, поэтому дробная часть допустима только нулевая.
func parsePriceToPesos(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseCustomerForm читает поля заказчика из multipart-формы.
// Обязательно только имя, телефон и почта опциональны.
func parseCustomerForm(r *http.Request) (*usecase.CustomerInput, error) {
	name := strings.TrimSpace(r.FormValue("customer_name"))
	if name == "" {
		return nil, e.ErrCustomerNameRequired
	}

	return &usecase.CustomerInput{
		Name:  name,
		Phone: strings.TrimSpace(r.FormValue("customer_phone")),
		Email: strings.TrimSpace(r.FormValue("customer_email")),
	}, nil
}

type itemPayload struct {
	PlayerName  string `json:"player_name"`
	ProductType string `json:"product_type"`
	Coverage    string `json:"coverage"`
	Size        string `json:"size"`
	Quantity    int32  `json:"quantity"`
}

// parseItemsField разбирает JSON-массив позиций из поля "items" multipart-формы.
func parseItemsField(r *http.Request) ([]usecase.ItemInput, error) {
	raw := r.FormValue("items")
	if strings.TrimSpace(raw) == "" {
		return nil, e.ErrNoItems
	}

	var payload []itemPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, e.Wrap(fmt.Sprintf("items: %s", err.Error()), e.ErrStatusBadRequest)
	}
	if len(payload) == 0 {
		return nil, e.ErrNoItems
	}

	items := make([]usecase.ItemInput, 0, len(payload))
	for _, it := range payload {
		if it.Quantity <= 0 {
			return nil, e.Wrap(fmt.Sprintf("player: %s", it.PlayerName), e.ErrInvalidQuantity)
		}
		if strings.TrimSpace(it.ProductType) == "" || strings.TrimSpace(it.Size) == "" {
			return nil, e.Wrap(fmt.Sprintf("player: %s", it.PlayerName), e.ErrMissingFields)
		}
		items = append(items, usecase.ItemInput{
			PlayerName:  it.PlayerName,
			ProductType: it.ProductType,
			Coverage:    it.Coverage,
			Size:        it.Size,
			Quantity:    it.Quantity,
		})
	}

	return items, nil
}

// parseFiles читает вложенные файлы дизайна. Файлы опциональны.
func parseFiles(files []*multipart.FileHeader) ([]usecase.DesignUpload, error) {
	const (
		maxFileCount = 10
		maxFileSize  = 15 << 20
	)

	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxFileCount {
		return nil, e.ErrTooManyFiles
	}

	uploads := make([]usecase.DesignUpload, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *usecase.NewDesignUpload(data, mimeType, int64(len(data)), fh.Filename))
	}
	return uploads, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
