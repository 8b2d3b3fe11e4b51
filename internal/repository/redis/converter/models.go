package converter

type OrderInfoRedisModel struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	Total        int64  `json:"total"`
	ItemsCount   int32  `json:"items_count"`
}
