//go:generate goverter gen github.com/teamkits/go-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/teamkits/go-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type OrderInfoConverter interface {
	ToRedisModel(entity *usecase.OrderInfo) *OrderInfoRedisModel
	ToUseCase(model *OrderInfoRedisModel) *usecase.OrderInfo
	ToArrRedisModel(entities []usecase.OrderInfo) []OrderInfoRedisModel
	ToArrUseCase(models []OrderInfoRedisModel) []usecase.OrderInfo
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
