package domain

// ProductionStatus описывает положение позиции в производственном конвейере.
// Конвейер фиксированный: queued → printing → pressing → sewing →
// quality_check → ready → released. Отмена допустима из любого
// нетерминального статуса.
type ProductionStatus string

const (
	ProductionQueued       ProductionStatus = "queued"
	ProductionPrinting     ProductionStatus = "printing"
	ProductionPressing     ProductionStatus = "pressing"
	ProductionSewing       ProductionStatus = "sewing"
	ProductionQualityCheck ProductionStatus = "quality_check"
	ProductionReady        ProductionStatus = "ready"
	ProductionReleased     ProductionStatus = "released"
	ProductionCancelled    ProductionStatus = "cancelled"
)

// nextProduction задаёт единственный допустимый шаг вперёд по конвейеру.
var nextProduction = map[ProductionStatus]ProductionStatus{
	ProductionQueued:       ProductionPrinting,
	ProductionPrinting:     ProductionPressing,
	ProductionPressing:     ProductionSewing,
	ProductionSewing:       ProductionQualityCheck,
	ProductionQualityCheck: ProductionReady,
	ProductionReady:        ProductionReleased,
}

// ParseProductionStatus разбирает статус производства, возвращая false для неизвестных значений.
func ParseProductionStatus(raw string) (ProductionStatus, bool) {
	switch ProductionStatus(raw) {
	case ProductionQueued, ProductionPrinting, ProductionPressing, ProductionSewing,
		ProductionQualityCheck, ProductionReady, ProductionReleased, ProductionCancelled:
		return ProductionStatus(raw), true
	default:
		return "", false
	}
}

// IsTerminal сообщает, что позиция больше не двигается по конвейеру.
func (s ProductionStatus) IsTerminal() bool {
	return s == ProductionReleased || s == ProductionCancelled
}

// CanTransition проверяет допустимость перехода в статус to.
// Вперёд можно только на один шаг; откат на предыдущий шаг разрешён
// (брак на контроле качества возвращает позицию в пошив и т.п.).
func (s ProductionStatus) CanTransition(to ProductionStatus) bool {
	if s == to {
		return false
	}

	if to == ProductionCancelled {
		return !s.IsTerminal()
	}

	if next, ok := nextProduction[s]; ok && next == to {
		return true
	}

	// шаг назад
	if prev, ok := nextProduction[to]; ok && prev == s {
		return true
	}

	return false
}
