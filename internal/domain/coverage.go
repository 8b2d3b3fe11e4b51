package domain

import "strings"

// Coverage описывает комплектацию позиции заказа:
// полный комплект, только верх или только низ.
type Coverage string

const (
	CoverageSet   Coverage = "Set"
	CoverageUpper Coverage = "Upper"
	CoverageLower Coverage = "Lower"
)

// ParseCoverage разбирает строковое значение комплектации без учёта регистра.
// Неизвестные значения трактуются как полный комплект: приём заказа
// никогда не блокируется из-за нераспознанного поля.
func ParseCoverage(raw string) Coverage {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "upper":
		return CoverageUpper
	case "lower":
		return CoverageLower
	default:
		return CoverageSet
	}
}

// IsSet сообщает, что позиция заказана полным комплектом.
func (c Coverage) IsSet() bool {
	return c == CoverageSet
}
