// Package pricing реализует движок прайсинга и категоризации позиций заказа.
// Движок — чистая функция трёх входов (тип изделия, комплектация, размер):
// без состояния, без I/O, безопасен для конкурентных вызовов.
package pricing

import (
	"strings"

	"github.com/teamkits/go-backend/internal/domain"
)

// CategoryUnknown возвращается для нераспознанного типа изделия вместе с нулевой ценой.
// Это единственный сигнал ошибки движка: вызов всегда возвращает валидный Quote.
const CategoryUnknown = "Unknown"

// Quote — результат прайсинга одной позиции.
type Quote struct {
	Price    int64  // Целые песо; 0 для нераспознанного типа изделия
	Category string // Человекочитаемая метка ценовой корзины
}

// Tier — внутренняя размерная корзина, по которой выбираются цена и категория.
type Tier int

const (
	TierAdultStandard Tier = iota
	TierJuniorSmall
	TierJuniorStandard
	TierAdultPlusLow
	TierAdultPlusHigh
)

// Базовые цены и надбавки (целые песо).
const (
	jerseyJuniorSmallSet     = 250
	jerseyJuniorSmallPartial = 150
	jerseyJuniorStdSet       = 380
	jerseyJuniorStdPartial   = 200
	jerseyAdultBase          = 280

	flatTiny     = 280
	flatSmallStd = 300
	flatBase     = 320

	plusLowSurcharge  = 30
	plusHighSurcharge = 50
)

// flatGoods — закрытый набор изделий без понятия комплектации.
var flatGoods = map[string]struct{}{
	"Tshirt":      {},
	"Shorts":      {},
	"Pants":       {},
	"Polo Shirt":  {},
	"Longsleeves": {},
	"Hoodie":      {},
}

var (
	juniorStandardSizes = map[string]struct{}{
		"8": {}, "10": {}, "12": {}, "14": {}, "16": {}, "18": {}, "20": {},
	}
	adultPlusLowSizes = map[string]struct{}{
		"2XL": {}, "3XL": {}, "4XL": {},
		"2X-LARGE": {}, "3X-LARGE": {}, "4X-LARGE": {},
	}
	adultPlusHighSizes = map[string]struct{}{
		"5XL": {}, "6XL": {}, "7XL": {},
		"5X-LARGE": {}, "6X-LARGE": {}, "7X-LARGE": {},
	}
	tinySizes = map[string]struct{}{
		"2XS": {}, "XS": {}, "2X-SMALL": {}, "X-SMALL": {},
	}
	smallStandardSizes = map[string]struct{}{
		"S": {}, "M": {}, "L": {},
	}
)

// NormalizeSize приводит сырой токен размера к каноническому виду.
func NormalizeSize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ClassifySize нормализует токен размера и относит его ровно к одной корзине.
// Нераспознанные токены попадают в TierAdultStandard: заказ никогда
// не отклоняется из-за неизвестной строки размера.
func ClassifySize(raw string) (string, Tier) {
	size := NormalizeSize(raw)

	switch {
	case size == "4" || size == "6":
		return size, TierJuniorSmall
	case contains(juniorStandardSizes, size):
		return size, TierJuniorStandard
	case contains(adultPlusLowSizes, size):
		return size, TierAdultPlusLow
	case contains(adultPlusHighSizes, size):
		return size, TierAdultPlusHigh
	default:
		return size, TierAdultStandard
	}
}

// QuoteItem возвращает цену и метку ценовой корзины для позиции заказа.
// Функция тотальна: для нераспознанного типа изделия возвращается
// {0, "Unknown"} без ошибки.
func QuoteItem(productType string, coverage domain.Coverage, size string) Quote {
	normalized, tier := ClassifySize(size)

	// Семейство джерси определяется подстрокой в точном регистре:
	// значения productType — фиксированный набор вида "Basketball Jersey".
	if strings.Contains(productType, "Jersey") {
		return jerseyQuote(coverage, tier)
	}

	if _, ok := flatGoods[productType]; ok {
		return flatQuote(productType, normalized, tier)
	}

	return Quote{Price: 0, Category: CategoryUnknown}
}

// Price — обёртка для вызовов, которым не нужна метка категории.
func Price(productType string, coverage domain.Coverage, size string) int64 {
	return QuoteItem(productType, coverage, size).Price
}

// jerseyQuote считает цену изделий семейства джерси.
// Комплектация влияет на цену только в юниорских корзинах; взрослые
// корзины от комплектации не зависят — бизнес-правило унаследовано как есть.
func jerseyQuote(coverage domain.Coverage, tier Tier) Quote {
	switch tier {
	case TierJuniorSmall:
		if coverage.IsSet() {
			return Quote{Price: jerseyJuniorSmallSet, Category: "Junior Jerseys (4-6)"}
		}
		return Quote{Price: jerseyJuniorSmallPartial, Category: "Junior Jerseys (4-6)"}
	case TierJuniorStandard:
		if coverage.IsSet() {
			return Quote{Price: jerseyJuniorStdSet, Category: "Junior Jerseys (8-20)"}
		}
		return Quote{Price: jerseyJuniorStdPartial, Category: "Junior Jerseys (8-20)"}
	case TierAdultPlusLow:
		return Quote{Price: jerseyAdultBase + plusLowSurcharge, Category: "Adult Plus Size (2XL-4XL)"}
	case TierAdultPlusHigh:
		return Quote{Price: jerseyAdultBase + plusHighSurcharge, Category: "Adult Plus Size (5XL-7XL)"}
	default:
		return Quote{Price: jerseyAdultBase, Category: "Adult Standard"}
	}
}

// flatQuote считает цену изделий без комплектации (футболки, худи и т.д.).
// Метка "(L-XL Sizes)" применяется к токенам S/M/L: несоответствие имени
// корзины её токенам унаследовано от бизнеса и сознательно не «исправляется»,
// поскольку метки видны заказчикам и попадают в отчёты.
func flatQuote(productType, size string, tier Tier) Quote {
	switch tier {
	case TierAdultPlusLow:
		return Quote{Price: flatBase + plusLowSurcharge, Category: productType + " (Plus Size 2XL-4XL)"}
	case TierAdultPlusHigh:
		return Quote{Price: flatBase + plusHighSurcharge, Category: productType + " (Plus Size 5XL-7XL)"}
	default:
		if contains(tinySizes, size) {
			return Quote{Price: flatTiny, Category: productType + " (S-M Sizes)"}
		}
		if contains(smallStandardSizes, size) {
			return Quote{Price: flatSmallStd, Category: productType + " (L-XL Sizes)"}
		}
		return Quote{Price: flatBase, Category: productType + " (Standard)"}
	}
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
