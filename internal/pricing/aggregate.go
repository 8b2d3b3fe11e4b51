package pricing

// Item — оценённая позиция с привязкой к заказчику, вход агрегатора.
type Item struct {
	CustomerKey  string // составной ключ заказчика (domain.Customer.Key)
	CustomerName string
	Price        *int64 // nil трактуется как 0, не как ошибка
	Quantity     int32
}

// Group — позиции одного заказчика в порядке добавления.
type Group struct {
	CustomerKey  string
	CustomerName string
	Items        []Item
	Subtotal     int64
}

// Summary — итог агрегации батча.
type Summary struct {
	Total  int64
	Groups []Group
}

// Aggregate за один проход суммирует цены позиций и группирует их по
// заказчику. Порядок групп соответствует первому появлению заказчика во
// входной последовательности, порядок позиций внутри группы — порядку вставки.
func Aggregate(items []Item) Summary {
	var summary Summary
	index := make(map[string]int, len(items))

	for _, item := range items {
		line := int64(0)
		if item.Price != nil {
			line = *item.Price * int64(item.Quantity)
		}

		i, ok := index[item.CustomerKey]
		if !ok {
			i = len(summary.Groups)
			index[item.CustomerKey] = i
			summary.Groups = append(summary.Groups, Group{
				CustomerKey:  item.CustomerKey,
				CustomerName: item.CustomerName,
			})
		}

		summary.Groups[i].Items = append(summary.Groups[i].Items, item)
		summary.Groups[i].Subtotal += line
		summary.Total += line
	}

	return summary
}
