package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *int64 { return &v }

func TestAggregate_TotalAndGroupCount(t *testing.T) {
	t.Parallel()

	items := []Item{
		{CustomerKey: "ana||", CustomerName: "Ana", Price: price(280), Quantity: 1},
		{CustomerKey: "ben||", CustomerName: "Ben", Price: price(310), Quantity: 1},
		{CustomerKey: "ana||", CustomerName: "Ana", Price: price(250), Quantity: 1},
		{CustomerKey: "cid||", CustomerName: "Cid", Price: price(330), Quantity: 1},
	}

	got := Aggregate(items)

	assert.Equal(t, int64(280+310+250+330), got.Total)
	require.Len(t, got.Groups, 3)

	// порядок групп — по первому появлению заказчика
	assert.Equal(t, "ana||", got.Groups[0].CustomerKey)
	assert.Equal(t, "ben||", got.Groups[1].CustomerKey)
	assert.Equal(t, "cid||", got.Groups[2].CustomerKey)

	// порядок позиций внутри группы — порядок вставки
	require.Len(t, got.Groups[0].Items, 2)
	assert.Equal(t, int64(280), *got.Groups[0].Items[0].Price)
	assert.Equal(t, int64(250), *got.Groups[0].Items[1].Price)
	assert.Equal(t, int64(530), got.Groups[0].Subtotal)
}

func TestAggregate_MissingPriceIsZero(t *testing.T) {
	t.Parallel()

	items := []Item{
		{CustomerKey: "ana||", Price: nil, Quantity: 3},
		{CustomerKey: "ana||", Price: price(300), Quantity: 1},
	}

	got := Aggregate(items)

	assert.Equal(t, int64(300), got.Total)
	require.Len(t, got.Groups, 1)
	assert.Len(t, got.Groups[0].Items, 2)
}

func TestAggregate_QuantityMultiplies(t *testing.T) {
	t.Parallel()

	got := Aggregate([]Item{
		{CustomerKey: "ana||", Price: price(280), Quantity: 4},
	})

	assert.Equal(t, int64(1120), got.Total)
	assert.Equal(t, int64(1120), got.Groups[0].Subtotal)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	got := Aggregate(nil)

	assert.Zero(t, got.Total)
	assert.Empty(t, got.Groups)
}
