package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_ItemCount(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CartLine
		expected int
	}{
		{"empty", nil, 0},
		{"single line", []CartLine{{ProductID: "1", Quantity: 3}}, 3},
		{"many lines", []CartLine{
			{ProductID: "1", Quantity: 3},
			{ProductID: "2", Quantity: 1},
			{ProductID: "3", Quantity: 5},
		}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cart{Lines: tt.lines}
			assert.Equal(t, tt.expected, c.ItemCount())
			assert.Equal(t, tt.expected, CountItems(tt.lines))
		})
	}
}

func TestCart_QuantityOf(t *testing.T) {
	c := Cart{Lines: []CartLine{{ProductID: "prod-1", Quantity: 2}}}

	assert.Equal(t, 2, c.QuantityOf("prod-1"))
	assert.Equal(t, 0, c.QuantityOf("prod-2"))
}

func TestCart_Total(t *testing.T) {
	c := Cart{Lines: []CartLine{
		{ProductID: "1", Quantity: 2, ProductPrice: 10.5},
		{ProductID: "2", Quantity: 1, ProductPrice: 4},
	}}

	assert.InDelta(t, 25.0, c.Total(), 0.0001)
}

func TestAddResult_Partial(t *testing.T) {
	assert.False(t, AddResult{Requested: 3, Added: 3}.Partial())
	assert.True(t, AddResult{Requested: 3, Added: 2}.Partial())
	assert.False(t, AddResult{Requested: 3, Added: 0}.Partial())
}
