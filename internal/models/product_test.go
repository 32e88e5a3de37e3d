package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{0, StockStatusOutOfStock},
		{1, StockStatusLowStock},
		{5, StockStatusLowStock},
		{9, StockStatusLowStock},
		{10, StockStatusInStock},
		{42, StockStatusInStock},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStock(tc.stock), "stock=%d", tc.stock)
	}
}

func TestProductView(t *testing.T) {
	p := Product{ID: "prod-003", Name: "4K Ultra-Wide Monitor", Price: 799.5, Stock: 8}

	view := p.View()
	assert.Equal(t, StockStatusLowStock, view.Status)
	assert.Equal(t, "Low Stock", view.StatusLabel)
	assert.Equal(t, BadgeVariantSecondary, view.BadgeVariant)
	assert.Equal(t, "$799.50", view.PriceDisplay)

	p.Stock = 0
	view = p.View()
	assert.Equal(t, "Out of Stock", view.StatusLabel)
	assert.Equal(t, BadgeVariantDestructive, view.BadgeVariant)
}

func TestOrderVariants(t *testing.T) {
	assert.Equal(t, BadgeVariantOutline, OrderStatusDelivered.Variant())
	assert.Equal(t, BadgeVariantDefault, OrderStatusDelivered.RecentVariant())
	assert.Equal(t, BadgeVariantDestructive, OrderStatusCancelled.Variant())
	assert.Equal(t, BadgeVariantSecondary, OrderStatusProcessing.RecentVariant())

	view := Order{ID: "ORD002", Status: OrderStatusDelivered, Total: 150.75}.View()
	assert.Equal(t, "$150.75", view.TotalDisplay)
}

func TestOwnerPassword(t *testing.T) {
	owner := &Owner{Name: "Store Owner", Email: "owner@shopsmart.com"}
	assert.NoError(t, owner.SetPassword("s3cret-pass"))
	assert.NotEqual(t, "s3cret-pass", owner.PasswordHash)
	assert.NoError(t, owner.CheckPassword("s3cret-pass"))
	assert.Error(t, owner.CheckPassword("wrong"))
}
