// internal/models/product.go
package models

import "github.com/shopspring/decimal"

// LowStockThreshold is the first stock level reported as in stock.
const LowStockThreshold = 10

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// ProductView is a product as rendered in the products table. The status
// fields are derived from Stock on every call to View.
type ProductView struct {
	Product
	Status       StockStatus  `json:"status"`
	StatusLabel  string       `json:"status_label"`
	BadgeVariant BadgeVariant `json:"badge_variant"`
	PriceDisplay string       `json:"price_display"`
}

// ProductFormData is what the product editor submits.
type ProductFormData struct {
	Name        string       `json:"name" form:"name" validate:"notblank"`
	Description string       `json:"description" form:"description"`
	Price       float64      `json:"price" form:"price" validate:"finite,min=0"`
	Stock       int          `json:"stock" form:"stock" validate:"min=0"`
	Image       *ImageUpload `json:"-" form:"-"`
}

// ImageUpload is an image file attached to the product editor.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ClassifyStock maps a stock count to its status.
func ClassifyStock(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOutOfStock
	case stock < LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

func (s StockStatus) Label() string {
	switch s {
	case StockStatusOutOfStock:
		return "Out of Stock"
	case StockStatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

func (s StockStatus) Variant() BadgeVariant {
	switch s {
	case StockStatusOutOfStock:
		return BadgeVariantDestructive
	case StockStatusLowStock:
		return BadgeVariantSecondary
	default:
		return BadgeVariantDefault
	}
}

func (p Product) Status() StockStatus {
	return ClassifyStock(p.Stock)
}

func (p Product) View() ProductView {
	status := p.Status()
	return ProductView{
		Product:      p,
		Status:       status,
		StatusLabel:  status.Label(),
		BadgeVariant: status.Variant(),
		PriceDisplay: FormatMoney(decimal.NewFromFloat(p.Price)),
	}
}

// FormatMoney renders an amount as dollars with two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
