// internal/models/order.go
package models

import "github.com/shopspring/decimal"

type Order struct {
	ID            string      `json:"id" csv:"order_id"`
	CustomerName  string      `json:"customer_name" csv:"customer_name"`
	CustomerEmail string      `json:"customer_email" csv:"customer_email"`
	Date          string      `json:"date" csv:"date"`
	Status        OrderStatus `json:"status" csv:"status"`
	Total         float64     `json:"total" csv:"total"`
}

type OrderView struct {
	Order
	BadgeVariant BadgeVariant `json:"badge_variant"`
	TotalDisplay string       `json:"total_display"`
}

// RecentOrder is a row of the dashboard's recent orders card.
type RecentOrder struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Date         string      `json:"date"`
	Status       OrderStatus `json:"status"`
	Amount       float64     `json:"amount"`
}

type RecentOrderView struct {
	RecentOrder
	BadgeVariant  BadgeVariant `json:"badge_variant"`
	AmountDisplay string       `json:"amount_display"`
}

// Variant is the badge used by the orders management table.
func (s OrderStatus) Variant() BadgeVariant {
	switch s {
	case OrderStatusShipped:
		return BadgeVariantDefault
	case OrderStatusProcessing:
		return BadgeVariantSecondary
	case OrderStatusDelivered:
		return BadgeVariantOutline
	case OrderStatusCancelled:
		return BadgeVariantDestructive
	default:
		return BadgeVariantSecondary
	}
}

// RecentVariant is the badge used by the dashboard, which does not
// distinguish delivered from shipped orders.
func (s OrderStatus) RecentVariant() BadgeVariant {
	switch s {
	case OrderStatusShipped, OrderStatusDelivered:
		return BadgeVariantDefault
	case OrderStatusProcessing:
		return BadgeVariantSecondary
	case OrderStatusCancelled:
		return BadgeVariantDestructive
	default:
		return BadgeVariantOutline
	}
}

func (o Order) View() OrderView {
	return OrderView{
		Order:        o,
		BadgeVariant: o.Status.Variant(),
		TotalDisplay: FormatMoney(decimal.NewFromFloat(o.Total)),
	}
}

func (o RecentOrder) View() RecentOrderView {
	return RecentOrderView{
		RecentOrder:   o,
		BadgeVariant:  o.Status.RecentVariant(),
		AmountDisplay: FormatMoney(decimal.NewFromFloat(o.Amount)),
	}
}
