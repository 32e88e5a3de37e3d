// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/javajoker/shopsmart-admin/internal/models"
)

const OrderTabAll = "all"

var ErrUnknownOrderTab = errors.New("unknown order status")

type OrderService struct {
	orders []models.Order
}

type OrderSummary struct {
	Count int    `json:"count"`
	Total string `json:"total"`
}

func NewOrderService(orders []models.Order) *OrderService {
	return &OrderService{orders: orders}
}

// List returns the orders shown under a status tab. The tab is matched
// case-insensitively against the order status; "all" or "" returns every order.
func (s *OrderService) List(tab string) ([]models.Order, error) {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" || tab == OrderTabAll {
		return append([]models.Order(nil), s.orders...), nil
	}

	status, ok := parseOrderStatus(tab)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrderTab, tab)
	}

	orders := []models.Order{}
	for _, order := range s.orders {
		if order.Status == status {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// Summarize totals a list of orders without float rounding drift.
func (s *OrderService) Summarize(orders []models.Order) OrderSummary {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(decimal.NewFromFloat(order.Total))
	}
	return OrderSummary{Count: len(orders), Total: models.FormatMoney(total)}
}

// ExportCSV writes orders as CSV with a header row.
func (s *OrderService) ExportCSV(w io.Writer, orders []models.Order) error {
	if err := gocsv.Marshal(orders, w); err != nil {
		return fmt.Errorf("failed to export orders: %w", err)
	}
	return nil
}

func parseOrderStatus(tab string) (models.OrderStatus, bool) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if strings.EqualFold(string(status), tab) {
			return status, true
		}
	}
	return "", false
}
