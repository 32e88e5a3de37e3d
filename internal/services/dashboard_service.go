// internal/services/dashboard_service.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/shopsmart-admin/internal/models"
)

// ProductLister is the slice of the catalog the dashboard reads.
type ProductLister interface {
	List() []models.Product
}

type DashboardService struct {
	catalog      ProductLister
	stats        []models.StatCard
	sales        []models.SalesPoint
	recentOrders []models.RecentOrder
}

func NewDashboardService(catalog ProductLister, stats []models.StatCard, sales []models.SalesPoint, recentOrders []models.RecentOrder) *DashboardService {
	return &DashboardService{
		catalog:      catalog,
		stats:        stats,
		sales:        sales,
		recentOrders: recentOrders,
	}
}

func (s *DashboardService) GetDashboard() *models.Dashboard {
	recent := make([]models.RecentOrderView, 0, len(s.recentOrders))
	for _, order := range s.recentOrders {
		recent = append(recent, order.View())
	}

	return &models.Dashboard{
		Stats:        s.stats,
		Sales:        s.sales,
		RecentOrders: recent,
		Inventory:    s.GetInventorySummary(),
	}
}

// GetInventorySummary counts the live catalog by stock status.
func (s *DashboardService) GetInventorySummary() models.InventorySummary {
	var summary models.InventorySummary
	value := decimal.Zero

	for _, product := range s.catalog.List() {
		summary.TotalProducts++
		summary.TotalUnits += product.Stock
		value = value.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(product.Stock))))

		switch product.Status() {
		case models.StockStatusOutOfStock:
			summary.OutOfStock++
		case models.StockStatusLowStock:
			summary.LowStock++
		default:
			summary.InStock++
		}
	}

	summary.InventoryValue = models.FormatMoney(value)
	return summary
}
