// internal/models/dashboard.go
package models

type StatCard struct {
	Title            string  `json:"title"`
	Value            string  `json:"value"`
	PercentageChange float64 `json:"percentage_change"`
	ChangeLabel      string  `json:"change_label"`
	Icon             string  `json:"icon"`
}

type SalesPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type InventorySummary struct {
	TotalProducts  int    `json:"total_products"`
	InStock        int    `json:"in_stock"`
	LowStock       int    `json:"low_stock"`
	OutOfStock     int    `json:"out_of_stock"`
	TotalUnits     int    `json:"total_units"`
	InventoryValue string `json:"inventory_value"`
}

type Dashboard struct {
	Stats        []StatCard        `json:"stats"`
	Sales        []SalesPoint      `json:"sales"`
	RecentOrders []RecentOrderView `json:"recent_orders"`
	Inventory    InventorySummary  `json:"inventory"`
}
