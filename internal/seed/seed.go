// Package seed holds the fixed sample data a session starts with.
package seed

import "github.com/javajoker/shopsmart-admin/internal/models"

// Products returns the initial catalog.
func Products() []models.Product {
	return []models.Product{
		{ID: "prod-001", Name: "Ergonomic Office Chair", Description: "A comfortable chair for long hours.", Price: 299.99, Stock: 42, ImageURL: "https://images.unsplash.com/photo-1580480055273-228ff54a3222?q=80&w=400"},
		{ID: "prod-002", Name: "Wireless Mechanical Keyboard", Description: "Clicky keys for a satisfying typing experience.", Price: 120.00, Stock: 15, ImageURL: "https://images.unsplash.com/photo-1618384887924-3bde1b1a13e3?q=80&w=400"},
		{ID: "prod-003", Name: "4K Ultra-Wide Monitor", Description: "Expansive screen real estate for productivity.", Price: 799.50, Stock: 8, ImageURL: "https://images.unsplash.com/photo-1629895697779-6f5a709c313a?q=80&w=400"},
		{ID: "prod-004", Name: "Noise-Cancelling Headphones", Description: "Focus on your work with immersive sound.", Price: 349.00, Stock: 30, ImageURL: "https://images.unsplash.com/photo-1546435770-a3e426bf4022?q=80&w=400"},
		{ID: "prod-005", Name: "Adjustable Standing Desk", Description: "Switch between sitting and standing with ease.", Price: 599.00, Stock: 0, ImageURL: "https://images.unsplash.com/photo-1611252399249-552683b584d4?q=80&w=400"},
	}
}

func Customers() []models.Customer {
	return []models.Customer{
		{ID: "cust_001", Name: "Alice Johnson", Email: "alice.j@example.com", JoinDate: "2023-01-15", Avatar: models.Avatar{Src: "https://ui.shadcn.com/avatars/02.png", Fallback: "AJ"}},
		{ID: "cust_002", Name: "Bob Williams", Email: "bob.w@example.com", JoinDate: "2023-02-20", Avatar: models.Avatar{Src: "https://ui.shadcn.com/avatars/03.png", Fallback: "BW"}},
		{ID: "cust_003", Name: "Charlie Brown", Email: "charlie.b@example.com", JoinDate: "2023-03-10", Avatar: models.Avatar{Fallback: "CB"}},
		{ID: "cust_004", Name: "Diana Miller", Email: "diana.m@example.com", JoinDate: "2023-04-05", Avatar: models.Avatar{Src: "https://ui.shadcn.com/avatars/04.png", Fallback: "DM"}},
		{ID: "cust_005", Name: "Ethan Davis", Email: "ethan.d@example.com", JoinDate: "2023-05-22", Avatar: models.Avatar{Src: "https://ui.shadcn.com/avatars/05.png", Fallback: "ED"}},
		{ID: "cust_006", Name: "Fiona Garcia", Email: "fiona.g@example.com", JoinDate: "2023-06-30", Avatar: models.Avatar{Fallback: "FG"}},
	}
}

func Orders() []models.Order {
	return []models.Order{
		{ID: "ORD001", CustomerName: "Liam Johnson", CustomerEmail: "liam@example.com", Date: "2023-07-15", Status: models.OrderStatusShipped, Total: 250.00},
		{ID: "ORD002", CustomerName: "Olivia Smith", CustomerEmail: "olivia@example.com", Date: "2023-07-14", Status: models.OrderStatusDelivered, Total: 150.75},
		{ID: "ORD003", CustomerName: "Noah Williams", CustomerEmail: "noah@example.com", Date: "2023-07-16", Status: models.OrderStatusProcessing, Total: 350.00},
		{ID: "ORD004", CustomerName: "Emma Brown", CustomerEmail: "emma@example.com", Date: "2023-07-13", Status: models.OrderStatusCancelled, Total: 75.00},
		{ID: "ORD005", CustomerName: "Ava Jones", CustomerEmail: "ava@example.com", Date: "2023-07-12", Status: models.OrderStatusDelivered, Total: 450.50},
	}
}

func RecentOrders() []models.RecentOrder {
	return []models.RecentOrder{
		{ID: "ORD001", CustomerName: "Liam Johnson", Date: "2023-06-23", Status: models.OrderStatusDelivered, Amount: 250.00},
		{ID: "ORD002", CustomerName: "Olivia Smith", Date: "2023-06-24", Status: models.OrderStatusShipped, Amount: 150.75},
		{ID: "ORD003", CustomerName: "Noah Williams", Date: "2023-06-25", Status: models.OrderStatusProcessing, Amount: 75.50},
		{ID: "ORD004", CustomerName: "Emma Brown", Date: "2023-06-26", Status: models.OrderStatusCancelled, Amount: 300.00},
		{ID: "ORD005", CustomerName: "Ava Jones", Date: "2023-06-27", Status: models.OrderStatusShipped, Amount: 45.99},
	}
}

func Stats() []models.StatCard {
	return []models.StatCard{
		{Title: "Total Revenue", Value: "$45,231.89", PercentageChange: 20.1, ChangeLabel: "from last month", Icon: "dollar-sign"},
		{Title: "Subscriptions", Value: "+2350", PercentageChange: 180.1, ChangeLabel: "from last month", Icon: "users"},
		{Title: "Sales", Value: "+12,234", PercentageChange: 19, ChangeLabel: "from last month", Icon: "credit-card"},
		{Title: "Active Now", Value: "+573", PercentageChange: -2.1, ChangeLabel: "since last hour", Icon: "activity"},
	}
}

// Sales is the monthly revenue series behind the overview chart.
func Sales() []models.SalesPoint {
	return []models.SalesPoint{
		{Month: "Jan", Revenue: 4000},
		{Month: "Feb", Revenue: 3000},
		{Month: "Mar", Revenue: 5000},
		{Month: "Apr", Revenue: 4500},
		{Month: "May", Revenue: 6000},
		{Month: "Jun", Revenue: 5500},
		{Month: "Jul", Revenue: 7000},
		{Month: "Aug", Revenue: 6500},
		{Month: "Sep", Revenue: 7500},
		{Month: "Oct", Revenue: 8000},
		{Month: "Nov", Revenue: 9500},
		{Month: "Dec", Revenue: 11000},
	}
}

// Preferences are the owner's initial settings.
func Preferences() models.Preferences {
	return models.Preferences{Theme: models.ThemeLight, EmailNotifications: true}
}
