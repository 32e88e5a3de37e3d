// internal/services/customer_service.go
package services

import (
	"strings"

	"github.com/javajoker/shopsmart-admin/internal/models"
)

type CustomerService struct {
	customers []models.Customer
}

func NewCustomerService(customers []models.Customer) *CustomerService {
	return &CustomerService{customers: customers}
}

// Search returns the customers whose name or email contains term, ignoring
// case. An empty term matches everyone.
func (s *CustomerService) Search(term string) []models.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.Customer(nil), s.customers...)
	}

	matches := []models.Customer{}
	for _, customer := range s.customers {
		if strings.Contains(strings.ToLower(customer.Name), term) ||
			strings.Contains(strings.ToLower(customer.Email), term) {
			matches = append(matches, customer)
		}
	}
	return matches
}
