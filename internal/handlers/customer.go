// internal/handlers/customer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// GET /customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	customers := h.customerService.Search(c.Query("search"))

	meta := gin.H{"total": len(customers)}
	if len(customers) == 0 {
		meta["message"] = i18n.T(lang, i18n.KeySearchNoResults)
	}
	utils.SuccessResponseWithMeta(c, customers, meta)
}
