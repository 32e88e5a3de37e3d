// internal/handlers/order.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, ok := h.listOrders(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	page, from, to := utils.Paginate(orders, params)

	views := make([]models.OrderView, 0, len(page))
	for _, order := range page {
		views = append(views, order.View())
	}

	result := utils.CreatePaginationResult(views, int64(len(orders)), from, to, params)
	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponseWithMeta(c, views, gin.H{
		"pagination": utils.PaginationMeta(result),
		"summary":    h.orderService.Summarize(orders),
	})
}

// GET /orders/export
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	orders, ok := h.listOrders(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.orderService.ExportCSV(&buf, orders); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *OrderHandler) listOrders(c *gin.Context) ([]models.Order, bool) {
	lang := utils.GetLangFromContext(c)

	orders, err := h.orderService.List(c.Query("status"))
	if errors.Is(err, services.ErrUnknownOrderTab) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "status"), err.Error())
		return nil, false
	}
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return nil, false
	}
	return orders, true
}
