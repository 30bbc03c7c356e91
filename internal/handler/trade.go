package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// OrderHandler 订单管理处理器
type OrderHandler struct {
	orderService  service.OrderService
	exportService service.ExportService
}

// NewOrderHandler 创建订单管理处理器
func NewOrderHandler(orderSvc service.OrderService, exportSvc service.ExportService) *OrderHandler {
	return &OrderHandler{orderService: orderSvc, exportService: exportSvc}
}

// ListOrders 获取订单列表
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.OrderFilter{
		CustomerID: queryUint(c, "customer_id"),
		SupplierID: queryUint(c, "supplier_id"),
		Status:     c.Query("status"),
		Q:          c.Query("q"),
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(orders, total, page))
}

// GetOrder 获取订单详情
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, order)
}

// CreateOrder 创建订单
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order model.PurchaseOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.orderService.Create(c.Request.Context(), &order); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrder 更新订单
// PUT /api/v1/orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.orderService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteOrder 删除订单
// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// ExportOrders 导出订单 Excel
// GET /api/v1/orders/export
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	filter := &repository.OrderFilter{
		CustomerID: queryUint(c, "customer_id"),
		SupplierID: queryUint(c, "supplier_id"),
		Status:     c.Query("status"),
		Q:          c.Query("q"),
	}

	buf, err := h.exportService.ExportOrders(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// QuotationHandler 报价单处理器
type QuotationHandler struct {
	quotationService service.QuotationService
}

// NewQuotationHandler 创建报价单处理器
func NewQuotationHandler(quotationSvc service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationSvc}
}

// ListQuotations 获取报价单列表
// GET /api/v1/quotations
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.QuotationFilter{
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	quotations, total, err := h.quotationService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(quotations, total, page))
}

// GetQuotation 获取报价单详情
// GET /api/v1/quotations/:id
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	quotation, err := h.quotationService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, quotation)
}

// CreateQuotation 创建报价单
// POST /api/v1/quotations
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var quotation model.Quotation
	if err := c.ShouldBindJSON(&quotation); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.quotationService.Create(c.Request.Context(), &quotation); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, quotation)
}

// UpdateQuotation 更新报价单
// PUT /api/v1/quotations/:id
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateQuotationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.quotationService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteQuotation 删除报价单
// DELETE /api/v1/quotations/:id
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.quotationService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
