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

// InvoiceHandler 发票管理处理器
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	exportService  service.ExportService
}

// NewInvoiceHandler 创建发票管理处理器
func NewInvoiceHandler(invoiceSvc service.InvoiceService, exportSvc service.ExportService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceSvc, exportService: exportSvc}
}

// ListInvoices 获取发票列表
// GET /api/v1/invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.InvoiceFilter{
		OrderID:    queryUint(c, "order_id"),
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(invoices, total, page))
}

// GetInvoice 获取发票详情
// GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, invoice)
}

// CreateInvoice 创建发票
// POST /api/v1/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var invoice model.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.invoiceService.Create(c.Request.Context(), &invoice); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, invoice)
}

// UpdateInvoice 更新发票
// PUT /api/v1/invoices/:id
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.invoiceService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteInvoice 删除发票
// DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// ExportInvoices 导出发票 Excel
// GET /api/v1/invoices/export
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	filter := &repository.InvoiceFilter{
		OrderID:    queryUint(c, "order_id"),
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	buf, err := h.exportService.ExportInvoices(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// TaxInvoiceHandler 税务发票处理器
type TaxInvoiceHandler struct {
	taxInvoiceService service.TaxInvoiceService
}

// NewTaxInvoiceHandler 创建税务发票处理器
func NewTaxInvoiceHandler(taxInvoiceSvc service.TaxInvoiceService) *TaxInvoiceHandler {
	return &TaxInvoiceHandler{taxInvoiceService: taxInvoiceSvc}
}

// ListTaxInvoices 获取税务发票列表
// GET /api/v1/tax-invoices
func (h *TaxInvoiceHandler) ListTaxInvoices(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.TaxInvoiceFilter{
		InvoiceID:  queryUint(c, "invoice_id"),
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	taxInvoices, total, err := h.taxInvoiceService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(taxInvoices, total, page))
}

// GetTaxInvoice 获取税务发票详情
// GET /api/v1/tax-invoices/:id
func (h *TaxInvoiceHandler) GetTaxInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	taxInvoice, err := h.taxInvoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, taxInvoice)
}

// CreateTaxInvoice 开具税务发票（编号自动分配）
// POST /api/v1/tax-invoices
func (h *TaxInvoiceHandler) CreateTaxInvoice(c *gin.Context) {
	var taxInvoice model.TaxInvoice
	if err := c.ShouldBindJSON(&taxInvoice); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.taxInvoiceService.Create(c.Request.Context(), &taxInvoice); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, taxInvoice)
}

// UpdateTaxInvoice 更新税务发票
// PUT /api/v1/tax-invoices/:id
func (h *TaxInvoiceHandler) UpdateTaxInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateTaxInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.taxInvoiceService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteTaxInvoice 删除税务发票
// DELETE /api/v1/tax-invoices/:id
func (h *TaxInvoiceHandler) DeleteTaxInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.taxInvoiceService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
