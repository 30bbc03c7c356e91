package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// CustomerHandler 客户管理处理器
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler 创建客户管理处理器
func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerSvc}
}

// ListCustomers 获取客户列表
// GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.CustomerFilter{
		Q:      c.Query("q"),
		Region: c.Query("region"),
		Status: c.Query("status"),
	}

	customers, total, err := h.customerService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(customers, total, page))
}

// GetCustomer 获取客户详情
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, customer)
}

// CreateCustomer 创建客户
// POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var customer model.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.customerService.Create(c.Request.Context(), &customer); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, customer)
}

// UpdateCustomer 更新客户
// PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.customerService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteCustomer 删除客户
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// FollowUpHandler 客户跟进处理器
type FollowUpHandler struct {
	followUpService service.FollowUpService
}

// NewFollowUpHandler 创建客户跟进处理器
func NewFollowUpHandler(followUpSvc service.FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{followUpService: followUpSvc}
}

// ListFollowUps 获取跟进列表
// GET /api/v1/followups
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.FollowUpFilter{
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	followUps, total, err := h.followUpService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(followUps, total, page))
}

// GetFollowUp 获取跟进详情
// GET /api/v1/followups/:id
func (h *FollowUpHandler) GetFollowUp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	followUp, err := h.followUpService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, followUp)
}

// CreateFollowUp 创建跟进记录
// POST /api/v1/followups
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	var followUp model.FollowUp
	if err := c.ShouldBindJSON(&followUp); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.followUpService.Create(c.Request.Context(), &followUp); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, followUp)
}

// UpdateFollowUp 更新跟进记录
// PUT /api/v1/followups/:id
func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateFollowUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.followUpService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteFollowUp 删除跟进记录
// DELETE /api/v1/followups/:id
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.followUpService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
