package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// PowerCalcHandler 节电计算处理器
type PowerCalcHandler struct {
	powerCalcService service.PowerCalcService
}

// NewPowerCalcHandler 创建节电计算处理器
func NewPowerCalcHandler(powerCalcSvc service.PowerCalcService) *PowerCalcHandler {
	return &PowerCalcHandler{powerCalcService: powerCalcSvc}
}

// ListPowerCalcs 获取节电计算列表
// GET /api/v1/power-calcs
func (h *PowerCalcHandler) ListPowerCalcs(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.PowerCalcFilter{
		Station:  c.Query("station"),
		DeviceID: queryUint(c, "device_id"),
	}

	calcs, total, err := h.powerCalcService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(calcs, total, page))
}

// GetPowerCalc 获取节电计算详情
// GET /api/v1/power-calcs/:id
func (h *PowerCalcHandler) GetPowerCalc(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	calc, err := h.powerCalcService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, calc)
}

// CreatePowerCalc 创建节电计算（编号自动分配，节电率自动计算）
// POST /api/v1/power-calcs
func (h *PowerCalcHandler) CreatePowerCalc(c *gin.Context) {
	var calc model.PowerCalc
	if err := c.ShouldBindJSON(&calc); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.powerCalcService.Create(c.Request.Context(), &calc); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, calc)
}

// UpdatePowerCalc 更新节电计算
// PUT /api/v1/power-calcs/:id
func (h *PowerCalcHandler) UpdatePowerCalc(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdatePowerCalcInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.powerCalcService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeletePowerCalc 删除节电计算
// DELETE /api/v1/power-calcs/:id
func (h *PowerCalcHandler) DeletePowerCalc(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.powerCalcService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// PreInstallHandler 安装前调查表处理器
type PreInstallHandler struct {
	preInstallService service.PreInstallService
}

// NewPreInstallHandler 创建安装前调查表处理器
func NewPreInstallHandler(preInstallSvc service.PreInstallService) *PreInstallHandler {
	return &PreInstallHandler{preInstallService: preInstallSvc}
}

// ListPreInstallForms 获取调查表列表
// GET /api/v1/pre-install-forms
func (h *PreInstallHandler) ListPreInstallForms(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.PreInstallFilter{
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
	}

	forms, total, err := h.preInstallService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(forms, total, page))
}

// GetPreInstallForm 获取调查表详情
// GET /api/v1/pre-install-forms/:id
func (h *PreInstallHandler) GetPreInstallForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := h.preInstallService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, form)
}

// CreatePreInstallForm 创建调查表（编号自动分配）
// POST /api/v1/pre-install-forms
func (h *PreInstallHandler) CreatePreInstallForm(c *gin.Context) {
	var form model.PreInstallForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.preInstallService.Create(c.Request.Context(), &form); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, form)
}

// UpdatePreInstallForm 更新调查表
// PUT /api/v1/pre-install-forms/:id
func (h *PreInstallHandler) UpdatePreInstallForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdatePreInstallInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.preInstallService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeletePreInstallForm 删除调查表
// DELETE /api/v1/pre-install-forms/:id
func (h *PreInstallHandler) DeletePreInstallForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.preInstallService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
