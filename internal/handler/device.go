package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// DeviceHandler 监测设备处理器
type DeviceHandler struct {
	deviceService service.DeviceService
}

// NewDeviceHandler 创建监测设备处理器
func NewDeviceHandler(deviceSvc service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceSvc}
}

// ListDevices 获取设备列表
// GET /api/v1/devices
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.DeviceFilter{
		Station: c.Query("station"),
	}
	if raw := c.Query("online"); raw != "" {
		if online, err := strconv.ParseBool(raw); err == nil {
			filter.Online = &online
		}
	}

	devices, total, err := h.deviceService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(devices, total, page))
}

// GetDevice 获取设备详情
// GET /api/v1/devices/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	device, err := h.deviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, device)
}

// CreateDevice 登记设备
// POST /api/v1/devices
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var device model.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.deviceService.Create(c.Request.Context(), &device); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, device)
}

// UpdateDevice 更新设备
// PUT /api/v1/devices/:id
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateDeviceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.deviceService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteDevice 删除设备
// DELETE /api/v1/devices/:id
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deviceService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// Heartbeat 设备上报心跳
// POST /api/v1/devices/:id/heartbeat
func (h *DeviceHandler) Heartbeat(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deviceService.Heartbeat(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "上报成功", nil)
}
