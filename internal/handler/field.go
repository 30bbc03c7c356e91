package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// TrackingHandler 物流跟踪处理器
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler 创建物流跟踪处理器
func NewTrackingHandler(trackingSvc service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingSvc}
}

// ListTrackings 获取物流跟踪列表
// GET /api/v1/trackings
func (h *TrackingHandler) ListTrackings(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.TrackingFilter{
		OrderID:    queryUint(c, "order_id"),
		CustomerID: queryUint(c, "customer_id"),
		Carrier:    c.Query("carrier"),
		Status:     c.Query("status"),
	}

	trackings, total, err := h.trackingService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(trackings, total, page))
}

// GetTracking 获取物流跟踪详情
// GET /api/v1/trackings/:id
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tracking, err := h.trackingService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tracking)
}

// CreateTracking 创建物流跟踪（编号自动分配）
// POST /api/v1/trackings
func (h *TrackingHandler) CreateTracking(c *gin.Context) {
	var tracking model.Tracking
	if err := c.ShouldBindJSON(&tracking); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.trackingService.Create(c.Request.Context(), &tracking); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tracking)
}

// UpdateTracking 更新物流跟踪
// PUT /api/v1/trackings/:id
func (h *TrackingHandler) UpdateTracking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateTrackingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.trackingService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteTracking 删除物流跟踪
// DELETE /api/v1/trackings/:id
func (h *TrackingHandler) DeleteTracking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.trackingService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

// TestRecordHandler 客户测试记录处理器
type TestRecordHandler struct {
	testRecordService service.TestRecordService
}

// NewTestRecordHandler 创建客户测试记录处理器
func NewTestRecordHandler(testRecordSvc service.TestRecordService) *TestRecordHandler {
	return &TestRecordHandler{testRecordService: testRecordSvc}
}

// ListTestRecords 获取测试记录列表
// GET /api/v1/test-records
func (h *TestRecordHandler) ListTestRecords(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.TestRecordFilter{
		CustomerID: queryUint(c, "customer_id"),
		ProductID:  queryUint(c, "product_id"),
		Result:     c.Query("result"),
		Status:     c.Query("status"),
	}

	records, total, err := h.testRecordService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(records, total, page))
}

// GetTestRecord 获取测试记录详情
// GET /api/v1/test-records/:id
func (h *TestRecordHandler) GetTestRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.testRecordService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, record)
}

// CreateTestRecord 创建测试记录（编号自动分配）
// POST /api/v1/test-records
func (h *TestRecordHandler) CreateTestRecord(c *gin.Context) {
	var record model.TestRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.testRecordService.Create(c.Request.Context(), &record); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, record)
}

// UpdateTestRecord 更新测试记录
// PUT /api/v1/test-records/:id
func (h *TestRecordHandler) UpdateTestRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateTestRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.testRecordService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteTestRecord 删除测试记录
// DELETE /api/v1/test-records/:id
func (h *TestRecordHandler) DeleteTestRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.testRecordService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
