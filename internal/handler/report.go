package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// ReportHandler 质检报告处理器
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler 创建质检报告处理器
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportSvc}
}

// 质检报告 ID 独立于数据库自增主键
func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "ID 无效")
		return 0, false
	}
	return id, true
}

// ListReports 获取质检报告列表
// GET /api/v1/qa-reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	filter := &service.ReportFilter{
		Station: c.Query("station"),
		Status:  c.Query("status"),
	}

	reports, err := h.reportService.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"list":  reports,
		"total": len(reports),
	})
}

// GetReport 获取质检报告详情
// GET /api/v1/qa-reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	report, err := h.reportService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, report)
}

// CreateReport 创建质检报告
// POST /api/v1/qa-reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var report model.QAReport
	if err := c.ShouldBindJSON(&report); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.reportService.Create(c.Request.Context(), &report); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, report)
}

// UpdateReport 更新质检报告
// PUT /api/v1/qa-reports/:id
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	var in service.UpdateReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.reportService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteReport 删除质检报告
// DELETE /api/v1/qa-reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	if err := h.reportService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
