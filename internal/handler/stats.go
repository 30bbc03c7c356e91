package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// StatsHandler 仪表盘统计处理器
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler 创建仪表盘统计处理器
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsSvc}
}

// Dashboard 获取仪表盘统计
// GET /api/v1/stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, stats)
}
