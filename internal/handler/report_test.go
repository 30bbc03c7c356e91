package handler

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
	"github.com/stretchr/testify/assert"
)

// 质检报告走真实文件存储，配合临时目录做端到端验证
func setupReportTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "qa_reports.json")
	h := NewReportHandler(service.NewReportService(path))

	router := gin.New()
	router.GET("/qa-reports", h.ListReports)
	router.GET("/qa-reports/:id", h.GetReport)
	router.POST("/qa-reports", h.CreateReport)
	router.PUT("/qa-reports/:id", h.UpdateReport)
	router.DELETE("/qa-reports/:id", h.DeleteReport)
	return router
}

func TestReportHandler_CRUD(t *testing.T) {
	router := setupReportTestRouter(t)

	// 创建
	w := doJSON(router, http.MethodPost, "/qa-reports", gin.H{
		"date":      "2026-03-15",
		"station":   "안산1공장",
		"inspector": "이정민",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResp(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "pending", data["status"])

	// 详情
	w = doJSON(router, http.MethodGet, "/qa-reports/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResp(t, w)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "안산1공장", data["station"])

	// 更新
	w = doJSON(router, http.MethodPut, "/qa-reports/1", gin.H{"status": "done"})
	assert.Equal(t, http.StatusOK, w.Code)

	// 列表按状态过滤
	w = doJSON(router, http.MethodGet, "/qa-reports?status=done", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResp(t, w)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	// 删除
	w = doJSON(router, http.MethodDelete, "/qa-reports/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/qa-reports/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp = decodeResp(t, w)
	assert.Equal(t, float64(response.CodeReportNotFound), resp["code"])
}

func TestReportHandler_Create_DateEmpty(t *testing.T) {
	router := setupReportTestRouter(t)

	w := doJSON(router, http.MethodPost, "/qa-reports", gin.H{"station": "안산1공장"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResp(t, w)
	assert.Equal(t, float64(response.CodeInvalidRequest), resp["code"])
}

func TestReportHandler_InvalidID(t *testing.T) {
	router := setupReportTestRouter(t)

	for _, path := range []string{"/qa-reports/abc", "/qa-reports/0", "/qa-reports/-3"} {
		w := doJSON(router, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		resp := decodeResp(t, w)
		assert.Equal(t, float64(response.CodeInvalidRequest), resp["code"], path)
	}
}

func TestReportHandler_Update_NoFields(t *testing.T) {
	router := setupReportTestRouter(t)

	w := doJSON(router, http.MethodPost, "/qa-reports", gin.H{"date": "2026-03-15"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/qa-reports/1", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResp(t, w)
	assert.Equal(t, float64(response.CodeNoUpdatableFields), resp["code"])
}
