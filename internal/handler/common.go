// Package handler HTTP 处理器
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// validationErrs 映射为 400 的业务校验错误
var validationErrs = []error{
	service.ErrIDInvalid,
	service.ErrCustomerNameEmpty,
	service.ErrSupplierNameEmpty,
	service.ErrFollowUpTitleEmpty,
	service.ErrProductNameEmpty,
	service.ErrDeviceSerialEmpty,
	service.ErrOrderSubjectEmpty,
	service.ErrQuotationSubjectEmpty,
	service.ErrInvoiceAmountInvalid,
	service.ErrTrackingCarrierEmpty,
	service.ErrTestItemEmpty,
	service.ErrPowerStationEmpty,
	service.ErrPreInstallSiteEmpty,
	service.ErrReportDateEmpty,
	service.ErrUsernameEmpty,
	service.ErrPasswordTooShort,
}

// fail 把服务层错误翻译成响应码
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, response.CodeRecordNotFound)
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(c, response.CodeUserNotFound)
	case errors.Is(err, service.ErrReportNotFound):
		response.Error(c, response.CodeReportNotFound)
	case errors.Is(err, service.ErrNoUpdatableFields), errors.Is(err, repository.ErrNoFields):
		response.Error(c, response.CodeNoUpdatableFields)
	case errors.Is(err, repository.ErrUserExists):
		response.Error(c, response.CodeUserExists)
	case errors.Is(err, service.ErrPasswordIncorrect), errors.Is(err, service.ErrUserDisabled):
		response.Error(c, response.CodeInvalidCredentials)
	default:
		for _, verr := range validationErrs {
			if errors.Is(err, verr) {
				response.ErrorWithMsg(c, response.CodeInvalidRequest, err.Error())
				return
			}
		}
		response.ErrorWithMsg(c, response.CodeServerError, err.Error())
	}
}

// parseID 解析路径中的记录 ID
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "ID 无效")
		return 0, false
	}
	return uint(id), true
}

// parsePage 解析分页参数
func parsePage(c *gin.Context) *repository.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return &repository.Pagination{Page: page, PageSize: pageSize}
}

// queryUint 解析过滤用的数字参数，缺省或非法时为 0
func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// listData 列表响应体
func listData(list interface{}, total int64, page *repository.Pagination) gin.H {
	return gin.H{
		"list":      list,
		"total":     total,
		"page":      page.Page,
		"page_size": page.PageSize,
	}
}
