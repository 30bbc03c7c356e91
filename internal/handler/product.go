package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

// ProductHandler 产品管理处理器
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler 创建产品管理处理器
func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productSvc}
}

// ListProducts 获取产品列表
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := parsePage(c)
	filter := &repository.ProductFilter{
		Q:        c.Query("q"),
		Category: c.Query("category"),
	}

	products, total, err := h.productService.List(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, listData(products, total, page))
}

// GetProduct 获取产品详情
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建产品
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.productService.Create(c.Request.Context(), &product); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新产品
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UpdateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := h.productService.Update(c.Request.Context(), id, &in); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "更新成功", nil)
}

// DeleteProduct 删除产品
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}
