package repository

import (
	"context"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// OrderFilter 订单列表过滤条件
type OrderFilter struct {
	CustomerID uint
	SupplierID uint
	Status     string
	Q          string // 模糊搜索：订单号/主题
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *OrderFilter, page *Pagination) ([]*model.PurchaseOrder, int64, error)
	ListAll(ctx context.Context, filter *OrderFilter) ([]*model.PurchaseOrder, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	if err := getByID(r.db, ctx, &order, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.PurchaseOrder{}, id, fields)
}

func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.PurchaseOrder{}, id)
}

func (r *orderRepository) filtered(ctx context.Context, filter *OrderFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.PurchaseOrder{})
	if filter != nil {
		if filter.CustomerID != 0 {
			query = query.Where("customer_id = ?", filter.CustomerID)
		}
		if filter.SupplierID != 0 {
			query = query.Where("supplier_id = ?", filter.SupplierID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Q != "" {
			like := "%" + filter.Q + "%"
			query = query.Where("po_no LIKE ? OR subject LIKE ?", like, like)
		}
	}
	return query
}

func (r *orderRepository) List(ctx context.Context, filter *OrderFilter, page *Pagination) ([]*model.PurchaseOrder, int64, error) {
	var orders []*model.PurchaseOrder
	var total int64
	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAll 不分页返回全部匹配订单，供导出使用
func (r *orderRepository) ListAll(ctx context.Context, filter *OrderFilter) ([]*model.PurchaseOrder, error) {
	var orders []*model.PurchaseOrder
	err := r.filtered(ctx, filter).Order("id DESC").Find(&orders).Error
	return orders, err
}

// QuotationFilter 报价单列表过滤条件
type QuotationFilter struct {
	CustomerID uint
	Status     string
}

type QuotationRepository interface {
	Create(ctx context.Context, quotation *model.Quotation) error
	GetByID(ctx context.Context, id uint) (*model.Quotation, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *QuotationFilter, page *Pagination) ([]*model.Quotation, int64, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *model.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uint) (*model.Quotation, error) {
	var quotation model.Quotation
	if err := getByID(r.db, ctx, &quotation, id); err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Quotation{}, id, fields)
}

func (r *quotationRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Quotation{}, id)
}

func (r *quotationRepository) List(ctx context.Context, filter *QuotationFilter, page *Pagination) ([]*model.Quotation, int64, error) {
	var quotations []*model.Quotation
	var total int64
	query := r.db.WithContext(ctx).Model(&model.Quotation{})
	if filter != nil {
		if filter.CustomerID != 0 {
			query = query.Where("customer_id = ?", filter.CustomerID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&quotations).Error; err != nil {
		return nil, 0, err
	}
	return quotations, total, nil
}
