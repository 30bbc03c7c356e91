package repository

import (
	"context"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// InvoiceFilter 发票列表过滤条件
type InvoiceFilter struct {
	OrderID    uint
	CustomerID uint
	Status     string
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	GetByID(ctx context.Context, id uint) (*model.Invoice, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *InvoiceFilter, page *Pagination) ([]*model.Invoice, int64, error)
	ListAll(ctx context.Context, filter *InvoiceFilter) ([]*model.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := getByID(r.db, ctx, &invoice, id); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Invoice{}, id, fields)
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Invoice{}, id)
}

func (r *invoiceRepository) filtered(ctx context.Context, filter *InvoiceFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Invoice{})
	if filter != nil {
		if filter.OrderID != 0 {
			query = query.Where("order_id = ?", filter.OrderID)
		}
		if filter.CustomerID != 0 {
			query = query.Where("customer_id = ?", filter.CustomerID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	return query
}

func (r *invoiceRepository) List(ctx context.Context, filter *InvoiceFilter, page *Pagination) ([]*model.Invoice, int64, error) {
	var invoices []*model.Invoice
	var total int64
	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// ListAll 不分页返回全部匹配发票，供导出使用
func (r *invoiceRepository) ListAll(ctx context.Context, filter *InvoiceFilter) ([]*model.Invoice, error) {
	var invoices []*model.Invoice
	err := r.filtered(ctx, filter).Order("id DESC").Find(&invoices).Error
	return invoices, err
}

// TaxInvoiceFilter 税务发票列表过滤条件
type TaxInvoiceFilter struct {
	InvoiceID  uint
	CustomerID uint
	Status     string
}

type TaxInvoiceRepository interface {
	Create(ctx context.Context, taxInvoice *model.TaxInvoice) error
	GetByID(ctx context.Context, id uint) (*model.TaxInvoice, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *TaxInvoiceFilter, page *Pagination) ([]*model.TaxInvoice, int64, error)
}

type taxInvoiceRepository struct {
	db    *gorm.DB
	alloc SequenceAllocator
}

func NewTaxInvoiceRepository(db *gorm.DB, alloc SequenceAllocator) TaxInvoiceRepository {
	return &taxInvoiceRepository{db: db, alloc: alloc}
}

// Create 在同一事务内分配 TIV 编号并插入
func (r *taxInvoiceRepository) Create(ctx context.Context, taxInvoice *model.TaxInvoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		no, err := r.alloc.Next(tx, TaxInvoiceNumber, time.Now())
		if err != nil {
			return err
		}
		taxInvoice.TaxNo = no
		return tx.Create(taxInvoice).Error
	})
}

func (r *taxInvoiceRepository) GetByID(ctx context.Context, id uint) (*model.TaxInvoice, error) {
	var taxInvoice model.TaxInvoice
	if err := getByID(r.db, ctx, &taxInvoice, id); err != nil {
		return nil, err
	}
	return &taxInvoice, nil
}

func (r *taxInvoiceRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.TaxInvoice{}, id, fields)
}

func (r *taxInvoiceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.TaxInvoice{}, id)
}

func (r *taxInvoiceRepository) List(ctx context.Context, filter *TaxInvoiceFilter, page *Pagination) ([]*model.TaxInvoice, int64, error) {
	var taxInvoices []*model.TaxInvoice
	var total int64
	query := r.db.WithContext(ctx).Model(&model.TaxInvoice{})
	if filter != nil {
		if filter.InvoiceID != 0 {
			query = query.Where("invoice_id = ?", filter.InvoiceID)
		}
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
	if err := applyPage(query, page).Order("id DESC").Find(&taxInvoices).Error; err != nil {
		return nil, 0, err
	}
	return taxInvoices, total, nil
}
