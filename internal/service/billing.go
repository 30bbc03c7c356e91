package service

import (
	"context"
	"errors"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
)

var ErrInvoiceAmountInvalid = errors.New("发票金额无效")

// UpdateInvoiceInput 发票部分更新
type UpdateInvoiceInput struct {
	InvoiceNo *string    `json:"invoice_no"`
	Amount    *float64   `json:"amount"`
	TaxAmount *float64   `json:"tax_amount"`
	IssueDate *time.Time `json:"issue_date"`
	Status    *string    `json:"status"`
	Memo      *string    `json:"memo"`
}

func (in *UpdateInvoiceInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.InvoiceNo != nil {
		m["invoice_no"] = *in.InvoiceNo
	}
	if in.Amount != nil {
		m["amount"] = *in.Amount
	}
	if in.TaxAmount != nil {
		m["tax_amount"] = *in.TaxAmount
	}
	if in.IssueDate != nil {
		m["issue_date"] = *in.IssueDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type InvoiceService interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	GetByID(ctx context.Context, id uint) (*model.Invoice, error)
	Update(ctx context.Context, id uint, in *UpdateInvoiceInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.InvoiceFilter, page *repository.Pagination) ([]*model.Invoice, int64, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) Create(ctx context.Context, invoice *model.Invoice) error {
	if invoice.Amount < 0 {
		return ErrInvoiceAmountInvalid
	}
	if invoice.Status == "" {
		invoice.Status = model.StatusPending
	}
	return s.repo.Create(ctx, invoice)
}

func (s *invoiceService) GetByID(ctx context.Context, id uint) (*model.Invoice, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) Update(ctx context.Context, id uint, in *UpdateInvoiceInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *invoiceService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter *repository.InvoiceFilter, page *repository.Pagination) ([]*model.Invoice, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateTaxInvoiceInput 税务发票部分更新
// 编号 tax_no 由分配器生成，不允许改写
type UpdateTaxInvoiceInput struct {
	SupplyAmount *float64   `json:"supply_amount"`
	TaxAmount    *float64   `json:"tax_amount"`
	IssueDate    *time.Time `json:"issue_date"`
	Status       *string    `json:"status"`
}

func (in *UpdateTaxInvoiceInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.SupplyAmount != nil {
		m["supply_amount"] = *in.SupplyAmount
	}
	if in.TaxAmount != nil {
		m["tax_amount"] = *in.TaxAmount
	}
	if in.IssueDate != nil {
		m["issue_date"] = *in.IssueDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	return m
}

type TaxInvoiceService interface {
	Create(ctx context.Context, taxInvoice *model.TaxInvoice) error
	GetByID(ctx context.Context, id uint) (*model.TaxInvoice, error)
	Update(ctx context.Context, id uint, in *UpdateTaxInvoiceInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.TaxInvoiceFilter, page *repository.Pagination) ([]*model.TaxInvoice, int64, error)
}

type taxInvoiceService struct {
	repo repository.TaxInvoiceRepository
}

func NewTaxInvoiceService(repo repository.TaxInvoiceRepository) TaxInvoiceService {
	return &taxInvoiceService{repo: repo}
}

func (s *taxInvoiceService) Create(ctx context.Context, taxInvoice *model.TaxInvoice) error {
	if taxInvoice.SupplyAmount < 0 || taxInvoice.TaxAmount < 0 {
		return ErrInvoiceAmountInvalid
	}
	// 合计金额缺省时按供给额+税额补齐
	if taxInvoice.TotalAmount == 0 {
		taxInvoice.TotalAmount = taxInvoice.SupplyAmount + taxInvoice.TaxAmount
	}
	if taxInvoice.Status == "" {
		taxInvoice.Status = model.StatusPending
	}
	if taxInvoice.IssueDate == nil {
		now := time.Now()
		taxInvoice.IssueDate = &now
	}
	return s.repo.Create(ctx, taxInvoice)
}

func (s *taxInvoiceService) GetByID(ctx context.Context, id uint) (*model.TaxInvoice, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *taxInvoiceService) Update(ctx context.Context, id uint, in *UpdateTaxInvoiceInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	// 供给额或税额变化时同步合计金额
	if in.SupplyAmount != nil || in.TaxAmount != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		supply := current.SupplyAmount
		tax := current.TaxAmount
		if in.SupplyAmount != nil {
			supply = *in.SupplyAmount
		}
		if in.TaxAmount != nil {
			tax = *in.TaxAmount
		}
		fields["total_amount"] = supply + tax
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *taxInvoiceService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *taxInvoiceService) List(ctx context.Context, filter *repository.TaxInvoiceFilter, page *repository.Pagination) ([]*model.TaxInvoice, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}
