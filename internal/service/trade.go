package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
)

var (
	ErrOrderSubjectEmpty     = errors.New("订单主题不能为空")
	ErrQuotationSubjectEmpty = errors.New("报价主题不能为空")
)

// UpdateOrderInput 订单部分更新
type UpdateOrderInput struct {
	PoNo      *string    `json:"po_no"`
	Subject   *string    `json:"subject"`
	Amount    *float64   `json:"amount"`
	Currency  *string    `json:"currency"`
	OrderDate *time.Time `json:"order_date"`
	DueDate   *time.Time `json:"due_date"`
	Status    *string    `json:"status"`
	Memo      *string    `json:"memo"`
}

func (in *UpdateOrderInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.PoNo != nil {
		m["po_no"] = *in.PoNo
	}
	if in.Subject != nil {
		m["subject"] = *in.Subject
	}
	if in.Amount != nil {
		m["amount"] = *in.Amount
	}
	if in.Currency != nil {
		m["currency"] = *in.Currency
	}
	if in.OrderDate != nil {
		m["order_date"] = *in.OrderDate
	}
	if in.DueDate != nil {
		m["due_date"] = *in.DueDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type OrderService interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	Update(ctx context.Context, id uint, in *UpdateOrderInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.OrderFilter, page *repository.Pagination) ([]*model.PurchaseOrder, int64, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, order *model.PurchaseOrder) error {
	order.Subject = strings.TrimSpace(order.Subject)
	if order.Subject == "" {
		return ErrOrderSubjectEmpty
	}
	if order.Status == "" {
		order.Status = model.StatusOrdered
	}
	if order.Currency == "" {
		order.Currency = "KRW"
	}
	return s.repo.Create(ctx, order)
}

func (s *orderService) GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *orderService) Update(ctx context.Context, id uint, in *UpdateOrderInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *orderService) List(ctx context.Context, filter *repository.OrderFilter, page *repository.Pagination) ([]*model.PurchaseOrder, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateQuotationInput 报价单部分更新
type UpdateQuotationInput struct {
	QuoteNo    *string    `json:"quote_no"`
	Subject    *string    `json:"subject"`
	Amount     *float64   `json:"amount"`
	Currency   *string    `json:"currency"`
	ValidUntil *time.Time `json:"valid_until"`
	Status     *string    `json:"status"`
	Memo       *string    `json:"memo"`
}

func (in *UpdateQuotationInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.QuoteNo != nil {
		m["quote_no"] = *in.QuoteNo
	}
	if in.Subject != nil {
		m["subject"] = *in.Subject
	}
	if in.Amount != nil {
		m["amount"] = *in.Amount
	}
	if in.Currency != nil {
		m["currency"] = *in.Currency
	}
	if in.ValidUntil != nil {
		m["valid_until"] = *in.ValidUntil
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type QuotationService interface {
	Create(ctx context.Context, quotation *model.Quotation) error
	GetByID(ctx context.Context, id uint) (*model.Quotation, error)
	Update(ctx context.Context, id uint, in *UpdateQuotationInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.QuotationFilter, page *repository.Pagination) ([]*model.Quotation, int64, error)
}

type quotationService struct {
	repo repository.QuotationRepository
}

func NewQuotationService(repo repository.QuotationRepository) QuotationService {
	return &quotationService{repo: repo}
}

func (s *quotationService) Create(ctx context.Context, quotation *model.Quotation) error {
	quotation.Subject = strings.TrimSpace(quotation.Subject)
	if quotation.Subject == "" {
		return ErrQuotationSubjectEmpty
	}
	if quotation.Status == "" {
		quotation.Status = model.StatusPending
	}
	if quotation.Currency == "" {
		quotation.Currency = "KRW"
	}
	return s.repo.Create(ctx, quotation)
}

func (s *quotationService) GetByID(ctx context.Context, id uint) (*model.Quotation, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *quotationService) Update(ctx context.Context, id uint, in *UpdateQuotationInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *quotationService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *quotationService) List(ctx context.Context, filter *repository.QuotationFilter, page *repository.Pagination) ([]*model.Quotation, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}
