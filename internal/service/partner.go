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
	ErrCustomerNameEmpty  = errors.New("客户名称不能为空")
	ErrSupplierNameEmpty  = errors.New("供应商名称不能为空")
	ErrFollowUpTitleEmpty = errors.New("跟进标题不能为空")
)

// UpdateCustomerInput 客户部分更新
// 仅非空指针字段会写入，白名单即字段集本身
type UpdateCustomerInput struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Region      *string `json:"region"`
	Memo        *string `json:"memo"`
	Status      *string `json:"status"`
}

func (in *UpdateCustomerInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.ContactName != nil {
		m["contact_name"] = *in.ContactName
	}
	if in.Phone != nil {
		m["phone"] = *in.Phone
	}
	if in.Email != nil {
		m["email"] = *in.Email
	}
	if in.Address != nil {
		m["address"] = *in.Address
	}
	if in.Region != nil {
		m["region"] = *in.Region
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	return m
}

type CustomerService interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uint) (*model.Customer, error)
	Update(ctx context.Context, id uint, in *UpdateCustomerInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.CustomerFilter, page *repository.Pagination) ([]*model.Customer, int64, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, customer *model.Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return ErrCustomerNameEmpty
	}
	if customer.Status == "" {
		customer.Status = "active"
	}
	return s.repo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) Update(ctx context.Context, id uint, in *UpdateCustomerInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *customerService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *customerService) List(ctx context.Context, filter *repository.CustomerFilter, page *repository.Pagination) ([]*model.Customer, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateSupplierInput 供应商部分更新
type UpdateSupplierInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Status      *string `json:"status"`
}

func (in *UpdateSupplierInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Category != nil {
		m["category"] = *in.Category
	}
	if in.ContactName != nil {
		m["contact_name"] = *in.ContactName
	}
	if in.Phone != nil {
		m["phone"] = *in.Phone
	}
	if in.Email != nil {
		m["email"] = *in.Email
	}
	if in.Address != nil {
		m["address"] = *in.Address
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	return m
}

type SupplierService interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id uint) (*model.Supplier, error)
	Update(ctx context.Context, id uint, in *UpdateSupplierInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.SupplierFilter, page *repository.Pagination) ([]*model.Supplier, int64, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, supplier *model.Supplier) error {
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return ErrSupplierNameEmpty
	}
	if supplier.Status == "" {
		supplier.Status = "active"
	}
	return s.repo.Create(ctx, supplier)
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*model.Supplier, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) Update(ctx context.Context, id uint, in *UpdateSupplierInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *supplierService) List(ctx context.Context, filter *repository.SupplierFilter, page *repository.Pagination) ([]*model.Supplier, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateFollowUpInput 跟进记录部分更新
type UpdateFollowUpInput struct {
	Title   *string    `json:"title"`
	Content *string    `json:"content"`
	DueDate *time.Time `json:"due_date"`
	Status  *string    `json:"status"`
}

func (in *UpdateFollowUpInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Title != nil {
		m["title"] = *in.Title
	}
	if in.Content != nil {
		m["content"] = *in.Content
	}
	if in.DueDate != nil {
		m["due_date"] = *in.DueDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	return m
}

type FollowUpService interface {
	Create(ctx context.Context, followUp *model.FollowUp) error
	GetByID(ctx context.Context, id uint) (*model.FollowUp, error)
	Update(ctx context.Context, id uint, in *UpdateFollowUpInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.FollowUpFilter, page *repository.Pagination) ([]*model.FollowUp, int64, error)
}

type followUpService struct {
	repo repository.FollowUpRepository
}

func NewFollowUpService(repo repository.FollowUpRepository) FollowUpService {
	return &followUpService{repo: repo}
}

func (s *followUpService) Create(ctx context.Context, followUp *model.FollowUp) error {
	followUp.Title = strings.TrimSpace(followUp.Title)
	if followUp.Title == "" {
		return ErrFollowUpTitleEmpty
	}
	if followUp.Status == "" {
		followUp.Status = model.StatusPending
	}
	return s.repo.Create(ctx, followUp)
}

func (s *followUpService) GetByID(ctx context.Context, id uint) (*model.FollowUp, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *followUpService) Update(ctx context.Context, id uint, in *UpdateFollowUpInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *followUpService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *followUpService) List(ctx context.Context, filter *repository.FollowUpFilter, page *repository.Pagination) ([]*model.FollowUp, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}
