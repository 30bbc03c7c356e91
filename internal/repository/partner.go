package repository

import (
	"context"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// CustomerFilter 客户列表过滤条件
type CustomerFilter struct {
	Q      string // 多列模糊搜索：名称/联系人/电话/邮箱
	Region string
	Status string
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uint) (*model.Customer, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *CustomerFilter, page *Pagination) ([]*model.Customer, int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := getByID(r.db, ctx, &customer, id); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Customer{}, id, fields)
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Customer{}, id)
}

func (r *customerRepository) List(ctx context.Context, filter *CustomerFilter, page *Pagination) ([]*model.Customer, int64, error) {
	var customers []*model.Customer
	var total int64
	query := r.db.WithContext(ctx).Model(&model.Customer{})
	if filter != nil {
		if filter.Q != "" {
			like := "%" + filter.Q + "%"
			query = query.Where(
				"name LIKE ? OR contact_name LIKE ? OR phone LIKE ? OR email LIKE ?",
				like, like, like, like,
			)
		}
		if filter.Region != "" {
			query = query.Where("region = ?", filter.Region)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// SupplierFilter 供应商列表过滤条件
type SupplierFilter struct {
	Name     string
	Category string
	Status   string
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id uint) (*model.Supplier, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *SupplierFilter, page *Pagination) ([]*model.Supplier, int64, error)
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := getByID(r.db, ctx, &supplier, id); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Supplier{}, id, fields)
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Supplier{}, id)
}

func (r *supplierRepository) List(ctx context.Context, filter *SupplierFilter, page *Pagination) ([]*model.Supplier, int64, error) {
	var suppliers []*model.Supplier
	var total int64
	query := r.db.WithContext(ctx).Model(&model.Supplier{})
	if filter != nil {
		if filter.Name != "" {
			query = query.Where("name LIKE ?", "%"+filter.Name+"%")
		}
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

// FollowUpFilter 跟进记录过滤条件
type FollowUpFilter struct {
	CustomerID uint
	Status     string
}

type FollowUpRepository interface {
	Create(ctx context.Context, followUp *model.FollowUp) error
	GetByID(ctx context.Context, id uint) (*model.FollowUp, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *FollowUpFilter, page *Pagination) ([]*model.FollowUp, int64, error)
}

type followUpRepository struct {
	db *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) FollowUpRepository {
	return &followUpRepository{db: db}
}

func (r *followUpRepository) Create(ctx context.Context, followUp *model.FollowUp) error {
	return r.db.WithContext(ctx).Create(followUp).Error
}

func (r *followUpRepository) GetByID(ctx context.Context, id uint) (*model.FollowUp, error) {
	var followUp model.FollowUp
	if err := getByID(r.db, ctx, &followUp, id); err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.FollowUp{}, id, fields)
}

func (r *followUpRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.FollowUp{}, id)
}

func (r *followUpRepository) List(ctx context.Context, filter *FollowUpFilter, page *Pagination) ([]*model.FollowUp, int64, error) {
	var followUps []*model.FollowUp
	var total int64
	query := r.db.WithContext(ctx).Model(&model.FollowUp{})
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
	if err := applyPage(query, page).Order("id DESC").Find(&followUps).Error; err != nil {
		return nil, 0, err
	}
	return followUps, total, nil
}
