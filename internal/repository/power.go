package repository

import (
	"context"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// PowerCalcFilter 节电计算记录过滤条件
type PowerCalcFilter struct {
	Station  string
	DeviceID uint
}

type PowerCalcRepository interface {
	Create(ctx context.Context, calc *model.PowerCalc) error
	GetByID(ctx context.Context, id uint) (*model.PowerCalc, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *PowerCalcFilter, page *Pagination) ([]*model.PowerCalc, int64, error)
}

type powerCalcRepository struct {
	db    *gorm.DB
	alloc SequenceAllocator
}

func NewPowerCalcRepository(db *gorm.DB, alloc SequenceAllocator) PowerCalcRepository {
	return &powerCalcRepository{db: db, alloc: alloc}
}

// Create 在同一事务内分配 PWR 编号并插入
func (r *powerCalcRepository) Create(ctx context.Context, calc *model.PowerCalc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		no, err := r.alloc.Next(tx, PowerNumber, time.Now())
		if err != nil {
			return err
		}
		calc.CalcNo = no
		return tx.Create(calc).Error
	})
}

func (r *powerCalcRepository) GetByID(ctx context.Context, id uint) (*model.PowerCalc, error) {
	var calc model.PowerCalc
	if err := getByID(r.db, ctx, &calc, id); err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *powerCalcRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.PowerCalc{}, id, fields)
}

func (r *powerCalcRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.PowerCalc{}, id)
}

func (r *powerCalcRepository) List(ctx context.Context, filter *PowerCalcFilter, page *Pagination) ([]*model.PowerCalc, int64, error) {
	var calcs []*model.PowerCalc
	var total int64
	query := r.db.WithContext(ctx).Model(&model.PowerCalc{})
	if filter != nil {
		if filter.Station != "" {
			query = query.Where("station = ?", filter.Station)
		}
		if filter.DeviceID != 0 {
			query = query.Where("device_id = ?", filter.DeviceID)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&calcs).Error; err != nil {
		return nil, 0, err
	}
	return calcs, total, nil
}

// PreInstallFilter 安装前调查表过滤条件
type PreInstallFilter struct {
	CustomerID uint
	Status     string
}

type PreInstallRepository interface {
	Create(ctx context.Context, form *model.PreInstallForm) error
	GetByID(ctx context.Context, id uint) (*model.PreInstallForm, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *PreInstallFilter, page *Pagination) ([]*model.PreInstallForm, int64, error)
}

type preInstallRepository struct {
	db    *gorm.DB
	alloc SequenceAllocator
}

func NewPreInstallRepository(db *gorm.DB, alloc SequenceAllocator) PreInstallRepository {
	return &preInstallRepository{db: db, alloc: alloc}
}

// Create 在同一事务内分配 PRE 编号并插入
func (r *preInstallRepository) Create(ctx context.Context, form *model.PreInstallForm) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		no, err := r.alloc.Next(tx, PreInstallNumber, time.Now())
		if err != nil {
			return err
		}
		form.FormNo = no
		return tx.Create(form).Error
	})
}

func (r *preInstallRepository) GetByID(ctx context.Context, id uint) (*model.PreInstallForm, error) {
	var form model.PreInstallForm
	if err := getByID(r.db, ctx, &form, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *preInstallRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.PreInstallForm{}, id, fields)
}

func (r *preInstallRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.PreInstallForm{}, id)
}

func (r *preInstallRepository) List(ctx context.Context, filter *PreInstallFilter, page *Pagination) ([]*model.PreInstallForm, int64, error) {
	var forms []*model.PreInstallForm
	var total int64
	query := r.db.WithContext(ctx).Model(&model.PreInstallForm{})
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
	if err := applyPage(query, page).Order("id DESC").Find(&forms).Error; err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}
