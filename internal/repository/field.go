package repository

import (
	"context"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// TrackingFilter 物流跟踪过滤条件
type TrackingFilter struct {
	OrderID    uint
	CustomerID uint
	Carrier    string
	Status     string
}

type TrackingRepository interface {
	Create(ctx context.Context, tracking *model.Tracking) error
	GetByID(ctx context.Context, id uint) (*model.Tracking, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *TrackingFilter, page *Pagination) ([]*model.Tracking, int64, error)
}

type trackingRepository struct {
	db    *gorm.DB
	alloc SequenceAllocator
}

func NewTrackingRepository(db *gorm.DB, alloc SequenceAllocator) TrackingRepository {
	return &trackingRepository{db: db, alloc: alloc}
}

// Create 在同一事务内分配 KOT 编号并插入
func (r *trackingRepository) Create(ctx context.Context, tracking *model.Tracking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		no, err := r.alloc.Next(tx, TrackingNumber, time.Now())
		if err != nil {
			return err
		}
		tracking.TrackNo = no
		return tx.Create(tracking).Error
	})
}

func (r *trackingRepository) GetByID(ctx context.Context, id uint) (*model.Tracking, error) {
	var tracking model.Tracking
	if err := getByID(r.db, ctx, &tracking, id); err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Tracking{}, id, fields)
}

func (r *trackingRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Tracking{}, id)
}

func (r *trackingRepository) List(ctx context.Context, filter *TrackingFilter, page *Pagination) ([]*model.Tracking, int64, error) {
	var trackings []*model.Tracking
	var total int64
	query := r.db.WithContext(ctx).Model(&model.Tracking{})
	if filter != nil {
		if filter.OrderID != 0 {
			query = query.Where("order_id = ?", filter.OrderID)
		}
		if filter.CustomerID != 0 {
			query = query.Where("customer_id = ?", filter.CustomerID)
		}
		if filter.Carrier != "" {
			query = query.Where("carrier = ?", filter.Carrier)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&trackings).Error; err != nil {
		return nil, 0, err
	}
	return trackings, total, nil
}

// TestRecordFilter 客户测试记录过滤条件
type TestRecordFilter struct {
	CustomerID uint
	ProductID  uint
	Result     string
	Status     string
}

type TestRecordRepository interface {
	Create(ctx context.Context, record *model.TestRecord) error
	GetByID(ctx context.Context, id uint) (*model.TestRecord, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *TestRecordFilter, page *Pagination) ([]*model.TestRecord, int64, error)
}

type testRecordRepository struct {
	db    *gorm.DB
	alloc SequenceAllocator
}

func NewTestRecordRepository(db *gorm.DB, alloc SequenceAllocator) TestRecordRepository {
	return &testRecordRepository{db: db, alloc: alloc}
}

// Create 在同一事务内分配 TST 编号并插入
func (r *testRecordRepository) Create(ctx context.Context, record *model.TestRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		no, err := r.alloc.Next(tx, TestNumber, time.Now())
		if err != nil {
			return err
		}
		record.TestNo = no
		return tx.Create(record).Error
	})
}

func (r *testRecordRepository) GetByID(ctx context.Context, id uint) (*model.TestRecord, error) {
	var record model.TestRecord
	if err := getByID(r.db, ctx, &record, id); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *testRecordRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.TestRecord{}, id, fields)
}

func (r *testRecordRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.TestRecord{}, id)
}

func (r *testRecordRepository) List(ctx context.Context, filter *TestRecordFilter, page *Pagination) ([]*model.TestRecord, int64, error) {
	var records []*model.TestRecord
	var total int64
	query := r.db.WithContext(ctx).Model(&model.TestRecord{})
	if filter != nil {
		if filter.CustomerID != 0 {
			query = query.Where("customer_id = ?", filter.CustomerID)
		}
		if filter.ProductID != 0 {
			query = query.Where("product_id = ?", filter.ProductID)
		}
		if filter.Result != "" {
			query = query.Where("result = ?", filter.Result)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
