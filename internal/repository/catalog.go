package repository

import (
	"context"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// ProductFilter 产品列表过滤条件
type ProductFilter struct {
	Q        string // 模糊搜索：编码/名称
	Category string
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *ProductFilter, page *Pagination) ([]*model.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := getByID(r.db, ctx, &product, id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Product{}, id, fields)
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Product{}, id)
}

func (r *productRepository) List(ctx context.Context, filter *ProductFilter, page *Pagination) ([]*model.Product, int64, error) {
	var products []*model.Product
	var total int64
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if filter != nil {
		if filter.Q != "" {
			like := "%" + filter.Q + "%"
			query = query.Where("code LIKE ? OR name LIKE ?", like, like)
		}
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// DeviceFilter 设备列表过滤条件
// Online 非空时按在线窗口过滤
type DeviceFilter struct {
	Station string
	Online  *bool
}

type DeviceRepository interface {
	Create(ctx context.Context, device *model.Device) error
	GetByID(ctx context.Context, id uint) (*model.Device, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *DeviceFilter, page *Pagination) ([]*model.Device, int64, error)
	Heartbeat(ctx context.Context, id uint, at time.Time) error
	CountOnline(ctx context.Context, now time.Time) (int64, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepository) GetByID(ctx context.Context, id uint) (*model.Device, error) {
	var device model.Device
	if err := getByID(r.db, ctx, &device, id); err != nil {
		return nil, err
	}
	device.RefreshOnline(time.Now())
	return &device, nil
}

func (r *deviceRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID(r.db, ctx, &model.Device{}, id, fields)
}

func (r *deviceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db, ctx, &model.Device{}, id)
}

func (r *deviceRepository) List(ctx context.Context, filter *DeviceFilter, page *Pagination) ([]*model.Device, int64, error) {
	var devices []*model.Device
	var total int64
	now := time.Now()
	cutoff := now.Add(-model.DeviceOnlineWindow)
	query := r.db.WithContext(ctx).Model(&model.Device{})
	if filter != nil {
		if filter.Station != "" {
			query = query.Where("station = ?", filter.Station)
		}
		if filter.Online != nil {
			if *filter.Online {
				query = query.Where("last_seen_at >= ?", cutoff)
			} else {
				query = query.Where("last_seen_at IS NULL OR last_seen_at < ?", cutoff)
			}
		}
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPage(query, page).Order("id DESC").Find(&devices).Error; err != nil {
		return nil, 0, err
	}
	for _, d := range devices {
		d.RefreshOnline(now)
	}
	return devices, total, nil
}

func (r *deviceRepository) Heartbeat(ctx context.Context, id uint, at time.Time) error {
	return updateByID(r.db, ctx, &model.Device{}, id, map[string]interface{}{"last_seen_at": at})
}

func (r *deviceRepository) CountOnline(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	cutoff := now.Add(-model.DeviceOnlineWindow)
	err := r.db.WithContext(ctx).
		Model(&model.Device{}).
		Where("last_seen_at >= ?", cutoff).
		Count(&count).Error
	return count, err
}
