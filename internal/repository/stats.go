package repository

import (
	"context"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
)

// StatsRepository 仪表盘计数查询
type StatsRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountQuotations(ctx context.Context) (int64, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountTaxInvoices(ctx context.Context) (int64, error)
	CountTestRecords(ctx context.Context) (int64, error)
	CountTrackings(ctx context.Context) (int64, error)
	CountPowerCalcs(ctx context.Context) (int64, error)
	CountPreInstallForms(ctx context.Context) (int64, error)
	CountOpenFollowUps(ctx context.Context) (int64, error)
	CountOnlineDevices(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) count(ctx context.Context, m interface{}, conds func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(m)
	if conds != nil {
		query = conds(query)
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *statsRepository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Customer{}, nil)
}

func (r *statsRepository) CountSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Supplier{}, nil)
}

func (r *statsRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Product{}, nil)
}

func (r *statsRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.PurchaseOrder{}, nil)
}

func (r *statsRepository) CountQuotations(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Quotation{}, nil)
}

func (r *statsRepository) CountInvoices(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Invoice{}, nil)
}

func (r *statsRepository) CountTaxInvoices(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.TaxInvoice{}, nil)
}

func (r *statsRepository) CountTestRecords(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.TestRecord{}, nil)
}

func (r *statsRepository) CountTrackings(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Tracking{}, nil)
}

func (r *statsRepository) CountPowerCalcs(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.PowerCalc{}, nil)
}

func (r *statsRepository) CountPreInstallForms(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.PreInstallForm{}, nil)
}

// CountOpenFollowUps 仅统计未关闭的跟进记录
func (r *statsRepository) CountOpenFollowUps(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.FollowUp{}, func(q *gorm.DB) *gorm.DB {
		return q.Where("status <> ?", model.StatusClosed)
	})
}

// CountOnlineDevices 统计在线窗口内上报过的设备
func (r *statsRepository) CountOnlineDevices(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-model.DeviceOnlineWindow)
	return r.count(ctx, &model.Device{}, func(q *gorm.DB) *gorm.DB {
		return q.Where("last_seen_at >= ?", cutoff)
	})
}
