package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// statsCacheKey 仪表盘统计缓存键
const statsCacheKey = "stats:dashboard"

// DashboardStats 仪表盘统计结果
// 固定计数器集合，任一子查询失败计 0，不影响整体返回
type DashboardStats struct {
	Customers       int64 `json:"customers"`
	Suppliers       int64 `json:"suppliers"`
	Products        int64 `json:"products"`
	Orders          int64 `json:"orders"`
	Quotations      int64 `json:"quotations"`
	Invoices        int64 `json:"invoices"`
	TaxInvoices     int64 `json:"tax_invoices"`
	TestRecords     int64 `json:"test_records"`
	Trackings       int64 `json:"trackings"`
	PowerCalcs      int64 `json:"power_calcs"`
	PreInstallForms int64 `json:"pre_install_forms"`
	OpenFollowUps   int64 `json:"open_follow_ups"`
	OnlineDevices   int64 `json:"online_devices"`
}

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	repo     repository.StatsRepository
	redis    *redis.Client // 可为 nil，此时不走缓存
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewStatsService 创建仪表盘统计服务
func NewStatsService(repo repository.StatsRepository, redisClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) StatsService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &statsService{repo: repo, redis: redisClient, cacheTTL: cacheTTL, logger: logger}
}

// Dashboard 汇总各表计数
// 子查询并发执行；单个失败记日志并计 0，整体永远成功
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats := &DashboardStats{}
	counters := []struct {
		name  string
		count func(context.Context) (int64, error)
		dest  *int64
	}{
		{"customers", s.repo.CountCustomers, &stats.Customers},
		{"suppliers", s.repo.CountSuppliers, &stats.Suppliers},
		{"products", s.repo.CountProducts, &stats.Products},
		{"orders", s.repo.CountOrders, &stats.Orders},
		{"quotations", s.repo.CountQuotations, &stats.Quotations},
		{"invoices", s.repo.CountInvoices, &stats.Invoices},
		{"tax_invoices", s.repo.CountTaxInvoices, &stats.TaxInvoices},
		{"test_records", s.repo.CountTestRecords, &stats.TestRecords},
		{"trackings", s.repo.CountTrackings, &stats.Trackings},
		{"power_calcs", s.repo.CountPowerCalcs, &stats.PowerCalcs},
		{"pre_install_forms", s.repo.CountPreInstallForms, &stats.PreInstallForms},
		{"open_follow_ups", s.repo.CountOpenFollowUps, &stats.OpenFollowUps},
		{"online_devices", s.repo.CountOnlineDevices, &stats.OnlineDevices},
	}

	var wg sync.WaitGroup
	for _, c := range counters {
		wg.Add(1)
		go func(name string, count func(context.Context) (int64, error), dest *int64) {
			defer wg.Done()
			n, err := count(ctx)
			if err != nil {
				// 失败的计数器按 0 上报，保证仪表盘可用
				s.logger.Warn("统计子查询失败",
					zap.String("counter", name),
					zap.Error(err),
				)
				return
			}
			*dest = n
		}(c.name, c.count, c.dest)
	}
	wg.Wait()

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *statsService) fromCache(ctx context.Context) *DashboardStats {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, statsCacheKey).Result()
	if err != nil {
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *statsService) toCache(ctx context.Context, stats *DashboardStats) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, statsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("统计缓存写入失败", zap.Error(err))
	}
}
