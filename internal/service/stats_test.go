package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStatsRepository 固定计数的统计仓库
// 计数器会被并发调用，内部需要加锁
type mockStatsRepository struct {
	mu     sync.Mutex
	counts map[string]int64
	errs   map[string]error
	calls  map[string]int
}

func newMockStatsRepository() *mockStatsRepository {
	return &mockStatsRepository{
		counts: make(map[string]int64),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (m *mockStatsRepository) count(name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
	if err, ok := m.errs[name]; ok {
		return 0, err
	}
	return m.counts[name], nil
}

func (m *mockStatsRepository) CountCustomers(ctx context.Context) (int64, error) {
	return m.count("customers")
}
func (m *mockStatsRepository) CountSuppliers(ctx context.Context) (int64, error) {
	return m.count("suppliers")
}
func (m *mockStatsRepository) CountProducts(ctx context.Context) (int64, error) {
	return m.count("products")
}
func (m *mockStatsRepository) CountOrders(ctx context.Context) (int64, error) {
	return m.count("orders")
}
func (m *mockStatsRepository) CountQuotations(ctx context.Context) (int64, error) {
	return m.count("quotations")
}
func (m *mockStatsRepository) CountInvoices(ctx context.Context) (int64, error) {
	return m.count("invoices")
}
func (m *mockStatsRepository) CountTaxInvoices(ctx context.Context) (int64, error) {
	return m.count("tax_invoices")
}
func (m *mockStatsRepository) CountTestRecords(ctx context.Context) (int64, error) {
	return m.count("test_records")
}
func (m *mockStatsRepository) CountTrackings(ctx context.Context) (int64, error) {
	return m.count("trackings")
}
func (m *mockStatsRepository) CountPowerCalcs(ctx context.Context) (int64, error) {
	return m.count("power_calcs")
}
func (m *mockStatsRepository) CountPreInstallForms(ctx context.Context) (int64, error) {
	return m.count("pre_install_forms")
}
func (m *mockStatsRepository) CountOpenFollowUps(ctx context.Context) (int64, error) {
	return m.count("open_follow_ups")
}
func (m *mockStatsRepository) CountOnlineDevices(ctx context.Context) (int64, error) {
	return m.count("online_devices")
}

func TestStatsService_Dashboard(t *testing.T) {
	repo := newMockStatsRepository()
	repo.counts["customers"] = 12
	repo.counts["orders"] = 34
	repo.counts["online_devices"] = 5

	svc := NewStatsService(repo, nil, 0, nil)
	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.Customers)
	assert.Equal(t, int64(34), stats.Orders)
	assert.Equal(t, int64(5), stats.OnlineDevices)
	assert.Equal(t, int64(0), stats.Suppliers)
}

func TestStatsService_Dashboard_CounterFailureReportsZero(t *testing.T) {
	repo := newMockStatsRepository()
	repo.counts["customers"] = 12
	repo.errs["orders"] = errors.New("连接超时")

	svc := NewStatsService(repo, nil, 0, nil)
	stats, err := svc.Dashboard(context.Background())

	// 单个计数器失败不应让整体失败
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Customers)
	assert.Equal(t, int64(0), stats.Orders)
}

func TestStatsService_Dashboard_Cache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := newMockStatsRepository()
	repo.counts["customers"] = 7

	svc := NewStatsService(repo, client, 30*time.Second, nil)
	ctx := context.Background()

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Customers)
	firstCalls := repo.calls["customers"]

	// 第二次命中缓存，不应再查库
	stats, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Customers)
	assert.Equal(t, firstCalls, repo.calls["customers"])

	// 缓存过期后重新查库
	mr.FastForward(31 * time.Second)
	repo.counts["customers"] = 9
	stats, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.Customers)
}

func TestStatsService_Dashboard_NilRedis(t *testing.T) {
	repo := newMockStatsRepository()
	repo.counts["customers"] = 3

	svc := NewStatsService(repo, nil, 30*time.Second, nil)
	ctx := context.Background()

	// 无缓存时每次都查库
	_, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["customers"])
}
