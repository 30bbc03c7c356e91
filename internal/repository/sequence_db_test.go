package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/kostec-kr/erp-backend/internal/config"
	"github.com/kostec-kr/erp-backend/internal/database"
	"github.com/kostec-kr/erp-backend/internal/model"
)

// 测试用的数据库配置
func getTestMySQLConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver: "mysql",
		MySQL: config.MySQLConfig{
			Host:      "localhost",
			Port:      3306,
			User:      "root",
			Password:  "",
			DBName:    "erp_test",
			Charset:   "utf8mb4",
			ParseTime: true,
			Loc:       "Local",
		},
	}
}

// TestSequenceAllocator_ConcurrentUnique 验证并发创建不产生重复编号
// 需要可用的 MySQL，连接失败时跳过
func TestSequenceAllocator_ConcurrentUnique(t *testing.T) {
	cfg := getTestMySQLConfig()
	if err := database.Init(cfg); err != nil {
		t.Skipf("跳过测试：无法连接 MySQL: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.AutoMigrate(&model.Tracking{}, &model.SequenceCounter{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	cleanup := func() {
		db.Exec("DELETE FROM trackings WHERE carrier = ?", "并发测试承运方")
		db.Exec("DELETE FROM sequence_counters WHERE scope LIKE ?", "tracking:%")
	}
	// 清掉计数器行，让所有协程同时撞上首次播种路径
	cleanup()
	defer cleanup()

	repo := NewTrackingRepository(db, NewSequenceAllocator())
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan string, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tracking := &model.Tracking{
				Carrier:     "并发测试承运方",
				Destination: fmt.Sprintf("目的地-%d", i),
			}
			if err := repo.Create(ctx, tracking); err != nil {
				errs <- err
				return
			}
			results <- tracking.TrackNo
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Errorf("并发创建失败: %v", err)
	}

	seen := make(map[string]bool)
	for no := range results {
		if no == "" {
			t.Error("编号不应为空")
		}
		if seen[no] {
			t.Errorf("编号重复: %s", no)
		}
		seen[no] = true
	}
}
