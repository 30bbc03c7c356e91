package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/kostec-kr/erp-backend/internal/database"
	"github.com/kostec-kr/erp-backend/internal/model"
)

// TestCustomerRepository_UpdateFields 验证按 ID 更新的事务路径
// 需要可用的 MySQL，连接失败时跳过
func TestCustomerRepository_UpdateFields(t *testing.T) {
	cfg := getTestMySQLConfig()
	if err := database.Init(cfg); err != nil {
		t.Skipf("跳过测试：无法连接 MySQL: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.AutoMigrate(&model.Customer{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	defer db.Exec("DELETE FROM customers WHERE name = ?", "更新测试客户")

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &model.Customer{Name: "更新测试客户", Region: "首尔"}
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 正常更新
	if err := repo.UpdateFields(ctx, customer.ID, map[string]interface{}{"region": "釜山"}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	got, err := repo.GetByID(ctx, customer.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if got.Region != "釜山" {
		t.Errorf("Region 期望 釜山, 实际 %s", got.Region)
	}

	// 空字段集
	if err := repo.UpdateFields(ctx, customer.ID, map[string]interface{}{}); !errors.Is(err, ErrNoFields) {
		t.Errorf("空字段集应返回 ErrNoFields，实际 %v", err)
	}

	// 已删除的记录不能被误报成功
	if err := repo.Delete(ctx, customer.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	err = repo.UpdateFields(ctx, customer.ID, map[string]interface{}{"region": "仁川"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("更新已删除记录应返回 ErrNotFound，实际 %v", err)
	}
}
