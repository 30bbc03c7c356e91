package database

import (
	"testing"

	"github.com/kostec-kr/erp-backend/internal/config"
)

// 测试用的数据库配置
// 注意：这些测试需要本地可用的 MySQL 实例
func getTestConfig() *config.DatabaseConfig {
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

// TestInit 测试数据库初始化
func TestInit(t *testing.T) {
	cfg := getTestConfig()
	if err := Init(cfg); err != nil {
		t.Skipf("跳过测试：无法连接数据库: %v", err)
	}
	defer Close()

	if GetDB() == nil {
		t.Error("GetDB() 返回 nil")
	}
	if err := Ping(); err != nil {
		t.Errorf("Ping 失败: %v", err)
	}
}

// TestInitUnsupportedDriver 测试不支持的驱动
func TestInitUnsupportedDriver(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite"}
	if err := Init(cfg); err == nil {
		t.Error("不支持的驱动应返回错误")
	}
}

// TestPingUninitialized 测试未初始化时 Ping
func TestPingUninitialized(t *testing.T) {
	db = nil
	if err := Ping(); err == nil {
		t.Error("未初始化时 Ping 应返回错误")
	}
}

// TestCloseNil 测试关闭未初始化的连接
func TestCloseNil(t *testing.T) {
	db = nil
	if err := Close(); err != nil {
		t.Errorf("Close nil 连接应该不报错: %v", err)
	}
}
