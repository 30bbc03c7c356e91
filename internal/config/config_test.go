package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadFromFile 测试从文件加载配置
func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
server:
  addr: ":9090"
  mode: "release"
  read_timeout: "15s"
  write_timeout: "15s"

database:
  driver: "mysql"
  mysql:
    host: "testhost"
    port: 3307
    user: "testuser"
    password: "testpass"
    dbname: "testdb"

redis:
  addr: "testredis:6380"
  password: "redispass"
  db: 1

jwt:
  secret: "test-secret"
  issuer: "test-issuer"
  access_expiry: "1h"

store:
  report_path: "/tmp/reports.json"

stats:
  cache_ttl: "10s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr 期望 :9090, 实际 %s", cfg.Server.Addr)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode 期望 release, 实际 %s", cfg.Server.Mode)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Database.Driver 期望 mysql, 实际 %s", cfg.Database.Driver)
	}
	if cfg.Database.MySQL.Host != "testhost" {
		t.Errorf("Database.MySQL.Host 期望 testhost, 实际 %s", cfg.Database.MySQL.Host)
	}
	if cfg.Database.MySQL.Port != 3307 {
		t.Errorf("Database.MySQL.Port 期望 3307, 实际 %d", cfg.Database.MySQL.Port)
	}
	if cfg.Redis.Addr != "testredis:6380" {
		t.Errorf("Redis.Addr 期望 testredis:6380, 实际 %s", cfg.Redis.Addr)
	}
	if cfg.JWT.Issuer != "test-issuer" {
		t.Errorf("JWT.Issuer 期望 test-issuer, 实际 %s", cfg.JWT.Issuer)
	}
	if cfg.JWT.AccessExpiry != time.Hour {
		t.Errorf("JWT.AccessExpiry 期望 1h, 实际 %v", cfg.JWT.AccessExpiry)
	}
	if cfg.Store.ReportPath != "/tmp/reports.json" {
		t.Errorf("Store.ReportPath 期望 /tmp/reports.json, 实际 %s", cfg.Store.ReportPath)
	}
	if cfg.Stats.CacheTTL != 10*time.Second {
		t.Errorf("Stats.CacheTTL 期望 10s, 实际 %v", cfg.Stats.CacheTTL)
	}
}

// TestLoadDefaults 测试默认配置
func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("默认 Server.Addr 期望 :8080, 实际 %s", cfg.Server.Addr)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("默认 Database.Driver 期望 mysql, 实际 %s", cfg.Database.Driver)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("默认 Redis.Addr 期望 localhost:6379, 实际 %s", cfg.Redis.Addr)
	}
	if cfg.Store.ReportPath != "./data/qa_reports.json" {
		t.Errorf("默认 Store.ReportPath 期望 ./data/qa_reports.json, 实际 %s", cfg.Store.ReportPath)
	}
	if cfg.Stats.CacheTTL != 30*time.Second {
		t.Errorf("默认 Stats.CacheTTL 期望 30s, 实际 %v", cfg.Stats.CacheTTL)
	}
}

// TestLoadFromFileNotFound 测试加载不存在的配置文件
func TestLoadFromFileNotFound(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/path/config.yaml"); err == nil {
		t.Error("期望返回错误，但没有")
	}
}
