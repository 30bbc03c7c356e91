// 创建管理员账号的工具
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kostec-kr/erp-backend/internal/config"
	"github.com/kostec-kr/erp-backend/internal/database"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("用法: create-admin <用户名> <密码>")
		fmt.Println("示例: create-admin admin s3cret-pass")
		os.Exit(1)
	}

	username := os.Args[1]
	password := os.Args[2]

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("迁移用户表失败: %v", err)
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(database.GetDB())
	userService := service.NewUserService(userRepo)

	user := &model.User{
		Username: username,
		Role:     "admin",
		Status:   "active",
	}
	if err := userService.Create(ctx, user, password); err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	fmt.Printf("成功创建管理员 %s (ID=%d)\n", user.Username, user.ID)
}
