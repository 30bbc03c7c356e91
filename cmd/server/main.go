package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/config"
	"github.com/kostec-kr/erp-backend/internal/database"
	"github.com/kostec-kr/erp-backend/internal/handler"
	"github.com/kostec-kr/erp-backend/internal/middleware"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/redis"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/kostec-kr/erp-backend/pkg/response"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库连接
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer database.Close()
	log.Println("数据库连接成功")

	// 初始化 Redis 连接（失败只降级不致命，仪表盘缓存可关）
	if err := redis.Init(&cfg.Redis); err != nil {
		log.Printf("初始化 Redis 失败，统计缓存停用: %v", err)
	}
	defer redis.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Supplier{},
		&model.FollowUp{},
		&model.Product{},
		&model.Device{},
		&model.PurchaseOrder{},
		&model.Quotation{},
		&model.Invoice{},
		&model.TaxInvoice{},
		&model.Tracking{},
		&model.TestRecord{},
		&model.PowerCalc{},
		&model.PreInstallForm{},
		&model.SequenceCounter{},
	); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	log.Println("数据库迁移完成")

	db := database.GetDB()

	// 初始化 Repository
	alloc := repository.NewSequenceAllocator()
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	productRepo := repository.NewProductRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	taxInvoiceRepo := repository.NewTaxInvoiceRepository(db, alloc)
	trackingRepo := repository.NewTrackingRepository(db, alloc)
	testRecordRepo := repository.NewTestRecordRepository(db, alloc)
	powerCalcRepo := repository.NewPowerCalcRepository(db, alloc)
	preInstallRepo := repository.NewPreInstallRepository(db, alloc)
	statsRepo := repository.NewStatsRepository(db)

	// 初始化 Service
	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService(&service.TokenServiceConfig{
		Secret:       cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		AccessExpiry: cfg.JWT.AccessExpiry,
	})
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	followUpService := service.NewFollowUpService(followUpRepo)
	productService := service.NewProductService(productRepo)
	deviceService := service.NewDeviceService(deviceRepo)
	orderService := service.NewOrderService(orderRepo)
	quotationService := service.NewQuotationService(quotationRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	taxInvoiceService := service.NewTaxInvoiceService(taxInvoiceRepo)
	trackingService := service.NewTrackingService(trackingRepo)
	testRecordService := service.NewTestRecordService(testRecordRepo)
	powerCalcService := service.NewPowerCalcService(powerCalcRepo)
	preInstallService := service.NewPreInstallService(preInstallRepo)
	exportService := service.NewExportService(orderRepo, invoiceRepo)
	statsService := service.NewStatsService(statsRepo, redis.GetClient(), cfg.Stats.CacheTTL, middleware.GetLogger())
	reportService := service.NewReportService(cfg.Store.ReportPath)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(userService, tokenService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	followUpHandler := handler.NewFollowUpHandler(followUpService)
	productHandler := handler.NewProductHandler(productService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	orderHandler := handler.NewOrderHandler(orderService, exportService)
	quotationHandler := handler.NewQuotationHandler(quotationService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, exportService)
	taxInvoiceHandler := handler.NewTaxInvoiceHandler(taxInvoiceService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	testRecordHandler := handler.NewTestRecordHandler(testRecordService)
	powerCalcHandler := handler.NewPowerCalcHandler(powerCalcService)
	preInstallHandler := handler.NewPreInstallHandler(preInstallService)
	statsHandler := handler.NewStatsHandler(statsService)
	reportHandler := handler.NewReportHandler(reportService)

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()

	// 全局中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if err := database.Ping(); err != nil {
			dbStatus = "error"
		}

		redisStatus := "ok"
		redisClient := redis.GetClient()
		if redisClient == nil {
			redisStatus = "disabled"
		} else if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "error"
		}

		response.Success(c, gin.H{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	// API 路由组
	api := router.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		// 认证路由（公开）
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// 需要认证的路由
		authRequired := api.Group("")
		authRequired.Use(middleware.JWTAuth(tokenService))
		{
			authRequired.GET("/auth/me", authHandler.Me)
			authRequired.POST("/auth/change-password", authHandler.ChangePassword)

			authRequired.GET("/customers", customerHandler.ListCustomers)
			authRequired.POST("/customers", customerHandler.CreateCustomer)
			authRequired.GET("/customers/:id", customerHandler.GetCustomer)
			authRequired.PUT("/customers/:id", customerHandler.UpdateCustomer)
			authRequired.DELETE("/customers/:id", customerHandler.DeleteCustomer)

			authRequired.GET("/followups", followUpHandler.ListFollowUps)
			authRequired.POST("/followups", followUpHandler.CreateFollowUp)
			authRequired.GET("/followups/:id", followUpHandler.GetFollowUp)
			authRequired.PUT("/followups/:id", followUpHandler.UpdateFollowUp)
			authRequired.DELETE("/followups/:id", followUpHandler.DeleteFollowUp)

			authRequired.GET("/suppliers", supplierHandler.ListSuppliers)
			authRequired.POST("/suppliers", supplierHandler.CreateSupplier)
			authRequired.GET("/suppliers/:id", supplierHandler.GetSupplier)
			authRequired.PUT("/suppliers/:id", supplierHandler.UpdateSupplier)
			authRequired.DELETE("/suppliers/:id", supplierHandler.DeleteSupplier)

			authRequired.GET("/products", productHandler.ListProducts)
			authRequired.POST("/products", productHandler.CreateProduct)
			authRequired.GET("/products/:id", productHandler.GetProduct)
			authRequired.PUT("/products/:id", productHandler.UpdateProduct)
			authRequired.DELETE("/products/:id", productHandler.DeleteProduct)

			authRequired.GET("/devices", deviceHandler.ListDevices)
			authRequired.POST("/devices", deviceHandler.CreateDevice)
			authRequired.GET("/devices/:id", deviceHandler.GetDevice)
			authRequired.PUT("/devices/:id", deviceHandler.UpdateDevice)
			authRequired.DELETE("/devices/:id", deviceHandler.DeleteDevice)
			authRequired.POST("/devices/:id/heartbeat", deviceHandler.Heartbeat)

			authRequired.GET("/orders", orderHandler.ListOrders)
			authRequired.POST("/orders", orderHandler.CreateOrder)
			authRequired.GET("/orders/export", orderHandler.ExportOrders)
			authRequired.GET("/orders/:id", orderHandler.GetOrder)
			authRequired.PUT("/orders/:id", orderHandler.UpdateOrder)
			authRequired.DELETE("/orders/:id", orderHandler.DeleteOrder)

			authRequired.GET("/quotations", quotationHandler.ListQuotations)
			authRequired.POST("/quotations", quotationHandler.CreateQuotation)
			authRequired.GET("/quotations/:id", quotationHandler.GetQuotation)
			authRequired.PUT("/quotations/:id", quotationHandler.UpdateQuotation)
			authRequired.DELETE("/quotations/:id", quotationHandler.DeleteQuotation)

			authRequired.GET("/invoices", invoiceHandler.ListInvoices)
			authRequired.POST("/invoices", invoiceHandler.CreateInvoice)
			authRequired.GET("/invoices/export", invoiceHandler.ExportInvoices)
			authRequired.GET("/invoices/:id", invoiceHandler.GetInvoice)
			authRequired.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
			authRequired.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

			authRequired.GET("/tax-invoices", taxInvoiceHandler.ListTaxInvoices)
			authRequired.POST("/tax-invoices", taxInvoiceHandler.CreateTaxInvoice)
			authRequired.GET("/tax-invoices/:id", taxInvoiceHandler.GetTaxInvoice)
			authRequired.PUT("/tax-invoices/:id", taxInvoiceHandler.UpdateTaxInvoice)
			authRequired.DELETE("/tax-invoices/:id", taxInvoiceHandler.DeleteTaxInvoice)

			authRequired.GET("/trackings", trackingHandler.ListTrackings)
			authRequired.POST("/trackings", trackingHandler.CreateTracking)
			authRequired.GET("/trackings/:id", trackingHandler.GetTracking)
			authRequired.PUT("/trackings/:id", trackingHandler.UpdateTracking)
			authRequired.DELETE("/trackings/:id", trackingHandler.DeleteTracking)

			authRequired.GET("/test-records", testRecordHandler.ListTestRecords)
			authRequired.POST("/test-records", testRecordHandler.CreateTestRecord)
			authRequired.GET("/test-records/:id", testRecordHandler.GetTestRecord)
			authRequired.PUT("/test-records/:id", testRecordHandler.UpdateTestRecord)
			authRequired.DELETE("/test-records/:id", testRecordHandler.DeleteTestRecord)

			authRequired.GET("/power-calcs", powerCalcHandler.ListPowerCalcs)
			authRequired.POST("/power-calcs", powerCalcHandler.CreatePowerCalc)
			authRequired.GET("/power-calcs/:id", powerCalcHandler.GetPowerCalc)
			authRequired.PUT("/power-calcs/:id", powerCalcHandler.UpdatePowerCalc)
			authRequired.DELETE("/power-calcs/:id", powerCalcHandler.DeletePowerCalc)

			authRequired.GET("/pre-install-forms", preInstallHandler.ListPreInstallForms)
			authRequired.POST("/pre-install-forms", preInstallHandler.CreatePreInstallForm)
			authRequired.GET("/pre-install-forms/:id", preInstallHandler.GetPreInstallForm)
			authRequired.PUT("/pre-install-forms/:id", preInstallHandler.UpdatePreInstallForm)
			authRequired.DELETE("/pre-install-forms/:id", preInstallHandler.DeletePreInstallForm)

			authRequired.GET("/stats/dashboard", statsHandler.Dashboard)

			authRequired.GET("/qa-reports", reportHandler.ListReports)
			authRequired.POST("/qa-reports", reportHandler.CreateReport)
			authRequired.GET("/qa-reports/:id", reportHandler.GetReport)
			authRequired.PUT("/qa-reports/:id", reportHandler.UpdateReport)
			authRequired.DELETE("/qa-reports/:id", reportHandler.DeleteReport)
		}
	}

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		log.Printf("服务启动，监听地址: %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，等待 5 秒
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务关闭失败: %v", err)
	}

	database.Close()
	redis.Close()

	log.Println("服务已关闭")
}
