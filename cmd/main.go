package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stylehub_dev_v1_202601/internal/controller"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
	"stylehub_dev_v1_202601/internal/router"
	"stylehub_dev_v1_202601/internal/service"
	"stylehub_dev_v1_202601/internal/task"
	"stylehub_dev_v1_202601/pkg/database"
)

// @title StyleHub Admin API
// @version 1.0
// @description StyleHub 门店 + 后台管理服务
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User      repository.UserRepository
	Product   repository.ProductRepository
	Inventory repository.InventoryRepository
	Order     repository.OrderRepository
	Review    repository.ReviewRepository
	AuditLog  repository.AuditLogRepository
}

// Services 服务集合
type Services struct {
	Auth      *service.AuthService
	Product   *service.ProductService
	Inventory *service.InventoryService
	Order     *service.OrderService
	Dashboard *service.DashboardService
	Audit     *service.AuditService
	Notify    *service.NotifyService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	db := database.InitDB(
		getEnv("DATABASE_URL", ""),
		getEnv("SQLITE_PATH", "stylehub.db"),
		// Manager
		&model.SysUser{}, &model.AuditLog{},
		// Catalog
		&model.Product{}, &model.Review{},
		// Inventory
		&model.InventoryItem{},
		// Order
		&model.Order{}, &model.OrderItem{},
	)

	// 审计回调：Create/Update 自动填 CreatedBy/UpdatedBy
	middleware.RegisterAuditCallbacks(db)

	// 演示数据
	database.SeedDemoData(db)
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:      repository.NewUserRepository(db),
		Product:   repository.NewProductRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Order:     repository.NewOrderRepository(db),
		Review:    repository.NewReviewRepository(db),
		AuditLog:  repository.NewAuditLogRepository(db),
	}

	// -------- JWT 配置 --------
	if secret := getEnv("JWT_SECRET", ""); secret != "" {
		cfg := middleware.DefaultJWTConfig()
		cfg.SecretKey = secret
		middleware.SetJWTConfig(cfg)
	}

	// -------- 业务服务 --------
	auditSvc := service.NewAuditService(repos.AuditLog)
	notifySvc := service.NewNotifyService(&service.NotifyConfig{
		WebhookURL: getEnv("ALERT_WEBHOOK_URL", ""),
	})

	services := &Services{
		Audit:  auditSvc,
		Notify: notifySvc,
	}
	services.Auth = service.NewAuthService(repos.User, service.BcryptVerifier{})
	services.Product = service.NewProductService(repos.Product, repos.Review, auditSvc)
	services.Inventory = service.NewInventoryService(repos.Inventory, auditSvc)
	services.Order = service.NewOrderService(repos.Order, auditSvc)
	services.Dashboard = service.NewDashboardService(repos.Order, repos.Product, services.Inventory, services.Order)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:      controller.NewAuthController(services.Auth),
		Product:   controller.NewProductController(services.Product),
		Inventory: controller.NewInventoryController(services.Inventory),
		Order:     controller.NewOrderController(services.Order),
		Dashboard: controller.NewDashboardController(services.Dashboard, services.Audit),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 低库存巡检
	monitor := task.NewLowStockMonitor(deps.Services.Inventory, deps.Services.Notify)
	monitor.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
