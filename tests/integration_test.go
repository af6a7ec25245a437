package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stylehub_dev_v1_202601/internal/controller"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
	"stylehub_dev_v1_202601/internal/router"
	"stylehub_dev_v1_202601/internal/service"
	"stylehub_dev_v1_202601/pkg/database"
	"stylehub_dev_v1_202601/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

// setupApp 起一个完整应用：内存库 + 演示数据 + 全部路由
func setupApp(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.SysUser{},
		&model.Product{}, &model.Review{},
		&model.InventoryItem{},
		&model.Order{}, &model.OrderItem{},
		&model.AuditLog{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	middleware.RegisterAuditCallbacks(db)
	database.SeedDemoData(db)

	// 统计缓存是进程级的，跨用例要清掉
	utils.DeleteCache("dashboard:stats")
	t.Cleanup(func() { utils.DeleteCache("dashboard:stats") })

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditSvc := service.NewAuditService(auditRepo)
	authSvc := service.NewAuthService(userRepo, nil)
	productSvc := service.NewProductService(productRepo, reviewRepo, auditSvc)
	inventorySvc := service.NewInventoryService(inventoryRepo, auditSvc)
	orderSvc := service.NewOrderService(orderRepo, auditSvc)
	dashboardSvc := service.NewDashboardService(orderRepo, productRepo, inventorySvc, orderSvc)

	return router.SetupRouter(&router.Controllers{
		Auth:      controller.NewAuthController(authSvc),
		Product:   controller.NewProductController(productSvc),
		Inventory: controller.NewInventoryController(inventorySvc),
		Order:     controller.NewOrderController(orderSvc),
		Dashboard: controller.NewDashboardController(dashboardSvc, auditSvc),
	})
}

func request(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	w := request(r, http.MethodPost, "/api/auth/login", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("%s 登录失败: status = %d, body = %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.AccessToken == "" {
		t.Fatal("登录成功但没有拿到 Token")
	}
	return resp.Data.AccessToken
}

// ==================== 集成测试 ====================

func TestIntegration_SeedAccounts(t *testing.T) {
	r := setupApp(t)

	// 三个演示账户都能登录
	login(t, r, "admin@stylehub.com", "admin123")
	login(t, r, "staff@stylehub.com", "staff123")
	login(t, r, "customer@stylehub.com", "customer123")
}

func TestIntegration_PublicStorefront(t *testing.T) {
	r := setupApp(t)

	// 门店读接口不需要登录
	for _, path := range []string{"/api/products", "/api/categories", "/api/reviews"} {
		w := request(r, http.MethodGet, path, "", "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
	}

	var resp struct {
		Total int64 `json:"total"`
	}
	w := request(r, http.MethodGet, "/api/products", "", "")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total == 0 {
		t.Error("演示数据应该有商品")
	}
}

func TestIntegration_RoleGates(t *testing.T) {
	r := setupApp(t)

	body := `{"name":"New Arrival","description":"fresh","price":49.99,"quantity":10,"category":"Tops"}`

	// 未登录 -> 401
	if w := request(r, http.MethodPost, "/api/products", body, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("未登录创建商品 status = %d, want 401", w.Code)
	}

	// customer -> 403
	customerToken := login(t, r, "customer@stylehub.com", "customer123")
	if w := request(r, http.MethodPost, "/api/products", body, customerToken); w.Code != http.StatusForbidden {
		t.Errorf("customer 创建商品 status = %d, want 403", w.Code)
	}

	// staff -> 200
	staffToken := login(t, r, "staff@stylehub.com", "staff123")
	if w := request(r, http.MethodPost, "/api/products", body, staffToken); w.Code != http.StatusOK {
		t.Errorf("staff 创建商品 status = %d, want 200", w.Code)
	}

	// 看板只放行 admin
	if w := request(r, http.MethodGet, "/api/dashboard/stats", "", staffToken); w.Code != http.StatusForbidden {
		t.Errorf("staff 访问看板 status = %d, want 403", w.Code)
	}
	adminToken := login(t, r, "admin@stylehub.com", "admin123")
	if w := request(r, http.MethodGet, "/api/dashboard/stats", "", adminToken); w.Code != http.StatusOK {
		t.Errorf("admin 访问看板 status = %d, want 200", w.Code)
	}
}

func TestIntegration_ProductLifecycle(t *testing.T) {
	r := setupApp(t)
	token := login(t, r, "admin@stylehub.com", "admin123")

	// 创建
	body := `{"name":"Linen Shirt","description":"breathable","price":39.99,"quantity":30,"category":"Tops"}`
	w := request(r, http.MethodPost, "/api/products", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("创建商品失败: %s", w.Body.String())
	}

	var created struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	id := created.Data.ID
	if id == 0 {
		t.Fatal("创建后应返回 ID")
	}

	// 部分更新
	path := fmt.Sprintf("/api/products/%d", id)
	if w := request(r, http.MethodPut, path, `{"price":34.99}`, token); w.Code != http.StatusOK {
		t.Fatalf("更新商品失败: %s", w.Body.String())
	}

	var got struct {
		Data struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	w = request(r, http.MethodGet, path, "", "")
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Data.Price != 34.99 || got.Data.Name != "Linen Shirt" {
		t.Errorf("更新后 = %+v", got.Data)
	}

	// 不存在的 id 更新：对外 200 的静默空操作
	if w := request(r, http.MethodPut, "/api/products/99999", `{"price":1}`, token); w.Code != http.StatusOK {
		t.Errorf("幽灵更新 status = %d, want 200", w.Code)
	}

	// 删除 + 幂等重删
	if w := request(r, http.MethodDelete, path, "", token); w.Code != http.StatusOK {
		t.Fatalf("删除失败: %s", w.Body.String())
	}
	if w := request(r, http.MethodDelete, path, "", token); w.Code != http.StatusOK {
		t.Errorf("重复删除 status = %d, want 200", w.Code)
	}
	if w := request(r, http.MethodGet, path, "", ""); w.Code != http.StatusNotFound {
		t.Errorf("删除后查询 status = %d, want 404", w.Code)
	}
}

func TestIntegration_InventoryFlow(t *testing.T) {
	r := setupApp(t)
	token := login(t, r, "staff@stylehub.com", "staff123")

	// 演示数据里 Silk Scarf 是低库存
	w := request(r, http.MethodGet, "/api/inventory/low-stock", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("低库存查询失败: %s", w.Body.String())
	}

	var low struct {
		Data []struct {
			ProductID   int64  `json:"product_id"`
			ProductName string `json:"product_name"`
			Available   int    `json:"available"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &low)
	if len(low.Data) != 1 || low.Data[0].ProductName != "Silk Scarf" {
		t.Fatalf("低库存清单 = %+v", low.Data)
	}

	// 补货后退出低库存
	path := fmt.Sprintf("/api/inventory/%d", low.Data[0].ProductID)
	if w := request(r, http.MethodPut, path, `{"in_stock":60,"reorder_point":8}`, token); w.Code != http.StatusOK {
		t.Fatalf("补货失败: %s", w.Body.String())
	}

	w = request(r, http.MethodGet, "/api/inventory/low-stock", "", token)
	json.Unmarshal(w.Body.Bytes(), &low)
	if len(low.Data) != 0 {
		t.Errorf("补货后低库存清单应为空: %+v", low.Data)
	}

	// 不存在的商品：静默空操作
	if w := request(r, http.MethodPut, "/api/inventory/99999", `{"in_stock":1,"reorder_point":1}`, token); w.Code != http.StatusOK {
		t.Errorf("幽灵库存更新 status = %d, want 200", w.Code)
	}
}

func TestIntegration_OrderFlow(t *testing.T) {
	r := setupApp(t)
	token := login(t, r, "staff@stylehub.com", "staff123")

	body := `{
		"customer_name": "Ben Wu",
		"customer_email": "ben@example.com",
		"shipping_address": "22 Elm St, Portland",
		"items": [{"product_id": 1, "name": "Classic White Tee", "quantity": 3, "price": 29.99}]
	}`
	w := request(r, http.MethodPost, "/api/orders", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("创建订单失败: %s", w.Body.String())
	}

	var created struct {
		Data struct {
			ID     int64   `json:"id"`
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.Data.Total != 89.97 {
		t.Errorf("total = %v, want 89.97", created.Data.Total)
	}
	if created.Data.Status != "pending" {
		t.Errorf("status = %s, want pending", created.Data.Status)
	}

	// 状态流转至签收
	path := fmt.Sprintf("/api/orders/%d/status", created.Data.ID)
	for _, s := range []string{"processing", "shipped", "delivered"} {
		body := fmt.Sprintf(`{"status":%q}`, s)
		if w := request(r, http.MethodPut, path, body, token); w.Code != http.StatusOK {
			t.Fatalf("流转到 %s 失败: %s", s, w.Body.String())
		}
	}

	// 金额不随状态变化
	var got struct {
		Data struct {
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"data"`
	}
	w = request(r, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.Data.ID), "", token)
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Data.Status != "delivered" || got.Data.Total != 89.97 {
		t.Errorf("订单 = %+v", got.Data)
	}

	// 非法状态被绑定层拦下
	if w := request(r, http.MethodPut, path, `{"status":"refunded"}`, token); w.Code != http.StatusBadRequest {
		t.Errorf("非法状态 status = %d, want 400", w.Code)
	}
}

func TestIntegration_DashboardAndAudit(t *testing.T) {
	r := setupApp(t)
	adminToken := login(t, r, "admin@stylehub.com", "admin123")

	// 先做一次管理操作，留下审计流水
	body := `{"name":"Audit Target","description":"x","price":9.99,"quantity":1}`
	if w := request(r, http.MethodPost, "/api/products", body, adminToken); w.Code != http.StatusOK {
		t.Fatalf("创建商品失败: %s", w.Body.String())
	}

	w := request(r, http.MethodGet, "/api/dashboard/stats", "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("看板统计失败: %s", w.Body.String())
	}

	var stats struct {
		Data struct {
			TotalRevenue  float64 `json:"total_revenue"`
			TotalOrders   int64   `json:"total_orders"`
			TotalProducts int64   `json:"total_products"`
			LowStockCount int     `json:"low_stock_count"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.Data.TotalOrders == 0 || stats.Data.TotalProducts == 0 {
		t.Errorf("演示数据统计异常: %+v", stats.Data)
	}
	if stats.Data.LowStockCount != 1 {
		t.Errorf("low_stock_count = %d, want 1 (Silk Scarf)", stats.Data.LowStockCount)
	}

	// 审计流水要能查到刚才的创建记录
	w = request(r, http.MethodGet, "/api/dashboard/audit-logs?entity_type=product", "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("审计流水查询失败: %s", w.Body.String())
	}

	var logs struct {
		Data []struct {
			Action      string `json:"action"`
			EntityType  string `json:"entity_type"`
			UserID      int64  `json:"user_id"`
			Description string `json:"description"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &logs)
	if len(logs.Data) == 0 {
		t.Fatal("应有商品创建的审计流水")
	}
	if logs.Data[0].Action != "create" || logs.Data[0].UserID == 0 {
		t.Errorf("流水 = %+v", logs.Data[0])
	}
}
