package task

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/robfig/cron/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
	"stylehub_dev_v1_202601/internal/service"
)

// ==================== 测试辅助 ====================

func setupTaskTestSvc(t *testing.T, webhookURL string) (*service.InventoryService, *service.NotifyService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.InventoryItem{}, &model.AuditLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	auditSvc := service.NewAuditService(repository.NewAuditLogRepository(db))
	inventorySvc := service.NewInventoryService(repository.NewInventoryRepository(db), auditSvc)
	notifySvc := service.NewNotifyService(&service.NotifyConfig{WebhookURL: webhookURL})
	return inventorySvc, notifySvc, db
}

// ==================== 单元测试 ====================

func TestLowStockMonitor_Execute(t *testing.T) {
	var pushed atomic.Int32
	var payload struct {
		Event string `json:"event"`
		Count int    `json:"count"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed.Add(1)
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	inventorySvc, notifySvc, db := setupTaskTestSvc(t, server.URL)

	db.Create(&model.InventoryItem{ProductID: 1, ProductName: "A", InStock: 100, ReorderPoint: 10})
	// available 6 <= 8: 低库存
	db.Create(&model.InventoryItem{ProductID: 2, ProductName: "Silk Scarf", InStock: 12, Reserved: 6, ReorderPoint: 8})

	monitor := NewLowStockMonitor(inventorySvc, notifySvc)
	monitor.Execute(context.Background())

	if pushed.Load() != 1 {
		t.Fatalf("推送次数 = %d, want 1", pushed.Load())
	}
	if payload.Event != "inventory.low_stock" || payload.Count != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestLowStockMonitor_Execute_NothingLow(t *testing.T) {
	var pushed atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed.Add(1)
	}))
	defer server.Close()

	inventorySvc, notifySvc, db := setupTaskTestSvc(t, server.URL)
	db.Create(&model.InventoryItem{ProductID: 1, ProductName: "A", InStock: 100, ReorderPoint: 10})

	monitor := NewLowStockMonitor(inventorySvc, notifySvc)
	monitor.Execute(context.Background())

	if pushed.Load() != 0 {
		t.Errorf("无低库存时不应推送: %d", pushed.Load())
	}
}

func TestLowStockMonitor_CronSpec(t *testing.T) {
	// 巡检周期表达式必须能被秒级解析器接受
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	monitor := NewLowStockMonitor(nil, nil)
	if _, err := parser.Parse(monitor.spec); err != nil {
		t.Errorf("默认表达式非法: %v", err)
	}

	monitor.SetSpec("0 * * * * *")
	if _, err := parser.Parse(monitor.spec); err != nil {
		t.Errorf("覆盖后的表达式非法: %v", err)
	}
}
