package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"stylehub_dev_v1_202601/internal/service"
)

// ==================== LowStockMonitor 低库存巡检任务 ====================

// LowStockMonitor 低库存巡检任务
// 周期性扫描库存，把 available <= reorder_point 的商品推给告警通道
type LowStockMonitor struct {
	inventorySvc *service.InventoryService
	notifySvc    *service.NotifyService
	cron         *cron.Cron

	spec string // cron 表达式
}

// NewLowStockMonitor 创建低库存巡检任务
func NewLowStockMonitor(inventorySvc *service.InventoryService, notifySvc *service.NotifyService) *LowStockMonitor {
	return &LowStockMonitor{
		inventorySvc: inventorySvc,
		notifySvc:    notifySvc,
		cron:         cron.New(cron.WithSeconds()), // 支持秒级控制
		spec:         "0 0/30 * * * *",            // 每 30 分钟
	}
}

// SetSpec 覆盖巡检周期（测试用）
func (m *LowStockMonitor) SetSpec(spec string) {
	m.spec = spec
}

// Start 启动巡检任务
func (m *LowStockMonitor) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Println("[LowStockMonitor] 服务启动，正在执行首次巡检...")
		m.Execute(ctx)
	}()

	_, err := m.cron.AddFunc(m.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		m.Execute(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动 LowStockMonitor: %v", err)
	}

	m.cron.Start()
	log.Println("[LowStockMonitor] 已启动 (每30分钟巡检一次)")
}

// Stop 停止任务
func (m *LowStockMonitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("[LowStockMonitor] 已停止")
}

// Execute 执行一次完整巡检 (由 Cron 定时触发)
func (m *LowStockMonitor) Execute(ctx context.Context) {
	items, err := m.inventorySvc.LowStockItems(ctx)
	if err != nil {
		log.Printf("[LowStockMonitor] 查询库存失败: %v", err)
		return
	}

	if len(items) == 0 {
		log.Println("[LowStockMonitor] 巡检完成，无低库存商品")
		return
	}

	log.Printf("[LowStockMonitor] 发现 %d 项低库存商品", len(items))
	if err := m.notifySvc.SendLowStockAlert(ctx, items); err != nil {
		// 推送失败不重试，等下一轮巡检
		log.Printf("[LowStockMonitor] %v", err)
	}
}
