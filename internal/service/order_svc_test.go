package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== 测试辅助 ====================

func setupSvcTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.Product{}, &model.InventoryItem{},
		&model.Order{}, &model.OrderItem{},
		&model.AuditLog{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func newTestAuditSvc(db *gorm.DB) *AuditService {
	return NewAuditService(repository.NewAuditLogRepository(db))
}

func newTestOrderSvc(db *gorm.DB) *OrderService {
	return NewOrderService(repository.NewOrderRepository(db), newTestAuditSvc(db))
}

// ==================== 单元测试 ====================

func TestOrderService_CreateOrder_MoneyInvariants(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	order, err := svc.CreateOrder(context.Background(), &dto.OrderCreateRequest{
		CustomerName:    "Ava Chen",
		CustomerEmail:   "ava@example.com",
		ShippingAddress: "100 Market St, San Francisco",
		Items: []dto.OrderItemReq{
			{ProductID: 1, Name: "Denim Jacket", Quantity: 2, Price: 29.99},
			{ProductID: 2, Name: "Leather Boots", Quantity: 1, Price: 129.99},
		},
	})
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	// subtotal = price * quantity
	if order.Items[0].Subtotal != 59.98 {
		t.Errorf("subtotal = %v, want 59.98", order.Items[0].Subtotal)
	}
	if order.Items[1].Subtotal != 129.99 {
		t.Errorf("subtotal = %v, want 129.99", order.Items[1].Subtotal)
	}

	// total = Σ subtotal
	want := 59.98 + 129.99
	if order.Total != want {
		t.Errorf("total = %v, want %v", order.Total, want)
	}

	// 新订单从 pending 起步
	if order.Status != model.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
}

func TestOrderService_OrderNumber(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		order, err := svc.CreateOrder(context.Background(), &dto.OrderCreateRequest{
			CustomerName:    "Ava Chen",
			CustomerEmail:   "ava@example.com",
			ShippingAddress: "100 Market St",
			Items:           []dto.OrderItemReq{{ProductID: 1, Name: "Tee", Quantity: 1, Price: 10}},
		})
		if err != nil {
			t.Fatalf("创建订单失败: %v", err)
		}

		if !strings.HasPrefix(order.OrderNumber, "SH-") {
			t.Errorf("订单号 %s 应以 SH- 开头", order.OrderNumber)
		}
		if seen[order.OrderNumber] {
			t.Errorf("订单号 %s 重复", order.OrderNumber)
		}
		seen[order.OrderNumber] = true
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)
	ctx := context.Background()

	order, _ := svc.CreateOrder(ctx, &dto.OrderCreateRequest{
		CustomerName:    "Ava Chen",
		CustomerEmail:   "ava@example.com",
		ShippingAddress: "100 Market St",
		Items:           []dto.OrderItemReq{{ProductID: 1, Name: "Tee", Quantity: 3, Price: 10}},
	})

	// 正向流转
	for _, s := range []string{
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
	} {
		if err := svc.UpdateStatus(ctx, order.ID, s); err != nil {
			t.Fatalf("流转到 %s 失败: %v", s, err)
		}
	}

	// 倒着流转也允许
	if err := svc.UpdateStatus(ctx, order.ID, model.OrderStatusPending); err != nil {
		t.Fatalf("delivered -> pending 应被允许: %v", err)
	}

	found, _ := svc.GetOrderByID(ctx, order.ID)
	if found.Status != model.OrderStatusPending {
		t.Errorf("status = %s, want pending", found.Status)
	}
	// 金额全程不变
	if found.Total != 30 {
		t.Errorf("total = %v, want 30", found.Total)
	}
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	err := svc.UpdateStatus(context.Background(), 1, "refunded")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}

	// 美式拼写也不收
	err = svc.UpdateStatus(context.Background(), 1, "canceled")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestOrderService_UpdateStatus_MissingID(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	// 合法状态 + 不存在的 id：静默跳过
	if err := svc.UpdateStatus(context.Background(), 9999, model.OrderStatusShipped); err != nil {
		t.Errorf("不存在的 id 不应报错: %v", err)
	}

	// 静默跳过时不留审计流水
	var auditCount int64
	db.Model(&model.AuditLog{}).Count(&auditCount)
	if auditCount != 0 {
		t.Errorf("审计流水 = %d, want 0", auditCount)
	}
}

func TestOrderService_GetOrderByID_NotFound(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	_, err := svc.GetOrderByID(context.Background(), 9999)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderService_ToOrderResp(t *testing.T) {
	db := setupSvcTestDB(t)
	svc := newTestOrderSvc(db)

	order, _ := svc.CreateOrder(context.Background(), &dto.OrderCreateRequest{
		CustomerName:    "Ava Chen",
		CustomerEmail:   "ava@example.com",
		ShippingAddress: "100 Market St",
		Items:           []dto.OrderItemReq{{ProductID: 1, Name: "Tee", Quantity: 2, Price: 15}},
	})

	resp := svc.ToOrderResp(order)
	if resp.OrderNumber != order.OrderNumber {
		t.Errorf("order_number = %s", resp.OrderNumber)
	}
	if len(resp.Items) != 1 || resp.Items[0].Subtotal != 30 {
		t.Errorf("items = %+v", resp.Items)
	}
	if resp.Total != 30 {
		t.Errorf("total = %v, want 30", resp.Total)
	}
}
