package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	auditSvc  *AuditService
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, auditSvc *AuditService) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditSvc:  auditSvc,
	}
}

// ==================== 查询 ====================

// ListOrders 订单列表
func (s *OrderService) ListOrders(ctx context.Context, status, keyword string, page, pageSize int) ([]model.Order, int64, error) {
	return s.orderRepo.List(ctx, repository.OrderFilter{
		Status:   status,
		Keyword:  keyword,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetOrderByID 订单详情
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ==================== 写入 ====================

// CreateOrder 创建订单
// 金额不变量在这里一次算定：subtotal = price * quantity，total = Σ subtotal。
// 之后的状态流转永远不碰金额字段
func (s *OrderService) CreateOrder(ctx context.Context, req *dto.OrderCreateRequest) (*model.Order, error) {
	order := &model.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Status:          model.OrderStatusPending,
	}

	var total float64
	for _, item := range req.Items {
		subtotal := item.Price * float64(item.Quantity)
		total += subtotal
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  subtotal,
		})
	}
	order.Total = total

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, "order", order.ID, model.AuditActionCreate, "创建订单 "+order.OrderNumber, nil, order)
	return order, nil
}

// UpdateStatus 更新订单状态
// 五个状态之间任意流转都允许（包括 delivered -> pending），重复设置同一状态幂等。
// id 不存在时静默跳过，不报错
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.IsValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	before, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if before != nil && before.Status != status {
		s.auditSvc.Record(ctx, "order", id, model.AuditActionUpdate,
			fmt.Sprintf("订单 %s 状态: %s -> %s", before.OrderNumber, before.Status, status),
			map[string]string{"status": before.Status},
			map[string]string{"status": status})
	}
	return nil
}

// ==================== 响应转换 ====================

// ToOrderResp 模型转响应
func (s *OrderService) ToOrderResp(o *model.Order) dto.OrderResp {
	items := make([]dto.OrderItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResp{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}

	return dto.OrderResp{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		Total:           o.Total,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

// ==================== 内部辅助 ====================

// newOrderNumber 生成对外订单号，如 SH-3F2A91BC
func newOrderNumber() string {
	return "SH-" + strings.ToUpper(uuid.NewString()[:8])
}
